package model

import "github.com/google/uuid"

// Dimensional constants shared by the sizing engine, the UI, and the
// print/export layers. All lengths are millimeters unless noted.
const (
	// ElementPitchMM is the fixed horizontal width of one radiator element.
	ElementPitchMM = 45.0

	// MinClearanceMM is the minimum standoff required on every side between
	// a valve centerline / the radiator body and the nearest niche edge or
	// counterpart fitting. It is the single clearance threshold used
	// everywhere in the engine.
	MinClearanceMM = 50.0
)

// ValvePosition describes where the supply/return valves sit relative to
// the radiator body.
type ValvePosition string

const (
	// ValveBottom means two valves at opposite lower corners of the body.
	ValveBottom ValvePosition = "bottom"
	// ValveLeft and ValveRight mean a single valve pair mounted vertically
	// on one side of the body.
	ValveLeft  ValvePosition = "left"
	ValveRight ValvePosition = "right"
)

func (v ValvePosition) String() string {
	switch v {
	case ValveLeft:
		return "Left"
	case ValveRight:
		return "Right"
	default:
		return "Bottom"
	}
}

// RadiatorModel is one catalog entry. Catalog entries are externally
// supplied and immutable as far as the engine is concerned.
type RadiatorModel struct {
	ID        string  `json:"id,omitempty"`
	Label     string  `json:"label"`     // display name, e.g. "600"
	Height    float64 `json:"height"`    // physical height in mm
	Interaxis float64 `json:"interaxis"` // center-to-center pipe spacing in mm
	Watts     float64 `json:"watts"`     // heat output of one element at reference dT
	Brand     string  `json:"brand,omitempty"`
	Series    Series  `json:"series,omitempty"`
}

// NewRadiatorModel creates a catalog entry with a generated ID, for
// user-maintained custom catalogs.
func NewRadiatorModel(label string, height, interaxis, watts float64) RadiatorModel {
	return RadiatorModel{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Height:    height,
		Interaxis: interaxis,
		Watts:     watts,
		Series:    SeriesCustom,
	}
}

// IsPlaceholder reports whether this is the degenerate zero model the
// engine substitutes when the active catalog is empty.
func (m RadiatorModel) IsPlaceholder() bool {
	return m.Label == "" && m.Height == 0 && m.Interaxis == 0 && m.Watts == 0
}

// RoomSpec holds everything the installer enters for one environment.
// Room dimensions are meters; installation geometry is millimeters.
type RoomSpec struct {
	Surface             float64       `json:"surface"`               // floor area, m2
	Height              float64       `json:"height"`                // ceiling height, m
	ValveCenterDistance float64       `json:"valve_center_distance"` // target interaxis, mm
	ValvePosition       ValvePosition `json:"valve_position"`
	SideValveDistance   float64       `json:"side_valve_distance"` // niche edge to valve centerline, mm
	NicheWidth          float64       `json:"niche_width"`         // 0 = unconstrained
	NicheHeight         float64       `json:"niche_height"`
	ValveHeight         float64       `json:"valve_height"` // vertical placement, visualization only
	MaxWidth            float64       `json:"max_width"`    // advisory maximum body width, mm
	ManualElements      *int          `json:"manual_elements,omitempty"`
	HasDiaphragm        bool          `json:"has_diaphragm"`
	Series              Series        `json:"series"`
}

// DefaultRoomSpec returns the spec a freshly created environment starts
// with: default series, bottom valves, zeroed dimensions.
func DefaultRoomSpec() RoomSpec {
	return RoomSpec{
		ValvePosition: ValveBottom,
		Series:        SeriesTubular3,
	}
}

// Environment is one room inside a client project.
type Environment struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Room RoomSpec `json:"room"`
}

func NewEnvironment(name string) Environment {
	return Environment{
		ID:   uuid.New().String()[:8],
		Name: name,
		Room: DefaultRoomSpec(),
	}
}

// GlobalSettings holds the user-editable sizing coefficients shared by all
// environments of a project.
type GlobalSettings struct {
	// WattCoefficient is the heat-load coefficient K in
	// requiredWatts = volume * K / 0.86.
	WattCoefficient float64 `json:"watt_coefficient"`
}

func DefaultSettings() GlobalSettings {
	return GlobalSettings{
		WattCoefficient: 30,
	}
}

// SizingResult is the derived output of the sizing engine for one room.
// It is a pure function of (RoomSpec, catalog, GlobalSettings): recomputed
// on every input change and never persisted independently.
type SizingResult struct {
	Model           RadiatorModel `json:"model"`
	RequiredWatts   float64       `json:"required_watts"` // rounded heat demand
	CurrentElements int           `json:"current_elements"`
	TotalWatts      float64       `json:"total_watts"` // rounded elements * watts
	BodyLength      float64       `json:"body_length"` // elements * element pitch, mm
	// TotalLength equals BodyLength today; kept as a separate field because
	// the print layout reads it independently.
	TotalLength        float64 `json:"total_length"`
	TotalOccupiedWidth float64 `json:"total_occupied_width"` // incl. valve standoffs and eccentric penalty
	HasClearanceIssue  bool    `json:"has_clearance_issue"`
	NeedsEccentric     bool    `json:"needs_eccentric"`
	EccentricOffset    float64 `json:"eccentric_offset"` // mm, 0 when no eccentric needed
	EccentricText      string  `json:"eccentric_text"`
}

// Project ties a client's environments together for save/load.
type Project struct {
	Name         string         `json:"name"`
	Client       string         `json:"client,omitempty"`
	Environments []Environment  `json:"environments"`
	Settings     GlobalSettings `json:"settings"`
}

func NewProject() Project {
	return Project{
		Name:         "Untitled",
		Environments: []Environment{},
		Settings:     DefaultSettings(),
	}
}

// FindEnvironmentByID returns a pointer to the environment with the given
// ID, or nil.
func (p *Project) FindEnvironmentByID(id string) *Environment {
	for i := range p.Environments {
		if p.Environments[i].ID == id {
			return &p.Environments[i]
		}
	}
	return nil
}

// RemoveEnvironment removes an environment by ID. Returns true if found.
func (p *Project) RemoveEnvironment(id string) bool {
	for i, env := range p.Environments {
		if env.ID == id {
			p.Environments = append(p.Environments[:i], p.Environments[i+1:]...)
			return true
		}
	}
	return false
}

// EnvironmentNames returns the environment names for UI dropdowns.
func (p *Project) EnvironmentNames() []string {
	names := make([]string, len(p.Environments))
	for i, env := range p.Environments {
		names[i] = env.Name
	}
	return names
}
