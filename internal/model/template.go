package model

import (
	"time"

	"github.com/google/uuid"
)

// EnvironmentTemplate is a reusable room preset: a named RoomSpec the
// installer can stamp into any project (typical bathroom, bedroom, etc.).
type EnvironmentTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Room        RoomSpec `json:"room"`
}

// NewEnvironmentTemplate creates a template from an existing room spec.
// Any manual element override is intentionally dropped: it was chosen
// against a specific heat load and does not transfer.
func NewEnvironmentTemplate(name, description string, room RoomSpec) EnvironmentTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return EnvironmentTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Room:        room.ClearManualElements(),
	}
}

// ToEnvironment instantiates the template as a fresh environment with its
// own ID.
func (t EnvironmentTemplate) ToEnvironment(name string) Environment {
	env := NewEnvironment(name)
	env.Room = t.Room
	return env
}

// TemplateStore holds a collection of environment templates.
type TemplateStore struct {
	Templates []EnvironmentTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []EnvironmentTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t EnvironmentTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *EnvironmentTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name,
// or nil.
func (ts *TemplateStore) FindByName(name string) *EnvironmentTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// DefaultTemplates returns presets for common residential rooms. Surfaces
// and interaxis values are conventional starting points, not constraints.
func DefaultTemplates() TemplateStore {
	bathroom := DefaultRoomSpec()
	bathroom.Surface = 6
	bathroom.Height = 2.7
	bathroom.ValveCenterDistance = 500
	bathroom.ValvePosition = ValveLeft
	bathroom.SideValveDistance = 80

	bedroom := DefaultRoomSpec()
	bedroom.Surface = 14
	bedroom.Height = 2.7
	bedroom.ValveCenterDistance = 600

	living := DefaultRoomSpec()
	living.Surface = 25
	living.Height = 2.7
	living.ValveCenterDistance = 600

	return TemplateStore{
		Templates: []EnvironmentTemplate{
			NewEnvironmentTemplate("Bathroom", "Small bathroom, side valves", bathroom),
			NewEnvironmentTemplate("Bedroom", "Double bedroom, bottom valves", bedroom),
			NewEnvironmentTemplate("Living room", "Living room, bottom valves", living),
		},
	}
}
