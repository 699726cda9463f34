// Package engine implements the radiator sizing computation: heat-load
// calculation, closest-interaxis catalog matching, element count and
// footprint derivation, eccentric-fitting detection, and clearance
// validation.
//
// The engine is pure and total: every function is a deterministic function
// of its arguments, holds no state, performs no I/O, and returns no errors.
// Degenerate inputs (empty catalog, zero-wattage models, zero or negative
// dimensions) degrade to well-defined zero or placeholder outputs so the
// caller always has a complete result to display, even while the user is
// mid-way through filling in a form.
package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/RadiaPlan/internal/model"
)

// kcalFactor converts kcal/h-based coefficients to watts:
// requiredWatts = volume * K / 0.86.
const kcalFactor = 0.86

// HeatLoad holds the room volume and the rounded heat demand derived
// from it.
type HeatLoad struct {
	Volume        float64 // m3
	RequiredWatts float64 // rounded
}

// ComputeHeatLoad derives the heat demand of a room from its volume and
// the global watt coefficient. NaN and negative dimensions are treated as
// zero so the load is never negative.
func ComputeHeatLoad(room model.RoomSpec, settings model.GlobalSettings) HeatLoad {
	surface := sanitize(room.Surface)
	height := sanitize(room.Height)

	volume := surface * height
	watts := math.Round(volume * settings.WattCoefficient / kcalFactor)
	return HeatLoad{
		Volume:        volume,
		RequiredWatts: watts,
	}
}

// sanitize maps NaN and negative values to 0.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// FindClosestModel scans the catalog linearly and returns the model whose
// interaxis is closest to the target. Ties go to the model appearing
// earlier in catalog order (strict < against the running minimum): catalog
// ordering is part of the contract. An empty catalog yields the zero
// placeholder model.
func FindClosestModel(catalog []model.RadiatorModel, targetInteraxis float64) model.RadiatorModel {
	if len(catalog) == 0 {
		return model.RadiatorModel{}
	}

	best := catalog[0]
	bestDist := math.Abs(targetInteraxis - best.Interaxis)
	for _, m := range catalog[1:] {
		dist := math.Abs(targetInteraxis - m.Interaxis)
		if dist < bestDist {
			best = m
			bestDist = dist
		}
	}
	return best
}

// ComputeElements returns the element count for a required load and matched
// model. A manual override, when present, is used verbatim. A model with
// zero wattage is guarded by treating its output as 1 W per element; this
// silently degrades to ceil(requiredWatts) elements rather than signaling
// an invalid model.
func ComputeElements(requiredWatts float64, m model.RadiatorModel, manualOverride *int) int {
	if manualOverride != nil {
		return *manualOverride
	}

	watts := m.Watts
	if watts <= 0 {
		watts = 1
	}
	return int(math.Ceil(requiredWatts / watts))
}

// EccentricOffset reports whether an eccentric fitting is needed to
// compensate an interaxis mismatch, and the offset it must bridge in mm.
// Bottom-mounted dual valves cannot be compensated this way, so the flag
// is only ever raised for side valve pairs.
func EccentricOffset(pos model.ValvePosition, targetInteraxis, modelInteraxis float64) (bool, float64) {
	if pos == model.ValveBottom {
		return false, 0
	}
	offset := math.Abs(targetInteraxis - modelInteraxis)
	return offset > 0, offset
}

// OccupiedWidth computes the total horizontal space the installation
// consumes inside the niche, including valve standoffs and, for side valve
// pairs, the eccentric-fitting penalty.
//
// Bottom layout: valve 1 sits at SideValveDistance from the left niche
// edge, the body starts one standoff after it, and valve 2 sits one
// standoff after the body ends, itself needing a standoff to the right
// edge. Side layout: the valve pair sits between the niche edge and the
// body; an eccentric fitting consumes one extra standoff.
func OccupiedWidth(room model.RoomSpec, bodyLength float64, needsEccentric bool) float64 {
	if room.ValvePosition == model.ValveBottom {
		return room.SideValveDistance + model.MinClearanceMM + bodyLength +
			model.MinClearanceMM + model.MinClearanceMM
	}

	occupied := room.SideValveDistance + model.MinClearanceMM + bodyLength
	if needsEccentric {
		occupied += model.MinClearanceMM
	}
	return occupied
}

// HasClearanceIssue validates the occupied width against the declared
// niche. The verdict is advisory: it never blocks computation. Validation
// is skipped entirely while the niche is unspecified (width <= 0), since
// partial input is the normal transient state of an interactive form.
func HasClearanceIssue(room model.RoomSpec, totalOccupied float64) bool {
	if room.NicheWidth <= 0 {
		return false
	}
	if room.SideValveDistance < model.MinClearanceMM {
		return true
	}
	if room.ValvePosition == model.ValveBottom {
		// The final standoff is already part of the occupied width, so any
		// shortfall means the second valve has less than 50 mm to the edge.
		return room.NicheWidth-totalOccupied < 0
	}
	return room.NicheWidth-totalOccupied < model.MinClearanceMM
}

// SizeRoom runs the full sizing pipeline for one room against the given
// catalog snapshot: heat load, closest model, element count and footprint,
// eccentric flag, clearance verdict. Calling it twice with identical inputs
// yields an identical result.
func SizeRoom(room model.RoomSpec, catalog []model.RadiatorModel, settings model.GlobalSettings) model.SizingResult {
	load := ComputeHeatLoad(room, settings)
	matched := FindClosestModel(catalog, room.ValveCenterDistance)

	elements := ComputeElements(load.RequiredWatts, matched, room.ManualElements)
	bodyLength := float64(elements) * model.ElementPitchMM

	needsEccentric, offset := EccentricOffset(room.ValvePosition, room.ValveCenterDistance, matched.Interaxis)
	eccentricText := ""
	if needsEccentric {
		eccentricText = fmt.Sprintf("Eccentric fitting required: %.0f mm offset", offset)
	}

	occupied := OccupiedWidth(room, bodyLength, needsEccentric)

	return model.SizingResult{
		Model:              matched,
		RequiredWatts:      load.RequiredWatts,
		CurrentElements:    elements,
		TotalWatts:         math.Round(float64(elements) * matched.Watts),
		BodyLength:         bodyLength,
		TotalLength:        bodyLength,
		TotalOccupiedWidth: occupied,
		HasClearanceIssue:  HasClearanceIssue(room, occupied),
		NeedsEccentric:     needsEccentric,
		EccentricOffset:    offset,
		EccentricText:      eccentricText,
	}
}

// SizeProject sizes every environment of a project against a single
// consistent snapshot of the custom catalog and settings. Results are
// returned in environment order.
func SizeProject(p model.Project, customCatalog []model.RadiatorModel, settings model.GlobalSettings) []model.SizingResult {
	results := make([]model.SizingResult, len(p.Environments))
	for i, env := range p.Environments {
		catalog := model.CatalogFor(env.Room.Series, customCatalog)
		results[i] = SizeRoom(env.Room, catalog, settings)
	}
	return results
}

// ProjectTotalWatts sums the installed output across all environments.
// Rooms are sized independently; this is a plain reduction over SizeRoom
// outputs.
func ProjectTotalWatts(p model.Project, customCatalog []model.RadiatorModel, settings model.GlobalSettings) float64 {
	var total float64
	for _, r := range SizeProject(p, customCatalog, settings) {
		total += r.TotalWatts
	}
	return total
}
