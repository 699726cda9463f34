package model

// Copy-and-update helpers for RoomSpec. The engine treats a manual element
// override as an opaque caller decision, but that decision is only
// meaningful against the model it was chosen for: changing the surface,
// ceiling height, target interaxis, or series invalidates it. Callers must
// therefore mutate RoomSpec through these reducers rather than assigning
// fields directly.

// WithSurface returns a copy with the floor area updated and any manual
// element override cleared.
func (r RoomSpec) WithSurface(v float64) RoomSpec {
	r.Surface = v
	r.ManualElements = nil
	return r
}

// WithHeight returns a copy with the ceiling height updated and any manual
// element override cleared.
func (r RoomSpec) WithHeight(v float64) RoomSpec {
	r.Height = v
	r.ManualElements = nil
	return r
}

// WithValveCenterDistance returns a copy with the target interaxis updated
// and any manual element override cleared.
func (r RoomSpec) WithValveCenterDistance(v float64) RoomSpec {
	r.ValveCenterDistance = v
	r.ManualElements = nil
	return r
}

// WithSeries returns a copy with the catalog series updated and any manual
// element override cleared.
func (r RoomSpec) WithSeries(s Series) RoomSpec {
	r.Series = s
	r.ManualElements = nil
	return r
}

// WithManualElements returns a copy with the element count pinned to n.
// The override is used verbatim by the engine, with no re-validation.
func (r RoomSpec) WithManualElements(n int) RoomSpec {
	r.ManualElements = &n
	return r
}

// ClearManualElements returns a copy with the computed element count back
// in charge.
func (r RoomSpec) ClearManualElements() RoomSpec {
	r.ManualElements = nil
	return r
}

// WithValvePosition returns a copy with the valve layout updated. The
// override survives: element count does not depend on valve placement.
func (r RoomSpec) WithValvePosition(p ValvePosition) RoomSpec {
	r.ValvePosition = p
	return r
}

// WithNiche returns a copy with the niche footprint updated.
func (r RoomSpec) WithNiche(width, height float64) RoomSpec {
	r.NicheWidth = width
	r.NicheHeight = height
	return r
}
