package model

import "testing"

// Surface, height, target interaxis, and series are the invalidating
// fields: changing any of them must clear a manual element override.
// Everything else keeps it.

func overriddenRoom() RoomSpec {
	return DefaultRoomSpec().WithManualElements(9)
}

func TestInvalidatingChangesClearOverride(t *testing.T) {
	tests := []struct {
		name  string
		apply func(RoomSpec) RoomSpec
	}{
		{"surface", func(r RoomSpec) RoomSpec { return r.WithSurface(18) }},
		{"height", func(r RoomSpec) RoomSpec { return r.WithHeight(3.0) }},
		{"valve center distance", func(r RoomSpec) RoomSpec { return r.WithValveCenterDistance(600) }},
		{"series", func(r RoomSpec) RoomSpec { return r.WithSeries(SeriesAluminum) }},
	}

	for _, tt := range tests {
		got := tt.apply(overriddenRoom())
		if got.ManualElements != nil {
			t.Errorf("changing %s must clear the manual element override", tt.name)
		}
	}
}

func TestNonInvalidatingChangesKeepOverride(t *testing.T) {
	got := overriddenRoom().WithValvePosition(ValveLeft).WithNiche(900, 700)
	if got.ManualElements == nil || *got.ManualElements != 9 {
		t.Error("valve position and niche changes must keep the override")
	}
	if got.ValvePosition != ValveLeft || got.NicheWidth != 900 || got.NicheHeight != 700 {
		t.Errorf("unexpected room after updates: %+v", got)
	}
}

func TestWithManualElementsPinsCount(t *testing.T) {
	got := DefaultRoomSpec().WithManualElements(0)
	if got.ManualElements == nil || *got.ManualElements != 0 {
		t.Error("an explicit zero override is a valid override")
	}

	cleared := got.ClearManualElements()
	if cleared.ManualElements != nil {
		t.Error("ClearManualElements must drop the override")
	}
}

func TestReducersDoNotMutateReceiver(t *testing.T) {
	orig := overriddenRoom()
	_ = orig.WithSurface(99)
	if orig.Surface != 0 || orig.ManualElements == nil {
		t.Error("reducers must return copies, not mutate the receiver")
	}
}
