package ui

import (
	"testing"

	"github.com/piwi3910/RadiaPlan/internal/model"
)

func envNamed(name string) model.Environment {
	env := model.NewEnvironment(name)
	env.Room = env.Room.WithSurface(12).WithHeight(2.7)
	return env
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Push initial state (before adding a room)
	snap0 := MakeSnapshot(nil, model.DefaultSettings(), "initial")
	h.Push(snap0)

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	// Current state has one room
	current := MakeSnapshot([]model.Environment{envNamed("Kitchen")}, model.DefaultSettings(), "current")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Environments) != 0 {
		t.Errorf("expected 0 rooms after undo, got %d", len(restored.Environments))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, model.DefaultSettings(), "empty"))

	one := []model.Environment{envNamed("Kitchen")}
	h.Push(MakeSnapshot(one, model.DefaultSettings(), "one room"))

	two := []model.Environment{envNamed("Kitchen"), envNamed("Bedroom")}
	current := MakeSnapshot(two, model.DefaultSettings(), "two rooms")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.Environments) != 1 {
		t.Errorf("expected 1 room, got %d", len(restored.Environments))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Environments) != 2 {
		t.Errorf("expected 2 rooms after redo, got %d", len(redone.Environments))
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, model.DefaultSettings(), "empty"))

	current := MakeSnapshot([]model.Environment{envNamed("Kitchen")}, model.DefaultSettings(), "one room")

	_, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(nil, model.DefaultSettings(), "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(nil, model.DefaultSettings(), ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(nil, model.DefaultSettings(), "current")
	if _, ok := h.Undo(current); ok {
		t.Error("undo on empty history should return false")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(nil, model.DefaultSettings(), "current")
	if _, ok := h.Redo(current); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, model.DefaultSettings(), "a"))
	h.Push(MakeSnapshot(nil, model.DefaultSettings(), "b"))

	current := MakeSnapshot(nil, model.DefaultSettings(), "current")
	h.Undo(current)

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotSettingsCarried(t *testing.T) {
	settings := model.GlobalSettings{WattCoefficient: 35}
	snap := MakeSnapshot(nil, settings, "coefficient change")
	if snap.Settings.WattCoefficient != 35 {
		t.Errorf("settings not captured: %+v", snap.Settings)
	}
}

func TestDeepCopyEnvironments(t *testing.T) {
	original := []model.Environment{envNamed("Kitchen")}
	snap := MakeSnapshot(original, model.DefaultSettings(), "test")

	original[0].Name = "Modified"

	if snap.Environments[0].Name != "Kitchen" {
		t.Error("snapshot should be independent of original slice")
	}
}

func TestDeepCopyManualOverride(t *testing.T) {
	env := envNamed("Bedroom")
	env.Room = env.Room.WithManualElements(9)
	original := []model.Environment{env}

	snap := MakeSnapshot(original, model.DefaultSettings(), "test")

	*original[0].Room.ManualElements = 99

	if *snap.Environments[0].Room.ManualElements != 9 {
		t.Error("snapshot override should be independent of original")
	}
}

func TestCopyNilEnvironments(t *testing.T) {
	snap := MakeSnapshot(nil, model.DefaultSettings(), "nil test")
	if snap.Environments != nil {
		t.Error("nil environments should stay nil")
	}
}

func TestMultipleUndoRedo(t *testing.T) {
	h := NewHistory()

	// Build up states: empty -> 1 room -> 2 rooms -> 3 rooms
	h.Push(MakeSnapshot(nil, model.DefaultSettings(), "empty"))
	h.Push(MakeSnapshot([]model.Environment{envNamed("A")}, model.DefaultSettings(), "1 room"))
	h.Push(MakeSnapshot([]model.Environment{envNamed("A"), envNamed("B")}, model.DefaultSettings(), "2 rooms"))

	current := MakeSnapshot(
		[]model.Environment{envNamed("A"), envNamed("B"), envNamed("C")},
		model.DefaultSettings(), "3 rooms",
	)

	s, ok := h.Undo(current)
	if !ok || len(s.Environments) != 2 {
		t.Fatalf("first undo: expected 2 rooms, got %d", len(s.Environments))
	}

	s, ok = h.Undo(s)
	if !ok || len(s.Environments) != 1 {
		t.Fatalf("second undo: expected 1 room, got %d", len(s.Environments))
	}

	s, ok = h.Undo(s)
	if !ok || len(s.Environments) != 0 {
		t.Fatalf("third undo: expected 0 rooms, got %d", len(s.Environments))
	}

	if h.CanUndo() {
		t.Error("should not be able to undo further")
	}

	s, ok = h.Redo(s)
	if !ok || len(s.Environments) != 1 {
		t.Fatalf("first redo: expected 1 room, got %d", len(s.Environments))
	}

	s, ok = h.Redo(s)
	if !ok || len(s.Environments) != 2 {
		t.Fatalf("second redo: expected 2 rooms, got %d", len(s.Environments))
	}

	s, ok = h.Redo(s)
	if !ok || len(s.Environments) != 3 {
		t.Fatalf("third redo: expected 3 rooms, got %d", len(s.Environments))
	}

	if h.CanRedo() {
		t.Error("should not be able to redo further")
	}
}
