package model

import "testing"

func TestNewEnvironmentTemplateDropsOverride(t *testing.T) {
	room := DefaultRoomSpec().WithSurface(12).WithManualElements(8)
	tpl := NewEnvironmentTemplate("Study", "Small office", room)

	if tpl.Room.ManualElements != nil {
		t.Error("templates must not carry a manual element override")
	}
	if tpl.Room.Surface != 12 {
		t.Errorf("expected surface 12, got %v", tpl.Room.Surface)
	}
	if tpl.ID == "" || tpl.CreatedAt == "" {
		t.Error("expected generated ID and timestamps")
	}
}

func TestTemplateToEnvironment(t *testing.T) {
	tpl := NewEnvironmentTemplate("Bath", "", DefaultRoomSpec().WithSurface(6))
	env := tpl.ToEnvironment("Main bathroom")

	if env.Name != "Main bathroom" {
		t.Errorf("unexpected name %q", env.Name)
	}
	if env.Room.Surface != 6 {
		t.Errorf("template room not applied: %+v", env.Room)
	}
	if env.ID == tpl.ID {
		t.Error("instantiated environments need their own ID")
	}
}

func TestTemplateStoreAddRemoveFind(t *testing.T) {
	ts := NewTemplateStore()
	a := NewEnvironmentTemplate("A", "", DefaultRoomSpec())
	b := NewEnvironmentTemplate("B", "", DefaultRoomSpec())
	ts.Add(a)
	ts.Add(b)

	if got := ts.FindByID(a.ID); got == nil || got.Name != "A" {
		t.Fatalf("FindByID failed: %v", got)
	}
	if got := ts.FindByName("B"); got == nil || got.ID != b.ID {
		t.Fatalf("FindByName failed: %v", got)
	}
	if ts.FindByName("missing") != nil {
		t.Error("expected nil for unknown name")
	}

	if !ts.Remove(a.ID) || len(ts.Templates) != 1 {
		t.Error("Remove should drop the template")
	}
	if ts.Remove(a.ID) {
		t.Error("second Remove should report false")
	}

	names := ts.Names()
	if len(names) != 1 || names[0] != "B" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestDefaultTemplatesArePlausible(t *testing.T) {
	ts := DefaultTemplates()
	if len(ts.Templates) == 0 {
		t.Fatal("expected built-in room presets")
	}
	for _, tpl := range ts.Templates {
		if tpl.Room.Surface <= 0 || tpl.Room.Height <= 0 {
			t.Errorf("preset %q has zero dimensions", tpl.Name)
		}
		if tpl.Room.ValveCenterDistance <= 0 {
			t.Errorf("preset %q has no target interaxis", tpl.Name)
		}
	}
}
