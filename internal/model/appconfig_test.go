package model

import "testing"

func TestDefaultAppConfigMatchesSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	if cfg.DefaultWattCoefficient != DefaultSettings().WattCoefficient {
		t.Errorf("config default %v != settings default %v",
			cfg.DefaultWattCoefficient, DefaultSettings().WattCoefficient)
	}
	if cfg.DefaultSeries != SeriesTubular3 {
		t.Errorf("unexpected default series %v", cfg.DefaultSeries)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects must never be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultWattCoefficient = 35

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)
	if s.WattCoefficient != 35 {
		t.Errorf("expected coefficient 35, got %v", s.WattCoefficient)
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentProject("/a", 3)
	cfg.AddRecentProject("/b", 3)
	cfg.AddRecentProject("/a", 3) // re-open moves to front, no duplicate

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 entries, got %v", cfg.RecentProjects)
	}
	if cfg.RecentProjects[0] != "/a" || cfg.RecentProjects[1] != "/b" {
		t.Errorf("unexpected order: %v", cfg.RecentProjects)
	}

	cfg.AddRecentProject("/c", 3)
	cfg.AddRecentProject("/d", 3)
	if len(cfg.RecentProjects) != 3 {
		t.Errorf("list must be capped at max, got %v", cfg.RecentProjects)
	}
}
