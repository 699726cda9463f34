package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/RadiaPlan/internal/model"
)

// Save writes a project to the given path as indented JSON, creating
// parent directories as needed. Sizing results are never part of the file:
// they are derived and recomputed on load.
func Save(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given path.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Environments == nil {
		p.Environments = []model.Environment{}
	}
	// Older project files carry no settings block; fall back to defaults.
	if p.Settings.WattCoefficient == 0 {
		p.Settings = model.DefaultSettings()
	}
	return p, nil
}
