package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/RadiaPlan/internal/model"
)

// DefaultTemplatesPath returns the default file path for environment
// templates. This is located at ~/.radiaplan/templates.json.
func DefaultTemplatesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".radiaplan", "templates.json"), nil
}

// SaveTemplates writes the template store to the specified JSON file.
func SaveTemplates(path string, ts model.TemplateStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadTemplates reads the template store from the specified JSON file.
// If the file does not exist, it returns the built-in room presets and
// saves them so the user has a starting point to edit.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ts := model.DefaultTemplates()
			if saveErr := SaveTemplates(path, ts); saveErr != nil {
				return ts, saveErr
			}
			return ts, nil
		}
		return model.TemplateStore{}, err
	}
	var ts model.TemplateStore
	if err := json.Unmarshal(data, &ts); err != nil {
		return model.TemplateStore{}, err
	}
	if ts.Templates == nil {
		ts.Templates = []model.EnvironmentTemplate{}
	}
	return ts, nil
}
