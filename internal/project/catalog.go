package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/RadiaPlan/internal/model"
)

// DefaultCatalogPath returns the default file path for the user's custom
// radiator catalog. This is located at ~/.radiaplan/catalog.json.
func DefaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".radiaplan", "catalog.json"), nil
}

// SaveCatalog writes the custom catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, catalog []model.RadiatorModel) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the custom catalog from the specified JSON file.
// A missing file is an empty catalog, not an error.
func LoadCatalog(path string) ([]model.RadiatorModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.RadiatorModel{}, nil
		}
		return nil, err
	}
	var catalog []model.RadiatorModel
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadOrCreateCatalog loads the custom catalog from the default path.
func LoadOrCreateCatalog() ([]model.RadiatorModel, string, error) {
	path, err := DefaultCatalogPath()
	if err != nil {
		return []model.RadiatorModel{}, "", err
	}
	catalog, err := LoadCatalog(path)
	return catalog, path, err
}

// ExportCatalog exports the custom catalog to a user-specified JSON file.
func ExportCatalog(path string, catalog []model.RadiatorModel) error {
	return SaveCatalog(path, catalog)
}

// ImportCatalog imports models from a user-specified JSON file, merging
// them with the existing catalog. Duplicate IDs are skipped; entries
// without an ID are assigned one.
func ImportCatalog(path string, existing []model.RadiatorModel) ([]model.RadiatorModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported []model.RadiatorModel
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}
	return MergeCatalog(existing, imported), nil
}

// MergeCatalog appends imported models to an existing catalog, skipping
// duplicate IDs. Catalog order is meaningful to the matching engine, so
// existing entries keep their positions and imports append in file order.
func MergeCatalog(existing, imported []model.RadiatorModel) []model.RadiatorModel {
	ids := make(map[string]bool, len(existing))
	for _, m := range existing {
		ids[m.ID] = true
	}

	for _, m := range imported {
		if m.ID == "" {
			withID := model.NewRadiatorModel(m.Label, m.Height, m.Interaxis, m.Watts)
			withID.Brand = m.Brand
			m = withID
		}
		if !ids[m.ID] {
			existing = append(existing, m)
			ids[m.ID] = true
		}
	}
	return existing
}
