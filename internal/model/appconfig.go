package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultWattCoefficient float64 `json:"default_watt_coefficient"`
	DefaultSeries          Series  `json:"default_series"`

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentProjects   []string `json:"recent_projects"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultWattCoefficient: defaults.WattCoefficient,
		DefaultSeries:          SeriesTubular3,
		AutoSaveInterval:       0,
		RecentProjects:         []string{},
		Theme:                  "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// GlobalSettings struct. Used when creating a new project so it inherits
// the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *GlobalSettings) {
	s.WattCoefficient = c.DefaultWattCoefficient
}

// AddRecentProject prepends a path to the recent projects list, dropping
// duplicates and capping the list at max entries.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > max {
		recent = recent[:max]
	}
	c.RecentProjects = recent
}
