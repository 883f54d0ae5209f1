package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultBoardWidth    int                 `json:"default_board_width"`
	DefaultBoardHeight   int                 `json:"default_board_height"`
	DefaultNegativeValue NegativeValuePolicy `json:"default_negative_values"`
	DefaultAllowRotation bool                `json:"default_allow_rotation"`
	DefaultMaxCells      int                 `json:"default_max_cells"`
	DefaultWorkers       int                 `json:"default_workers"`
	DefaultGCodeProfile  string              `json:"default_gcode_profile"`

	// Application preferences
	LogLevel       string   `json:"log_level"` // zerolog level name
	ServerAddr     string   `json:"server_addr"`
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig matching DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultBoardWidth:    5,
		DefaultBoardHeight:   8,
		DefaultNegativeValue: defaults.NegativeValues,
		DefaultAllowRotation: defaults.AllowRotation,
		DefaultMaxCells:      defaults.MaxCells,
		DefaultWorkers:       defaults.Workers,
		DefaultGCodeProfile:  defaults.Machine.GCodeProfile,
		LogLevel:             "info",
		ServerAddr:           ":8080",
		RecentProjects:       []string{},
	}
}

// ApplyToSettings copies the defaults into s so new projects inherit them.
func (c AppConfig) ApplyToSettings(s *Settings) {
	s.NegativeValues = c.DefaultNegativeValue
	s.AllowRotation = c.DefaultAllowRotation
	s.MaxCells = c.DefaultMaxCells
	s.Workers = c.DefaultWorkers
	s.Machine.GCodeProfile = c.DefaultGCodeProfile
}

// AddRecentProject moves path to the front of the recent list, keeping at most limit entries.
func (c *AppConfig) AddRecentProject(path string, limit int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentProjects = recent
}
