// Package config loads and saves the viewer configuration.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	UI     UIConfig     `json:"ui"`
	Viewer ViewerConfig `json:"viewer"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool `json:"showFooter"`
}

// ViewerConfig configures viewer behavior.
type ViewerConfig struct {
	// RevealInterval paces the landing activity feed.
	RevealInterval time.Duration `json:"revealInterval"`
	// DownloadDir receives downloaded scripts. Supports ~ expansion.
	DownloadDir string `json:"downloadDir"`
	// LibraryPath is the recent-notebook database. Empty = default
	// location under the user config dir.
	LibraryPath string `json:"libraryPath"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowFooter: true,
		},
		Viewer: ViewerConfig{
			RevealInterval: 800 * time.Millisecond,
			DownloadDir:    "~/Downloads",
		},
	}
}

// Validate clamps invalid values back to defaults.
func (c *Config) Validate() error {
	if c.Viewer.RevealInterval <= 0 {
		c.Viewer.RevealInterval = 800 * time.Millisecond
	}
	if c.Viewer.DownloadDir == "" {
		c.Viewer.DownloadDir = "~/Downloads"
	}
	return nil
}
