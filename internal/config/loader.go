package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/notebook"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Durations are
// strings ("800ms") and booleans are pointers so absent fields fall
// back to defaults instead of zero values.
type rawConfig struct {
	UI     rawUIConfig     `json:"ui"`
	Viewer rawViewerConfig `json:"viewer"`
}

type rawUIConfig struct {
	ShowFooter *bool `json:"showFooter"`
}

type rawViewerConfig struct {
	RevealInterval string `json:"revealInterval"`
	DownloadDir    string `json:"downloadDir"`
	LibraryPath    string `json:"libraryPath"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notebook/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	cfg.Viewer.DownloadDir = ExpandPath(cfg.Viewer.DownloadDir)
	cfg.Viewer.LibraryPath = ExpandPath(cfg.Viewer.LibraryPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the defaults.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.Viewer.RevealInterval != "" {
		if d, err := time.ParseDuration(raw.Viewer.RevealInterval); err == nil {
			cfg.Viewer.RevealInterval = d
		}
	}
	if raw.Viewer.DownloadDir != "" {
		cfg.Viewer.DownloadDir = raw.Viewer.DownloadDir
	}
	if raw.Viewer.LibraryPath != "" {
		cfg.Viewer.LibraryPath = raw.Viewer.LibraryPath
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// LibraryPath returns the configured library database path, or the
// default under the config dir.
func (c *Config) ResolvedLibraryPath() string {
	if c.Viewer.LibraryPath != "" {
		return c.Viewer.LibraryPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, "library.db")
}
