package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	UI     saveUIConfig     `json:"ui"`
	Viewer saveViewerConfig `json:"viewer"`
}

type saveUIConfig struct {
	ShowFooter *bool `json:"showFooter,omitempty"`
}

type saveViewerConfig struct {
	RevealInterval string `json:"revealInterval,omitempty"`
	DownloadDir    string `json:"downloadDir,omitempty"`
	LibraryPath    string `json:"libraryPath,omitempty"`
}

// Save writes the config to ~/.config/notebook/config.json
func Save(cfg *Config) error {
	path := ConfigPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := saveConfig{
		UI: saveUIConfig{
			ShowFooter: &cfg.UI.ShowFooter,
		},
		Viewer: saveViewerConfig{
			RevealInterval: cfg.Viewer.RevealInterval.String(),
			DownloadDir:    cfg.Viewer.DownloadDir,
			LibraryPath:    cfg.Viewer.LibraryPath,
		},
	}

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
