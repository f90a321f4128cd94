package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if !cfg.UI.ShowFooter {
		t.Error("default ShowFooter = false")
	}
	if cfg.Viewer.RevealInterval != 800*time.Millisecond {
		t.Errorf("default RevealInterval = %v", cfg.Viewer.RevealInterval)
	}
}

func TestLoadFromMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"ui": {"showFooter": false},
		"viewer": {"revealInterval": "1200ms", "downloadDir": "/tmp/dl"}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.UI.ShowFooter {
		t.Error("ShowFooter override not applied")
	}
	if cfg.Viewer.RevealInterval != 1200*time.Millisecond {
		t.Errorf("RevealInterval = %v, want 1.2s", cfg.Viewer.RevealInterval)
	}
	if cfg.Viewer.DownloadDir != "/tmp/dl" {
		t.Errorf("DownloadDir = %q", cfg.Viewer.DownloadDir)
	}
}

func TestLoadFromBadDurationKeepsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"viewer": {"revealInterval": "soon"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Viewer.RevealInterval != 800*time.Millisecond {
		t.Errorf("RevealInterval = %v, want default", cfg.Viewer.RevealInterval)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() = nil error for invalid JSON")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Viewer.RevealInterval != 800*time.Millisecond {
		t.Errorf("RevealInterval = %v after clamp", cfg.Viewer.RevealInterval)
	}
	if cfg.Viewer.DownloadDir == "" {
		t.Error("DownloadDir empty after clamp")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := ExpandPath("~/x"); got != filepath.Join(home, "x") {
		t.Errorf("ExpandPath(~/x) = %q", got)
	}
	if got := ExpandPath("/abs/x"); got != "/abs/x" {
		t.Errorf("ExpandPath(/abs/x) = %q", got)
	}
}
