package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/app"
	"github.com/marcus/notebook/internal/config"
	"github.com/marcus/notebook/internal/keymap"
	"github.com/marcus/notebook/internal/library"
	"github.com/marcus/notebook/internal/notebook"
	"github.com/marcus/notebook/internal/playback"
	"github.com/marcus/notebook/internal/view"
	"github.com/marcus/notebook/internal/views/activity"
	"github.com/marcus/notebook/internal/views/audio"
	"github.com/marcus/notebook/internal/views/connections"
	"github.com/marcus/notebook/internal/views/flashcards"
	"github.com/marcus/notebook/internal/views/keypoints"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("notebook version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Load the bundle; with no argument the embedded sample is shown.
	nb, err := loadBundle(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load notebook: %v\n", err)
		os.Exit(1)
	}

	// The library is optional: a broken database degrades to no
	// switcher, not a startup failure.
	var lib *library.Store
	if path := cfg.ResolvedLibraryPath(); path != "" {
		lib, err = library.Open(path)
		if err != nil {
			logger.Warn("notebook library unavailable", "error", err)
			lib = nil
		} else {
			defer lib.Close()
			if nb.Path != "" {
				if err := lib.Record(nb.Fingerprint, nb.Title(), nb.Path); err != nil {
					logger.Warn("library record failed", "error", err)
				}
			}
		}
	}

	// Watch the bundle file for generator rewrites.
	var watchCh <-chan struct{}
	stop := make(chan struct{})
	defer close(stop)
	if nb.Path != "" {
		watchCh, err = notebook.Watch(nb.Path, stop)
		if err != nil {
			logger.Warn("file watch unavailable", "error", err)
			watchCh = nil
		}
	}

	registry := view.NewRegistry(&view.Context{
		Notebook:    nb,
		DownloadDir: cfg.Viewer.DownloadDir,
		Logger:      logger,
	})

	// Registration order determines tab order.
	views := []view.View{
		activity.New(cfg.Viewer.RevealInterval),
		keypoints.New(),
		flashcards.New(),
		connections.New(),
		audio.NewWithCapabilities(playback.SystemClipboard{},
			playback.DirSaver{Dir: cfg.Viewer.DownloadDir}),
	}
	for _, v := range views {
		if err := registry.Register(v); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register view: %v\n", err)
			os.Exit(1)
		}
	}

	km := keymap.NewRegistry(keymap.DefaultBindings())

	model := app.New(registry, km, cfg, nb, lib, watchCh, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func loadBundle(arg string) (*notebook.Notebook, error) {
	if arg == "" {
		return notebook.Sample(), nil
	}
	path, err := filepath.Abs(arg)
	if err != nil {
		return nil, err
	}
	return notebook.Load(path)
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notebook [options] [bundle.json]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal viewer for generated study notebooks.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
