// Package app hosts the root Bubble Tea model: the tab bar over the
// registered views, app-level modals (help, quit confirm, notebook
// switcher), toast display, and notebook reload plumbing.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/config"
	"github.com/marcus/notebook/internal/keymap"
	"github.com/marcus/notebook/internal/library"
	"github.com/marcus/notebook/internal/notebook"
	"github.com/marcus/notebook/internal/view"
)

// ModalKind identifies an app-level modal with explicit priority
// ordering. Lower values are checked first for rendering and input.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalHelp
	ModalQuitConfirm
	ModalSwitcher
)

// Model is the root Bubble Tea model for the viewer.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	registry   *view.Registry
	activeView int

	keymap        *keymap.Registry
	activeContext string

	notebook *notebook.Notebook
	library  *library.Store // nil when the library could not open

	// Watcher notifications; nil when no file is being watched.
	watchCh <-chan struct{}

	// UI state
	width, height   int
	ready           bool
	showHelp        bool
	showFooter      bool
	showQuitConfirm bool

	// Notebook switcher modal
	showSwitcher     bool
	switcherInput    textinput.Model
	switcherAll      []library.Entry
	switcherFiltered []library.Entry
	switcherCursor   int

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool
}

// New creates the application model. lib and watchCh may be nil.
func New(reg *view.Registry, km *keymap.Registry, cfg *config.Config,
	nb *notebook.Notebook, lib *library.Store, watchCh <-chan struct{},
	logger *slog.Logger) Model {
	m := Model{
		cfg:           cfg,
		logger:        logger,
		registry:      reg,
		keymap:        km,
		notebook:      nb,
		library:       lib,
		watchCh:       watchCh,
		activeContext: "global",
		showFooter:    cfg.UI.ShowFooter,
	}
	if v := m.ActiveView(); v != nil {
		v.SetFocused(true)
		m.activeContext = v.FocusContext()
	}
	return m
}

// Init starts the clock, the registered views, and the file watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	cmds = append(cmds, m.registry.Start()...)
	if m.watchCh != nil {
		cmds = append(cmds, watchCmd(m.watchCh))
	}
	return tea.Batch(cmds...)
}

// ActiveView returns the currently active view.
func (m Model) ActiveView() view.View {
	views := m.registry.Views()
	if len(views) == 0 {
		return nil
	}
	if m.activeView >= len(views) {
		m.activeView = 0
	}
	return views[m.activeView]
}

// SetActiveView switches focus to the view at idx.
func (m *Model) SetActiveView(idx int) tea.Cmd {
	views := m.registry.Views()
	if idx < 0 || idx >= len(views) {
		return nil
	}
	if current := m.ActiveView(); current != nil {
		current.SetFocused(false)
	}
	m.activeView = idx
	next := m.ActiveView()
	next.SetFocused(true)
	m.activeContext = next.FocusContext()
	// Broadcast the focus change; views clear transient state on blur.
	return tea.Batch(
		func() tea.Msg { return view.BlurredMsg{} },
		func() tea.Msg { return view.FocusedMsg{} },
	)
}

// NextView switches to the next view in tab order.
func (m *Model) NextView() tea.Cmd {
	views := m.registry.Views()
	if len(views) == 0 {
		return nil
	}
	return m.SetActiveView((m.activeView + 1) % len(views))
}

// PrevView switches to the previous view in tab order.
func (m *Model) PrevView() tea.Cmd {
	views := m.registry.Views()
	if len(views) == 0 {
		return nil
	}
	idx := m.activeView - 1
	if idx < 0 {
		idx = len(views) - 1
	}
	return m.SetActiveView(idx)
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// activeModal returns the highest-priority open modal.
func (m *Model) activeModal() ModalKind {
	switch {
	case m.showHelp:
		return ModalHelp
	case m.showQuitConfirm:
		return ModalQuitConfirm
	case m.showSwitcher:
		return ModalSwitcher
	default:
		return ModalNone
	}
}

func (m *Model) hasModal() bool {
	return m.activeModal() != ModalNone
}

// updateContext sets activeContext from the focused view.
func (m *Model) updateContext() {
	if m.showSwitcher {
		m.activeContext = "switcher"
		return
	}
	if v := m.ActiveView(); v != nil {
		m.activeContext = v.FocusContext()
		return
	}
	m.activeContext = "global"
}
