package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/config"
	"github.com/marcus/notebook/internal/view"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case view.ToastMsg:
		m.ShowToast(msg.Message, msg.Duration, msg.IsError)
		return m, nil

	case ReloadMsg:
		// Watcher fired; reload the bundle and re-arm the watcher.
		if m.watchCh != nil {
			cmds = append(cmds, watchCmd(m.watchCh))
		}
		if m.notebook.Path != "" {
			m.logger.Info("notebook changed on disk", "path", m.notebook.Path)
			cmds = append(cmds, loadNotebook(m.notebook.Path))
		}
		return m, tea.Batch(cmds...)

	case NotebookLoadedMsg:
		return m.handleNotebookLoaded(msg)
	}

	// Forward other messages to all views. Timer messages (reveal
	// ticks, copy resets) must reach their view even when another
	// view is focused.
	views := m.registry.Views()
	for i, v := range views {
		newView, cmd := v.Update(msg)
		views[i] = newView
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if !m.hasModal() {
		m.updateContext()
	}

	return m, tea.Batch(cmds...)
}

// handleNotebookLoaded swaps in a freshly loaded bundle. Every view is
// reinitialized: navigation, playback and reveal state do not survive
// a reload.
func (m Model) handleNotebookLoaded(msg NotebookLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("notebook load failed", "error", msg.Err)
		m.ShowToast("Reload failed: "+msg.Err.Error(), 5*time.Second, true)
		return m, nil
	}

	m.notebook = msg.Notebook
	if m.library != nil {
		err := m.library.Record(msg.Notebook.Fingerprint, msg.Notebook.Title(), msg.Notebook.Path)
		if err != nil {
			m.logger.Warn("library record failed", "error", err)
		}
	}

	cmds, err := m.registry.Reinit(msg.Notebook)
	if err != nil {
		m.logger.Error("view reinit failed", "error", err)
		m.ShowToast("Reload failed: "+err.Error(), 5*time.Second, true)
		return m, nil
	}

	m.updateContext()
	m.ShowToast("Loaded "+msg.Notebook.Title(), 2*time.Second, false)
	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Close modals with escape
	if msg.Type == tea.KeyEsc {
		switch m.activeModal() {
		case ModalHelp:
			m.showHelp = false
			return m, nil
		case ModalQuitConfirm:
			m.showQuitConfirm = false
			return m, nil
		case ModalSwitcher:
			m.closeSwitcher()
			return m, nil
		}
	}

	if m.showQuitConfirm {
		if msg.String() == "y" || msg.Type == tea.KeyEnter {
			m.registry.Stop()
			return m, tea.Quit
		}
		if msg.String() == "n" {
			m.showQuitConfirm = false
		}
		return m, nil
	}

	// The switcher filter captures all typing.
	if m.showSwitcher {
		return m.handleSwitcherKey(msg)
	}

	// ctrl+c always takes precedence.
	if msg.String() == "ctrl+c" {
		m.showQuitConfirm = true
		return m, nil
	}

	if m.showHelp {
		if msg.String() == "?" {
			m.showHelp = false
		}
		return m, nil
	}

	command, ok := m.keymap.Lookup(msg.String(), m.activeContext)
	if ok {
		if model, cmd, handled := m.dispatch(command); handled {
			return model, cmd
		}
	}

	// Not an app command; the focused view owns the key.
	return m.forwardToActiveView(msg)
}

// dispatch executes an app-level command. handled is false for
// view-level commands, which travel to the view as raw keys.
func (m Model) dispatch(command string) (tea.Model, tea.Cmd, bool) {
	switch command {
	case "quit":
		m.showQuitConfirm = true
		return m, nil, true
	case "next-view":
		return m, m.NextView(), true
	case "prev-view":
		return m, m.PrevView(), true
	case "toggle-help":
		m.showHelp = true
		return m, nil, true
	case "toggle-footer":
		m.showFooter = !m.showFooter
		m.cfg.UI.ShowFooter = m.showFooter
		if err := config.Save(m.cfg); err != nil {
			m.logger.Warn("config save failed", "error", err)
			return m, view.ErrorToast("Footer toggled (save failed: "+err.Error()+")", 3*time.Second), true
		}
		return m, nil, true
	case "switch-notebook":
		return m, m.openSwitcher(), true
	case "reload":
		if m.notebook.Path == "" {
			return m, nil, true
		}
		return m, loadNotebook(m.notebook.Path), true
	}

	if idx, ok := strings.CutPrefix(command, "focus-view-"); ok && len(idx) == 1 {
		return m, m.SetActiveView(int(idx[0]-'1')), true
	}

	return m, nil, false
}

func (m Model) forwardToActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.ActiveView()
	if v == nil {
		return m, nil
	}

	newView, cmd := v.Update(msg)
	views := m.registry.Views()
	if m.activeView < len(views) {
		views[m.activeView] = newView
	}
	m.updateContext()
	return m, cmd
}
