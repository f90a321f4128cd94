package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/notebook"
)

// Message types for tea.Cmd
type (
	// TickMsg is sent on each clock tick.
	TickMsg time.Time

	// ReloadMsg asks the app to reload the notebook bundle from disk.
	ReloadMsg struct{}

	// NotebookLoadedMsg carries the result of a bundle (re)load.
	NotebookLoadedMsg struct {
		Notebook *notebook.Notebook
		Err      error
	}
)

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchCmd waits for the next change notification on ch. The channel
// is closed on watcher teardown; that final receive produces no message.
func watchCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ReloadMsg{}
	}
}

// loadNotebook reads the bundle at path off the event loop.
func loadNotebook(path string) tea.Cmd {
	return func() tea.Msg {
		nb, err := notebook.Load(path)
		return NotebookLoadedMsg{Notebook: nb, Err: err}
	}
}
