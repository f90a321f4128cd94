// Package view defines the interface every notebook view implements
// and the registry the app drives them through. Views are the tabbed
// surfaces of the viewer; each owns its navigation state exclusively
// and rebuilds it when the notebook is replaced.
package view

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/notebook"
)

// View is a single tabbed surface over the notebook.
type View interface {
	ID() string
	Name() string
	Icon() string

	// Init binds the view to a context. Called again on notebook
	// reload; views must rebuild their state from ctx.Notebook.
	Init(ctx *Context) error

	// Start returns the view's initial command, if any.
	Start() tea.Cmd

	// Stop releases resources and cancels any pending timers.
	Stop()

	Update(msg tea.Msg) (View, tea.Cmd)
	View(width, height int) string

	IsFocused() bool
	SetFocused(bool)

	// Commands lists the key bindings the footer and help surface.
	Commands() []Command

	// FocusContext names the active input context for key routing.
	FocusContext() string
}

// Context carries the shared collaborators views render through.
type Context struct {
	Notebook    *notebook.Notebook
	DownloadDir string
	Logger      *slog.Logger
}

// Command describes one key binding a view exposes.
type Command struct {
	ID          string
	Name        string
	Key         string
	Description string
	Context     string
	// Disabled commands render dimmed in the footer; the binding is a
	// no-op (e.g. next/previous with fewer than two flashcards).
	Disabled bool
}

// FocusedMsg is sent to a view when it becomes the active tab.
type FocusedMsg struct{}

// BlurredMsg is sent to a view when it stops being the active tab.
type BlurredMsg struct{}

// ToastMsg asks the app to show a transient status message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool
}

// Toast returns a command that surfaces a transient message.
func Toast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration}
	}
}

// ErrorToast returns a command that surfaces a transient error message.
func ErrorToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration, IsError: true}
	}
}
