// Package activity renders the landing activity feed with a staged
// reveal: rows appear one at a time on a fixed cadence until the list
// is complete. Reveal ticks carry the view's epoch; Stop and Init bump
// it so a tick scheduled before teardown never advances a new session's
// feed.
package activity

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notebook/internal/feed"
	"github.com/marcus/notebook/internal/notebook"
	"github.com/marcus/notebook/internal/styles"
	"github.com/marcus/notebook/internal/view"
)

const (
	viewID   = "activity"
	viewName = "Activity"
	viewIcon = "@"
)

// revealTickMsg advances the staged reveal by one event.
type revealTickMsg struct {
	epoch int
}

// View renders the activity feed.
type View struct {
	ctx     *view.Context
	focused bool

	feed     feed.Feed
	interval time.Duration
	epoch    int
}

// New creates the activity view. A non-positive interval falls back to
// the default cadence.
func New(interval time.Duration) *View {
	if interval <= 0 {
		interval = feed.Interval
	}
	return &View{interval: interval}
}

func (v *View) ID() string   { return viewID }
func (v *View) Name() string { return viewName }
func (v *View) Icon() string { return viewIcon }

// Init binds the view to the current notebook with nothing revealed.
func (v *View) Init(ctx *view.Context) error {
	v.ctx = ctx
	v.feed = feed.New(ctx.Notebook.Activity)
	v.epoch++
	return nil
}

// Start schedules the first reveal. An empty feed is complete from the
// start and schedules nothing.
func (v *View) Start() tea.Cmd {
	if v.feed.Done() {
		return nil
	}
	return v.tick()
}

// Stop orphans any pending reveal tick.
func (v *View) Stop() {
	v.epoch++
}

func (v *View) tick() tea.Cmd {
	epoch := v.epoch
	return tea.Tick(v.interval, func(time.Time) tea.Msg {
		return revealTickMsg{epoch: epoch}
	})
}

// Update advances the reveal on each live tick and reschedules until
// the feed is complete.
func (v *View) Update(msg tea.Msg) (view.View, tea.Cmd) {
	tick, ok := msg.(revealTickMsg)
	if !ok || tick.epoch != v.epoch {
		return v, nil
	}

	v.feed = v.feed.Advance()
	if v.feed.Done() {
		return v, nil
	}
	return v, v.tick()
}

// View renders the revealed prefix, or the empty state.
func (v *View) View(width, height int) string {
	if v.feed.Len() == 0 {
		return styles.EmptyState("No recent activity", width, height)
	}

	header := styles.Title.Render("Recent Activity") + "  " +
		styles.Muted.Render(fmt.Sprintf("%d/%d", v.feed.Revealed(), v.feed.Len()))

	rows := []string{header, ""}
	for _, e := range v.feed.Visible() {
		rows = append(rows, v.renderRow(e, width))
	}

	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *View) renderRow(e notebook.ActivityEvent, width int) string {
	avatar := styles.Avatar.Render(e.AvatarInitials)
	line := styles.Body.Render(e.User) + " " +
		styles.Subtitle.Render(e.Action) + " " +
		styles.Highlight.Render(e.Topic)
	when := styles.Muted.Render(e.Time)

	return lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ",
		lipgloss.JoinVertical(lipgloss.Left, line, when)) + "\n"
}

func (v *View) IsFocused() bool   { return v.focused }
func (v *View) SetFocused(f bool) { v.focused = f }

// Commands returns the available commands. The feed is passive.
func (v *View) Commands() []view.Command { return nil }

func (v *View) FocusContext() string { return viewID }
