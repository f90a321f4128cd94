// Package keypoints renders the notebook's key takeaways as a numbered
// list. Ranks come from list position, nothing else.
package keypoints

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notebook/internal/styles"
	"github.com/marcus/notebook/internal/view"
)

const (
	viewID   = "key-points"
	viewName = "Key Points"
	viewIcon = "K"
)

// View renders the key points list.
type View struct {
	ctx     *view.Context
	focused bool

	points []string
	offset int
}

// New creates the key points view.
func New() *View {
	return &View{}
}

func (v *View) ID() string   { return viewID }
func (v *View) Name() string { return viewName }
func (v *View) Icon() string { return viewIcon }

// Init binds the view to the current notebook.
func (v *View) Init(ctx *view.Context) error {
	v.ctx = ctx
	v.points = ctx.Notebook.KeyPoints
	v.offset = 0
	return nil
}

func (v *View) Start() tea.Cmd { return nil }
func (v *View) Stop()          {}

// Update handles scrolling.
func (v *View) Update(msg tea.Msg) (view.View, tea.Cmd) {
	if _, ok := msg.(view.FocusedMsg); ok && v.focused {
		// Returning to the tab starts back at the top.
		v.offset = 0
		return v, nil
	}

	if !v.focused {
		return v, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "j", "down":
			if v.offset < len(v.points)-1 {
				v.offset++
			}
		case "k", "up":
			if v.offset > 0 {
				v.offset--
			}
		}
	}

	return v, nil
}

// View renders the numbered list, or the empty state.
func (v *View) View(width, height int) string {
	if len(v.points) == 0 {
		return styles.EmptyState("No key points available", width, height)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Key Points (%d)", len(v.points))))
	b.WriteString("\n\n")

	bodyWidth := width - 6
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	for i := v.offset; i < len(v.points); i++ {
		rank := styles.Highlight.Render(fmt.Sprintf("%2d.", i+1))
		text := lipgloss.NewStyle().Width(bodyWidth).Render(v.points[i])
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rank, " ", text))
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(b.String())
}

func (v *View) IsFocused() bool   { return v.focused }
func (v *View) SetFocused(f bool) { v.focused = f }

// Commands returns the available commands.
func (v *View) Commands() []view.Command {
	return []view.Command{
		{ID: "cursor-down", Name: "Scroll down", Key: "j", Context: viewID},
		{ID: "cursor-up", Name: "Scroll up", Key: "k", Context: viewID},
	}
}

func (v *View) FocusContext() string { return viewID }
