// Package connections renders the notebook's topic connections as a
// card list with a movable cursor. Position is layout only; cards
// carry no semantic numbering.
package connections

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notebook/internal/notebook"
	"github.com/marcus/notebook/internal/styles"
	"github.com/marcus/notebook/internal/view"
)

const (
	viewID   = "connections"
	viewName = "Connections"
	viewIcon = "C"
)

// View renders the connection cards.
type View struct {
	ctx     *view.Context
	focused bool

	connections []notebook.Connection
	cursor      int
}

// New creates the connections view.
func New() *View {
	return &View{}
}

func (v *View) ID() string   { return viewID }
func (v *View) Name() string { return viewName }
func (v *View) Icon() string { return viewIcon }

// Init binds the view to the current notebook.
func (v *View) Init(ctx *view.Context) error {
	v.ctx = ctx
	v.connections = ctx.Notebook.Connections
	v.cursor = 0
	return nil
}

func (v *View) Start() tea.Cmd { return nil }
func (v *View) Stop()          {}

// Update handles cursor movement.
func (v *View) Update(msg tea.Msg) (view.View, tea.Cmd) {
	if !v.focused {
		return v, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "j", "down":
			if v.cursor < len(v.connections)-1 {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		}
	}

	return v, nil
}

// View renders the card list, or the empty state.
func (v *View) View(width, height int) string {
	if len(v.connections) == 0 {
		return styles.EmptyState("No connections available", width, height)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Connections (%d)", len(v.connections))))
	b.WriteString("\n\n")

	cardWidth := width - 4
	if cardWidth < 30 {
		cardWidth = 30
	}

	for i, c := range v.connections {
		b.WriteString(v.renderCard(c, i == v.cursor, cardWidth))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(b.String())
}

func (v *View) renderCard(c notebook.Connection, active bool, width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(c.Topic))
	b.WriteString("\n")
	b.WriteString(styles.Body.Render(c.Connection))
	if c.Relevance != "" {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("Relevance: ") + styles.Highlight.Render(c.Relevance))
	}

	style := styles.PanelInactive
	if active {
		style = styles.PanelActive
	}
	return style.Width(width).Render(b.String())
}

func (v *View) IsFocused() bool   { return v.focused }
func (v *View) SetFocused(f bool) { v.focused = f }

// Commands returns the available commands.
func (v *View) Commands() []view.Command {
	return []view.Command{
		{ID: "cursor-down", Name: "Next card", Key: "j", Context: viewID},
		{ID: "cursor-up", Name: "Previous card", Key: "k", Context: viewID},
	}
}

func (v *View) FocusContext() string { return viewID }
