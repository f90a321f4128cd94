// Package flashcards renders the flashcard deck: one card at a time,
// flipped and paged through the deck navigator. All transition rules
// (wraparound, flip reset) live in the navigator; this view only maps
// keys to transitions and draws the result.
package flashcards

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notebook/internal/deck"
	"github.com/marcus/notebook/internal/styles"
	"github.com/marcus/notebook/internal/view"
)

const (
	viewID   = "flashcards"
	viewName = "Flashcards"
	viewIcon = "F"
)

// View renders the flashcard deck.
type View struct {
	ctx     *view.Context
	focused bool

	nav deck.Navigator
}

// New creates the flashcards view.
func New() *View {
	return &View{}
}

func (v *View) ID() string   { return viewID }
func (v *View) Name() string { return viewName }
func (v *View) Icon() string { return viewIcon }

// Init binds the view to the current notebook, rebuilding the
// navigator at the first card, front showing.
func (v *View) Init(ctx *view.Context) error {
	v.ctx = ctx
	v.nav = deck.New(ctx.Notebook.Flashcards)
	return nil
}

func (v *View) Start() tea.Cmd { return nil }
func (v *View) Stop()          {}

// Update maps keys to navigator transitions.
func (v *View) Update(msg tea.Msg) (view.View, tea.Cmd) {
	if !v.focused {
		return v, nil
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key := km.String(); key {
	case "l", "right", "n":
		if v.nav.CanNavigate() {
			v.nav = v.nav.Next()
		}
	case "h", "left", "p":
		if v.nav.CanNavigate() {
			v.nav = v.nav.Previous()
		}
	case " ", "enter", "f":
		v.nav = v.nav.Flip()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		v.nav = v.nav.JumpTo(int(key[0]-'0') - 1)
	}

	return v, nil
}

// View renders the current card, or the empty state.
func (v *View) View(width, height int) string {
	card, ok := v.nav.Current()
	if !ok {
		return styles.EmptyState("No flashcards available", width, height)
	}

	cardWidth := width - 10
	if cardWidth < 30 {
		cardWidth = 30
	}

	var face string
	var label string
	if v.nav.Flipped() {
		face = styles.CardFlipped.Width(cardWidth).Render(card.Back)
		label = styles.Highlight.Render("Answer")
	} else {
		face = styles.Card.Width(cardWidth).Render(card.Front)
		label = styles.Subtitle.Render("Question")
	}

	progress := styles.Muted.Render(
		fmt.Sprintf("Card %d of %d", v.nav.Index()+1, v.nav.Len()))

	var hints []string
	if v.nav.CanNavigate() {
		hints = append(hints, styles.KeyHint.Render("h/l navigate"))
	} else {
		hints = append(hints, styles.Subtle.Render(" h/l navigate "))
	}
	hints = append(hints, styles.KeyHint.Render("space flip"))

	body := strings.Join([]string{
		label,
		face,
		progress,
		lipgloss.JoinHorizontal(lipgloss.Top, hints...),
	}, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (v *View) IsFocused() bool   { return v.focused }
func (v *View) SetFocused(f bool) { v.focused = f }

// Commands returns the available commands. Next/previous are disabled
// when the deck has fewer than two cards: they would wrap to self.
func (v *View) Commands() []view.Command {
	noNav := !v.nav.CanNavigate()
	return []view.Command{
		{ID: "next-card", Name: "Next card", Key: "l", Context: viewID, Disabled: noNav},
		{ID: "prev-card", Name: "Previous card", Key: "h", Context: viewID, Disabled: noNav},
		{ID: "flip-card", Name: "Flip card", Key: "space", Context: viewID, Disabled: v.nav.Len() == 0},
	}
}

func (v *View) FocusContext() string { return viewID }
