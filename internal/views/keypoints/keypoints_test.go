package keypoints

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/notebook"
	"github.com/marcus/notebook/internal/view"
)

func newTestView(t *testing.T, points []string) *View {
	t.Helper()
	v := New()
	err := v.Init(&view.Context{Notebook: &notebook.Notebook{KeyPoints: points}})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return v
}

func TestViewNumbersFromPosition(t *testing.T) {
	v := newTestView(t, []string{"first point", "second point", "third point"})

	out := v.View(80, 24)
	for _, want := range []string{"1.", "2.", "3.", "first point", "third point"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewEmptyState(t *testing.T) {
	v := newTestView(t, nil)

	out := v.View(80, 24)
	if !strings.Contains(out, "No key points available") {
		t.Error("View() missing empty state message")
	}
	if strings.Contains(out, "1.") {
		t.Error("View() rendered list items for empty input")
	}
}

func TestScrollBounds(t *testing.T) {
	v := newTestView(t, []string{"a", "b"})
	v.SetFocused(true)

	press := func(key string) {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}

	press("k")
	if v.offset != 0 {
		t.Errorf("offset = %d after up at top, want 0", v.offset)
	}
	press("j")
	press("j")
	press("j")
	if v.offset != 1 {
		t.Errorf("offset = %d after over-scroll, want 1", v.offset)
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	v := newTestView(t, []string{"a", "b"})

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if v.offset != 0 {
		t.Errorf("offset = %d for unfocused view, want 0", v.offset)
	}
}
