package app

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/config"
	"github.com/marcus/notebook/internal/keymap"
	"github.com/marcus/notebook/internal/library"
	"github.com/marcus/notebook/internal/notebook"
	"github.com/marcus/notebook/internal/view"
	"github.com/marcus/notebook/internal/views/flashcards"
	"github.com/marcus/notebook/internal/views/keypoints"
)

func testModel(t *testing.T) Model {
	t.Helper()
	nb := notebook.Sample()

	reg := view.NewRegistry(&view.Context{
		Notebook: nb,
		Logger:   slog.New(slog.DiscardHandler),
	})
	for _, v := range []view.View{keypoints.New(), flashcards.New()} {
		if err := reg.Register(v); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	m := New(reg, keymap.NewRegistry(keymap.DefaultBindings()), config.Default(),
		nb, nil, nil, slog.New(slog.DiscardHandler))
	m.width = 80
	m.height = 24
	m.ready = true
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDigitSwitchesViewInGlobalContext(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, key("2"))
	if m.activeView != 1 {
		t.Errorf("activeView = %d after '2', want 1", m.activeView)
	}
	if m.activeContext != "flashcards" {
		t.Errorf("activeContext = %q", m.activeContext)
	}
}

func TestDigitForwardedInFlashcardsContext(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, key("2"))

	// In the flashcards context, '1' jumps to a card instead of
	// switching views.
	m, _ = update(t, m, key("1"))
	if m.activeView != 1 {
		t.Errorf("activeView = %d, digit stole focus from flashcards", m.activeView)
	}
}

func TestTabCycles(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeView != 1 {
		t.Fatalf("activeView = %d after tab, want 1", m.activeView)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeView != 0 {
		t.Errorf("activeView = %d after second tab, want 0 (wrap)", m.activeView)
	}
}

func TestOnlyActiveViewIsFocused(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, key("2"))

	views := m.registry.Views()
	if views[0].IsFocused() {
		t.Error("previous view still focused")
	}
	if !views[1].IsFocused() {
		t.Error("new active view not focused")
	}
}

func TestQuitConfirm(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, key("q"))
	if !m.showQuitConfirm {
		t.Fatal("quit confirm not shown")
	}

	m, _ = update(t, m, key("n"))
	if m.showQuitConfirm {
		t.Fatal("quit confirm survived 'n'")
	}

	m, _ = update(t, m, key("q"))
	_, cmd := update(t, m, key("y"))
	if cmd == nil {
		t.Fatal("no command on confirmed quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("confirmed quit did not produce tea.Quit")
	}
}

func TestToastLifecycle(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, view.ToastMsg{Message: "saved", Duration: time.Minute})
	if m.statusMsg != "saved" {
		t.Fatalf("statusMsg = %q", m.statusMsg)
	}
	if !strings.Contains(m.renderFooter(), "saved") {
		t.Error("footer does not show toast")
	}

	// Still within its window: the tick must not clear it.
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.statusMsg != "saved" {
		t.Error("tick cleared an unexpired toast")
	}

	m.statusExpiry = time.Now().Add(-time.Second)
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.statusMsg != "" {
		t.Error("expired toast not cleared")
	}
}

func TestNotebookLoadedReinitsViews(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, key("2")) // flashcards
	m, _ = update(t, m, key("1")) // jump within deck

	fresh, err := notebook.Parse([]byte(`{"video_metadata":{"title":"New"},"key_points":["x"],"flashcards":[{"front":"f","back":"b"}],"connections":[],"audio_overview":"o"}`))
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, NotebookLoadedMsg{Notebook: fresh})

	if m.notebook.Title() != "New" {
		t.Errorf("notebook not swapped: %q", m.notebook.Title())
	}
	if m.statusMsg == "" {
		t.Error("no toast after reload")
	}
}

func TestNotebookLoadErrorKeepsOldBundle(t *testing.T) {
	m := testModel(t)
	old := m.notebook

	m, _ = update(t, m, NotebookLoadedMsg{Err: errFake})
	if m.notebook != old {
		t.Error("failed load replaced the bundle")
	}
	if !m.statusIsError {
		t.Error("no error toast after failed load")
	}
}

func TestToggleFooterPersists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := testModel(t)
	if !m.showFooter {
		t.Fatal("footer hidden by default")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlH})
	if m.showFooter {
		t.Error("footer still shown after toggle")
	}
	if m.cfg.UI.ShowFooter {
		t.Error("toggle not written to config")
	}
	if cmd != nil {
		t.Errorf("toggle surfaced a toast on successful save")
	}

	// The setting must survive a restart.
	saved, err := config.LoadFrom(config.ConfigPath())
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if saved.UI.ShowFooter {
		t.Error("saved config still has ShowFooter = true")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlH})
	if !m.showFooter || !m.cfg.UI.ShowFooter {
		t.Error("second toggle did not restore the footer")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, key("?"))
	if !m.showHelp {
		t.Fatal("help not shown")
	}
	out := m.View()
	if !strings.Contains(out, "Keyboard Shortcuts") {
		t.Error("help overlay not rendered")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("help survived escape")
	}
}

func TestSwitcherRequiresLibrary(t *testing.T) {
	m := testModel(t) // library is nil

	m, cmd := update(t, m, key("@"))
	if m.showSwitcher {
		t.Fatal("switcher opened without a library")
	}
	if cmd == nil {
		t.Fatal("no toast command")
	}
	if toast, ok := cmd().(view.ToastMsg); !ok || !toast.IsError {
		t.Error("expected error toast without library")
	}
}

func TestFilterEntries(t *testing.T) {
	all := []library.Entry{
		{Title: "Neural Networks", Path: "/n/nets.json"},
		{Title: "Transformers", Path: "/n/attn.json"},
	}

	if got := filterEntries(all, ""); len(got) != 2 {
		t.Errorf("empty query filtered to %d", len(got))
	}
	if got := filterEntries(all, "neural"); len(got) != 1 || got[0].Title != "Neural Networks" {
		t.Errorf("filterEntries(neural) = %v", got)
	}
	if got := filterEntries(all, "attn"); len(got) != 1 || got[0].Title != "Transformers" {
		t.Errorf("filterEntries by file name = %v", got)
	}
	if got := filterEntries(all, "zzz"); len(got) != 0 {
		t.Errorf("filterEntries(zzz) = %v", got)
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "fake failure" }
