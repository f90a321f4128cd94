package feed

import (
	"testing"

	"github.com/marcus/notebook/internal/notebook"
)

func events(n int) []notebook.ActivityEvent {
	out := make([]notebook.ActivityEvent, n)
	for i := range out {
		out[i] = notebook.ActivityEvent{ID: i + 1}
	}
	return out
}

func TestRevealIsOrderedPrefix(t *testing.T) {
	src := events(5)
	f := New(src)

	if f.Revealed() != 0 || f.Done() {
		t.Fatalf("initial state: revealed=%d done=%v", f.Revealed(), f.Done())
	}

	for k := 1; k <= 5; k++ {
		f = f.Advance()
		vis := f.Visible()
		if len(vis) != k {
			t.Fatalf("after advance %d: len(Visible()) = %d", k, len(vis))
		}
		for i := range vis {
			if vis[i].ID != src[i].ID {
				t.Fatalf("after advance %d: Visible()[%d].ID = %d, want %d", k, i, vis[i].ID, src[i].ID)
			}
		}
	}

	if !f.Done() {
		t.Error("Done() = false after revealing everything")
	}
}

func TestAdvancePastEndIsNoOp(t *testing.T) {
	f := New(events(2)).Advance().Advance()
	for i := 0; i < 3; i++ {
		f = f.Advance()
	}
	if f.Revealed() != 2 {
		t.Errorf("Revealed() = %d after over-advancing, want 2", f.Revealed())
	}
}

func TestEmptyFeedIsTerminal(t *testing.T) {
	f := New(nil)
	if !f.Done() {
		t.Error("empty feed Done() = false")
	}
	if got := f.Advance().Revealed(); got != 0 {
		t.Errorf("Advance() on empty feed revealed %d", got)
	}
	if len(f.Visible()) != 0 {
		t.Errorf("Visible() = %v, want empty", f.Visible())
	}
}

func TestStagedTimeline(t *testing.T) {
	// n = 3 events: after the k-th tick exactly k are visible, then the
	// machine is terminal and schedules nothing further.
	f := New(events(3))
	ticks := 0
	for !f.Done() {
		f = f.Advance()
		ticks++
		if f.Revealed() != ticks {
			t.Fatalf("after tick %d: revealed = %d", ticks, f.Revealed())
		}
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
}
