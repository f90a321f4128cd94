// Package feed implements the staged reveal of a fixed activity list:
// items become visible one at a time on a fixed cadence until the whole
// list is shown. The machine itself is pure; the timer lives in the
// view, which drops stale ticks by generation so nothing fires against
// torn-down state.
package feed

import (
	"time"

	"github.com/marcus/notebook/internal/notebook"
)

// Interval is the reveal cadence.
const Interval = 800 * time.Millisecond

// Feed tracks how much of the event list is visible. The visible set
// is always a prefix of the source list in original order; it grows
// monotonically and never shrinks or reorders.
type Feed struct {
	events   []notebook.ActivityEvent
	revealed int
}

// New creates a feed with nothing revealed. The slice is not copied;
// callers must not mutate it.
func New(events []notebook.ActivityEvent) Feed {
	return Feed{events: events}
}

// Advance reveals the next event. Terminal once everything is visible;
// further calls are no-ops.
func (f Feed) Advance() Feed {
	if f.revealed < len(f.events) {
		f.revealed++
	}
	return f
}

// Visible returns the revealed prefix.
func (f Feed) Visible() []notebook.ActivityEvent {
	return f.events[:f.revealed]
}

// Revealed returns how many events are visible.
func (f Feed) Revealed() int { return f.revealed }

// Len returns the total number of events.
func (f Feed) Len() int { return len(f.events) }

// Done reports whether the feed reached its terminal state. A feed
// over an empty list is Done from the start; no timer is ever needed.
func (f Feed) Done() bool { return f.revealed >= len(f.events) }
