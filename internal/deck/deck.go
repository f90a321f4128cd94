// Package deck implements the flashcard navigator: a small state
// machine over an ordered, immutable card sequence. Transitions are
// pure value methods so the machine is testable without any rendering
// framework attached.
package deck

import "github.com/marcus/notebook/internal/notebook"

// Side is which face of the current card is showing.
type Side int

const (
	Front Side = iota
	Back
)

// Navigator holds the current position and flip state over a card
// sequence of fixed length. The zero value is an empty navigator.
type Navigator struct {
	cards []notebook.Flashcard
	index int
	side  Side
}

// New creates a navigator over cards, positioned at the first card with
// the front showing. The slice is not copied; callers must not mutate it.
func New(cards []notebook.Flashcard) Navigator {
	return Navigator{cards: cards}
}

// Len returns the number of cards.
func (n Navigator) Len() int { return len(n.cards) }

// Index returns the current card index. Meaningless when Len() == 0.
func (n Navigator) Index() int { return n.index }

// Side returns which face of the current card is showing.
func (n Navigator) Side() Side { return n.side }

// Flipped reports whether the back is showing.
func (n Navigator) Flipped() bool { return n.side == Back }

// CanNavigate reports whether next/previous are meaningful. With one
// card they wrap to self, so the UI disables them.
func (n Navigator) CanNavigate() bool { return len(n.cards) > 1 }

// Current returns the card at the current index. ok is false when the
// deck is empty.
func (n Navigator) Current() (card notebook.Flashcard, ok bool) {
	if len(n.cards) == 0 {
		return notebook.Flashcard{}, false
	}
	return n.cards[n.index], true
}

// Next advances to the following card, wrapping from last to first.
// Any index change resets the flip state to front.
func (n Navigator) Next() Navigator {
	if len(n.cards) == 0 {
		return n
	}
	n.index = (n.index + 1) % len(n.cards)
	n.side = Front
	return n
}

// Previous moves to the preceding card, wrapping from first to last.
// Any index change resets the flip state to front.
func (n Navigator) Previous() Navigator {
	if len(n.cards) == 0 {
		return n
	}
	n.index = (n.index - 1 + len(n.cards)) % len(n.cards)
	n.side = Front
	return n
}

// JumpTo moves directly to card i, resetting the flip state to front.
// An out-of-range i is a caller contract violation and is ignored.
func (n Navigator) JumpTo(i int) Navigator {
	if i < 0 || i >= len(n.cards) {
		return n
	}
	n.index = i
	n.side = Front
	return n
}

// Flip toggles between front and back without moving.
func (n Navigator) Flip() Navigator {
	if len(n.cards) == 0 {
		return n
	}
	if n.side == Front {
		n.side = Back
	} else {
		n.side = Front
	}
	return n
}
