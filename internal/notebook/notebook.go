// Package notebook defines the study-material bundle consumed by every
// view: key points, flashcards, topic connections, the audio-overview
// script, and the landing-feed activity events. The bundle is produced
// by an external generator and is immutable for the lifetime of a
// viewing session; views only ever mutate their own navigation state.
package notebook

import (
	"path/filepath"
	"strings"
)

// Metadata describes the source video the bundle was generated from.
type Metadata struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
}

// Flashcard is a question/answer pair. Identity is position in the
// bundle's Flashcards slice; there is no separate ID.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Connection links the source material to another topic or field.
// Order in the slice is presentation order only.
type Connection struct {
	Topic      string `json:"topic"`
	Connection string `json:"connection"`
	Relevance  string `json:"relevance"`
}

// ActivityEvent is one row of the landing activity feed. Time is a
// pre-formatted human-relative string ("2m ago"), not a live timestamp.
type ActivityEvent struct {
	ID             int    `json:"id"`
	User           string `json:"user"`
	Action         string `json:"action"`
	Topic          string `json:"topic"`
	Time           string `json:"time"`
	AvatarInitials string `json:"avatar_initials"`
}

// Notebook is the full generated bundle for one source video.
// Field names match the generator's JSON output.
type Notebook struct {
	Metadata      Metadata        `json:"video_metadata"`
	KeyPoints     []string        `json:"key_points"`
	Flashcards    []Flashcard     `json:"flashcards"`
	Connections   []Connection    `json:"connections"`
	AudioOverview string          `json:"audio_overview"`
	BriefingDoc   string          `json:"briefing_doc,omitempty"`
	Activity      []ActivityEvent `json:"activity,omitempty"`

	// Set by Load, not part of the bundle itself.
	Path        string `json:"-"`
	Fingerprint string `json:"-"`
}

// Title returns the display title, falling back to the file name stem
// when the generator omitted metadata.
func (n *Notebook) Title() string {
	if n.Metadata.Title != "" {
		return n.Metadata.Title
	}
	if n.Path != "" {
		base := filepath.Base(n.Path)
		if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
			return stem
		}
	}
	return "Untitled notebook"
}

// HasBriefing reports whether the bundle carries a briefing document.
func (n *Notebook) HasBriefing() bool {
	return n.BriefingDoc != ""
}
