// Package playback manages the audio-overview interaction state: a
// simulated play toggle and the copy/download side effects. Real speech
// synthesis is deliberately absent; toggling play only opens a brief
// visual "playing" window that the caller immediately cancels.
//
// Clipboard and file saving are injected capabilities so tests run
// against in-memory fakes.
package playback

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
)

// CopyResetDelay is how long the copied indicator stays lit.
const CopyResetDelay = 2000 * time.Millisecond

// SynthesisNotice is the one-time notice shown when play is toggled on.
const SynthesisNotice = "Audio synthesis coming soon — script available below"

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Saver persists script text under a filename and reports the final path.
type Saver interface {
	Save(filename string, data []byte) (path string, err error)
}

// SystemClipboard is the real clipboard capability.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// DirSaver writes downloads into a directory, creating it on demand.
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/filename. The file handle is released on
// every path, including write failures, before Save returns.
func (s DirSaver) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	path := filepath.Join(s.Dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", filename, err)
	}
	return path, nil
}

// Simulator owns the audio view's interaction state. One instance per
// mounted view; it is never shared.
type Simulator struct {
	playing bool
	copied  bool
	copyGen int

	clip  Clipboard
	saver Saver
}

// New creates a simulator over the given capabilities.
func New(clip Clipboard, saver Saver) *Simulator {
	return &Simulator{clip: clip, saver: saver}
}

// Playing reports the simulated playback state.
func (s *Simulator) Playing() bool { return s.playing }

// Copied reports whether the copy indicator is lit.
func (s *Simulator) Copied() bool { return s.copied }

// TogglePlay flips the playing state and reports whether playback just
// started. A start is a placeholder only: the caller surfaces
// SynthesisNotice and immediately schedules StopPlayback, so the
// playing window lasts at most one update cycle.
func (s *Simulator) TogglePlay() (started bool) {
	s.playing = !s.playing
	return s.playing
}

// StopPlayback forces the playing state off.
func (s *Simulator) StopPlayback() {
	s.playing = false
}

// CopyScript writes text to the clipboard. On success the copied
// indicator lights and the returned generation identifies the pending
// reset; the caller schedules CopyReset(gen) after CopyResetDelay.
// Each new copy bumps the generation, superseding any pending reset so
// only the latest timer ever clears the indicator.
//
// A clipboard failure leaves the indicator off and is returned for an
// optional transient notice; it is never fatal.
func (s *Simulator) CopyScript(text string) (gen int, err error) {
	if err := s.clip.WriteText(text); err != nil {
		return 0, err
	}
	s.copied = true
	s.copyGen++
	return s.copyGen, nil
}

// CopyReset clears the copied indicator if gen is still the latest
// copy. Stale generations are ignored: a superseded timer must not cut
// the current indicator window short.
func (s *Simulator) CopyReset(gen int) {
	if gen == s.copyGen {
		s.copied = false
	}
}

// DownloadScript saves text under filename and returns the written
// path. Runs synchronously in the calling event handler, matching the
// requirement that the save is triggered within the user gesture.
func (s *Simulator) DownloadScript(text, filename string) (string, error) {
	return s.saver.Save(filename, []byte(text))
}
