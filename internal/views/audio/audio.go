// Package audio renders the audio-overview script with a simulated
// playback toggle, clipboard copy, and file download. When the bundle
// carries a briefing document, `v` switches between the two.
//
// The copy indicator reset and the playback self-cancel run through
// timer messages stamped with the view's epoch; Stop and Init bump the
// epoch so ticks scheduled against a torn-down session are dropped.
package audio

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notebook/internal/playback"
	"github.com/marcus/notebook/internal/styles"
	"github.com/marcus/notebook/internal/view"
)

const (
	viewID   = "audio-overview"
	viewName = "Audio Overview"
	viewIcon = "A"

	toastDuration = 2 * time.Second
)

type mode int

const (
	modeScript mode = iota
	modeBriefing
)

// stopPlaybackMsg forces the simulated playback off.
type stopPlaybackMsg struct {
	epoch int
}

// copyResetMsg clears the copied indicator for one copy generation.
type copyResetMsg struct {
	epoch int
	gen   int
}

// View renders the audio overview.
type View struct {
	ctx     *view.Context
	focused bool

	sim   *playback.Simulator
	clip  playback.Clipboard
	saver playback.Saver

	mode   mode
	offset int
	epoch  int

	// Rendered markdown cache, invalidated on width or mode change.
	rendered      []string
	renderedWidth int
	renderedMode  mode
}

// New creates the audio view with the system clipboard and a saver
// into the configured download directory.
func New() *View {
	return &View{clip: playback.SystemClipboard{}}
}

// NewWithCapabilities creates the view over injected capabilities.
func NewWithCapabilities(clip playback.Clipboard, saver playback.Saver) *View {
	return &View{clip: clip, saver: saver}
}

func (v *View) ID() string   { return viewID }
func (v *View) Name() string { return viewName }
func (v *View) Icon() string { return viewIcon }

// Init binds the view to the current notebook. Simulator state does
// not survive a reload; any pending timer from the old session is
// orphaned by the epoch bump.
func (v *View) Init(ctx *view.Context) error {
	v.ctx = ctx
	saver := v.saver
	if saver == nil {
		saver = playback.DirSaver{Dir: ctx.DownloadDir}
	}
	v.sim = playback.New(v.clip, saver)
	v.mode = modeScript
	v.offset = 0
	v.epoch++
	v.rendered = nil
	return nil
}

func (v *View) Start() tea.Cmd { return nil }

// Stop orphans pending timer messages.
func (v *View) Stop() {
	v.epoch++
}

// Update handles playback, copy, download, briefing toggle, scrolling
// and the view's own timer messages.
func (v *View) Update(msg tea.Msg) (view.View, tea.Cmd) {
	switch msg := msg.(type) {
	case stopPlaybackMsg:
		if msg.epoch == v.epoch {
			v.sim.StopPlayback()
		}
		return v, nil

	case copyResetMsg:
		if msg.epoch == v.epoch {
			v.sim.CopyReset(msg.gen)
		}
		return v, nil

	case view.BlurredMsg:
		// Switching away closes the playing window early.
		if !v.focused {
			v.sim.StopPlayback()
		}
		return v, nil

	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(km tea.KeyMsg) (view.View, tea.Cmd) {
	switch km.String() {
	case "p":
		return v, v.togglePlay()
	case "c":
		return v, v.copyScript()
	case "d":
		return v, v.downloadScript()
	case "v":
		if v.ctx.Notebook.HasBriefing() {
			if v.mode == modeScript {
				v.mode = modeBriefing
			} else {
				v.mode = modeScript
			}
			v.offset = 0
		}
	case "j", "down":
		v.offset++
	case "k", "up":
		if v.offset > 0 {
			v.offset--
		}
	}
	return v, nil
}

// togglePlay starts the simulated playback window. Synthesis does not
// exist, so a start surfaces the notice and immediately schedules the
// stop; the playing indicator lasts one update cycle.
func (v *View) togglePlay() tea.Cmd {
	started := v.sim.TogglePlay()
	if !started {
		return nil
	}

	epoch := v.epoch
	return tea.Batch(
		view.Toast(playback.SynthesisNotice, toastDuration),
		func() tea.Msg { return stopPlaybackMsg{epoch: epoch} },
	)
}

func (v *View) copyScript() tea.Cmd {
	gen, err := v.sim.CopyScript(v.document())
	if err != nil {
		v.ctx.Logger.Warn("clipboard write failed", "error", err)
		return view.ErrorToast("Copy failed: clipboard unavailable", toastDuration)
	}

	epoch := v.epoch
	return tea.Tick(playback.CopyResetDelay, func(time.Time) tea.Msg {
		return copyResetMsg{epoch: epoch, gen: gen}
	})
}

func (v *View) downloadScript() tea.Cmd {
	path, err := v.sim.DownloadScript(v.document(), v.downloadFilename())
	if err != nil {
		v.ctx.Logger.Warn("download failed", "error", err)
		return view.ErrorToast("Download failed", toastDuration)
	}
	return view.Toast("Saved to "+path, toastDuration)
}

// document returns the text the copy and download actions operate on:
// whichever document is currently showing.
func (v *View) document() string {
	if v.mode == modeBriefing {
		return v.ctx.Notebook.BriefingDoc
	}
	return v.ctx.Notebook.AudioOverview
}

func (v *View) downloadFilename() string {
	slug := slugify(v.ctx.Notebook.Title())
	if v.mode == modeBriefing {
		return slug + "-briefing.md"
	}
	return slug + "-audio-overview.txt"
}

// slugify lowercases and replaces runs of non-alphanumerics with a
// single dash.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// View renders the current document with status indicators.
func (v *View) View(width, height int) string {
	doc := v.document()
	if doc == "" {
		return styles.EmptyState("No audio overview available", width, height)
	}

	header := v.renderHeader()
	lines := v.renderDocument(doc, width)

	bodyHeight := height - lipgloss.Height(header) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if max := len(lines) - bodyHeight; v.offset > max {
		if max < 0 {
			max = 0
		}
		v.offset = max
	}
	end := v.offset + bodyHeight
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[v.offset:end], "\n")

	out := header + "\n" + body
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(out)
}

func (v *View) renderHeader() string {
	var parts []string
	if v.mode == modeBriefing {
		parts = append(parts, styles.Title.Render("Briefing Document"))
	} else {
		parts = append(parts, styles.Title.Render("Audio Overview"))
	}

	if v.sim.Playing() {
		parts = append(parts, styles.PlayingIndicator.Render("▶ playing"))
	}
	if v.sim.Copied() {
		parts = append(parts, styles.CopiedIndicator.Render("✓ copied"))
	}

	return strings.Join(parts, "  ")
}

// renderDocument renders the document as markdown, caching per
// width+mode. Render failure falls back to the raw text.
func (v *View) renderDocument(doc string, width int) []string {
	if v.rendered != nil && v.renderedWidth == width && v.renderedMode == v.mode {
		return v.rendered
	}

	out, err := renderMarkdown(doc, width)
	if err != nil {
		out = doc
	}
	v.rendered = strings.Split(strings.TrimRight(out, "\n"), "\n")
	v.renderedWidth = width
	v.renderedMode = v.mode
	return v.rendered
}

func renderMarkdown(md string, width int) (string, error) {
	if width < 40 {
		width = 40
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (v *View) IsFocused() bool   { return v.focused }
func (v *View) SetFocused(f bool) { v.focused = f }

// Commands returns the available commands.
func (v *View) Commands() []view.Command {
	cmds := []view.Command{
		{ID: "toggle-play", Name: "Play", Key: "p", Context: viewID},
		{ID: "copy-script", Name: "Copy", Key: "c", Context: viewID},
		{ID: "download-script", Name: "Download", Key: "d", Context: viewID},
	}
	if v.ctx != nil && v.ctx.Notebook.HasBriefing() {
		cmds = append(cmds, view.Command{
			ID: "toggle-briefing", Name: "Briefing", Key: "v", Context: viewID,
		})
	}
	return cmds
}

func (v *View) FocusContext() string { return "audio" }
