package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/notebook/internal/keymap"
	"github.com/marcus/notebook/internal/styles"
)

const (
	headerHeight = 2 // header line + spacing
	footerHeight = 1
	minWidth     = 60
	minHeight    = 16

	toastShort = 2 * time.Second
)

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render(msg))
	}

	contentHeight := m.height - headerHeight
	if m.showFooter {
		contentHeight -= footerHeight
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if v := m.ActiveView(); v != nil {
		b.WriteString(v.View(m.width, contentHeight))
	}

	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	bg := b.String()
	switch m.activeModal() {
	case ModalHelp:
		return m.renderHelpOverlay()
	case ModalQuitConfirm:
		return m.renderQuitConfirmOverlay()
	case ModalSwitcher:
		return m.renderSwitcherOverlay()
	}

	return bg
}

// renderHeader draws the app title, notebook metadata, and view tabs.
func (m Model) renderHeader() string {
	title := styles.Logo.Render(" Notebook")
	title += styles.Subtitle.Render(" / " + m.notebook.Title())
	if ch := m.notebook.Metadata.Channel; ch != "" {
		title += styles.Muted.Render(" · " + ch)
	}
	title += " "

	var tabs []string
	for i, v := range m.registry.Views() {
		style := styles.TabInactive
		if i == m.activeView {
			style = styles.TabActive
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, v.Name())))
	}
	tabBar := strings.Join(tabs, " ")

	titleWidth := lipgloss.Width(title)
	tabWidth := lipgloss.Width(tabBar)
	spacing := m.width - titleWidth - tabWidth
	if spacing < 1 {
		title = runewidth.Truncate(title, m.width-tabWidth-1, "…")
		spacing = 1
	}

	return title + strings.Repeat(" ", spacing) + tabBar
}

// renderFooter draws the toast when one is active, the key hints of
// the focused view otherwise.
func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		style := styles.ToastSuccess
		if m.statusIsError {
			style = styles.ToastError
		}
		return style.Render(runewidth.Truncate(m.statusMsg, m.width-2, "…"))
	}

	var hints []string
	if v := m.ActiveView(); v != nil {
		for _, c := range v.Commands() {
			hint := c.Key + " " + c.Name
			if c.Disabled {
				hints = append(hints, styles.Subtle.Render(hint))
			} else {
				hints = append(hints, styles.Muted.Render(hint))
			}
		}
	}
	hints = append(hints,
		styles.Muted.Render("tab views"),
		styles.Muted.Render("? help"),
		styles.Muted.Render("q quit"),
	)

	return runewidth.Truncate(strings.Join(hints, styles.Subtle.Render(" • ")), m.width, "…")
}

// renderHelpOverlay lists the focused view's commands plus the global
// bindings.
func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	if v := m.ActiveView(); v != nil && len(v.Commands()) > 0 {
		b.WriteString(styles.Title.Render(v.Name()))
		b.WriteString("\n")
		for _, c := range v.Commands() {
			b.WriteString(helpRow(c.Key, c.Name, c.Disabled))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Title.Render("Global"))
	b.WriteString("\n")
	for _, binding := range globalHelpBindings(m.keymap) {
		b.WriteString(helpRow(binding.Key, commandLabel(binding.Command), false))
	}

	modal := styles.ModalBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func helpRow(key, name string, disabled bool) string {
	keyStyle := styles.Highlight
	nameStyle := styles.Body
	if disabled {
		keyStyle = styles.Subtle
		nameStyle = styles.Subtle
	}
	return fmt.Sprintf("  %s  %s\n",
		keyStyle.Render(fmt.Sprintf("%-10s", key)),
		nameStyle.Render(name))
}

// globalHelpBindings returns the global bindings worth listing: one
// per command, arrow/duplicate keys and the per-view digits collapsed.
func globalHelpBindings(km *keymap.Registry) []keymap.Binding {
	seen := make(map[string]bool)
	var out []keymap.Binding
	for _, b := range km.ForContext("global") {
		if len(b.Key) == 1 && b.Key[0] >= '1' && b.Key[0] <= '9' {
			if !seen["focus-view"] {
				seen["focus-view"] = true
				out = append(out, keymap.Binding{Key: "1-5", Command: "switch view"})
			}
			continue
		}
		if seen[b.Command] {
			continue
		}
		seen[b.Command] = true
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Command < out[j].Command })
	return out
}

// commandLabel turns a command ID into display text.
func commandLabel(command string) string {
	return strings.ReplaceAll(command, "-", " ")
}

// renderQuitConfirmOverlay renders the quit confirmation modal.
func (m Model) renderQuitConfirmOverlay() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Quit?"))
	b.WriteString("\n\n")
	b.WriteString("Are you sure you want to quit?")
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("y/Enter quit • n/Esc cancel"))

	modal := styles.ModalBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
