package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/notebook/internal/library"
	"github.com/marcus/notebook/internal/styles"
	"github.com/marcus/notebook/internal/view"
)

const switcherMaxVisible = 10

// openSwitcher opens the recent-notebook switcher modal.
func (m *Model) openSwitcher() tea.Cmd {
	if m.library == nil {
		return view.ErrorToast("Notebook library unavailable", toastShort)
	}

	entries, err := m.library.Recent(50)
	if err != nil {
		m.logger.Warn("library read failed", "error", err)
		return view.ErrorToast("Could not read notebook library", toastShort)
	}
	if len(entries) == 0 {
		return view.Toast("No notebooks opened yet", toastShort)
	}

	ti := textinput.New()
	ti.Placeholder = "Filter notebooks..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	m.showSwitcher = true
	m.switcherInput = ti
	m.switcherAll = entries
	m.switcherFiltered = entries
	m.switcherCursor = 0
	m.activeContext = "switcher"
	return nil
}

// closeSwitcher resets the switcher modal state.
func (m *Model) closeSwitcher() {
	m.showSwitcher = false
	m.switcherAll = nil
	m.switcherFiltered = nil
	m.switcherCursor = 0
	m.updateContext()
}

// handleSwitcherKey routes keys while the switcher is open. Navigation
// keys move the cursor; everything else feeds the filter input.
func (m Model) handleSwitcherKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "ctrl+p":
		if m.switcherCursor > 0 {
			m.switcherCursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.switcherCursor < len(m.switcherFiltered)-1 {
			m.switcherCursor++
		}
		return m, nil
	case "enter":
		if m.switcherCursor >= len(m.switcherFiltered) {
			return m, nil
		}
		entry := m.switcherFiltered[m.switcherCursor]
		m.closeSwitcher()
		return m, loadNotebook(entry.Path)
	}

	var cmd tea.Cmd
	m.switcherInput, cmd = m.switcherInput.Update(msg)
	m.switcherFiltered = filterEntries(m.switcherAll, m.switcherInput.Value())
	if m.switcherCursor >= len(m.switcherFiltered) {
		m.switcherCursor = 0
	}
	return m, cmd
}

// filterEntries filters library entries by title or file name.
func filterEntries(all []library.Entry, query string) []library.Entry {
	if query == "" {
		return all
	}
	q := strings.ToLower(query)
	var matches []library.Entry
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(filepath.Base(e.Path)), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// renderSwitcherOverlay renders the notebook switcher modal.
func (m Model) renderSwitcherOverlay() string {
	modalW := 60
	if modalW > m.width-4 {
		modalW = m.width - 4
	}
	if modalW < 30 {
		modalW = 30
	}
	rowWidth := modalW - 4

	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Switch Notebook"))
	b.WriteString("\n\n")
	b.WriteString(m.switcherInput.View())
	b.WriteString("\n\n")

	if len(m.switcherFiltered) == 0 {
		b.WriteString(styles.Muted.Render("No matches"))
	}

	start := 0
	if m.switcherCursor >= switcherMaxVisible {
		start = m.switcherCursor - switcherMaxVisible + 1
	}
	end := start + switcherMaxVisible
	if end > len(m.switcherFiltered) {
		end = len(m.switcherFiltered)
	}

	for i := start; i < end; i++ {
		e := m.switcherFiltered[i]
		title := runewidth.Truncate(e.Title, rowWidth-2, "…")
		path := runewidth.Truncate(e.Path, rowWidth-2, "…")

		if i == m.switcherCursor {
			b.WriteString(styles.Highlight.Render("> " + title))
		} else {
			b.WriteString(styles.Body.Render("  " + title))
		}
		b.WriteString("\n")
		b.WriteString(styles.Subtle.Render("  " + path))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("↑/↓ move • Enter open • Esc cancel"))

	modal := styles.ModalBox.Width(modalW).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
