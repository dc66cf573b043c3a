// Package modal provides a generic overlay container for the TUI.
//
// A closed modal renders nothing at all. An open modal dims the view
// behind it and draws a bordered panel with a title header and an
// explicit close hint; key input belongs entirely to its content, so
// interacting with form fields never closes it. Only the close key,
// handled by the owner, dismisses it.
package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/styles"
)

// Modal is a reusable overlay shell. It owns no business state.
type Modal struct {
	styles *styles.Styles
	title  string
	open   bool
	width  int
	height int
}

// New creates a closed modal.
func New(s *styles.Styles) *Modal {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Modal{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Open opens the modal with the given title.
func (m *Modal) Open(title string) {
	m.title = title
	m.open = true
}

// Close closes the modal.
func (m *Modal) Close() {
	m.open = false
}

// IsOpen reports whether the modal is open.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Title returns the current title.
func (m *Modal) Title() string {
	return m.title
}

// SetDimensions sets the terminal dimensions.
func (m *Modal) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// View renders the modal around the given content. A closed modal
// contributes nothing to the output.
func (m *Modal) View(content string) string {
	if !m.open {
		return ""
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.styles.Subtitle.Render(m.title),
		m.styles.Help.Render("  [esc] Cerrar"),
	)

	panelWidth := m.width - 8
	if panelWidth < 40 {
		panelWidth = 40
	}

	panel := m.styles.Border.
		Width(panelWidth).
		Padding(0, 1).
		Render(header + "\n" + strings.Repeat("─", min(panelWidth-2, 60)) + "\n" + content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
