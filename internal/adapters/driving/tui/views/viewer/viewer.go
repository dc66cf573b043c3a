// Package viewer implements the raw-content document viewer shown in a
// modal. Content is rendered verbatim; Markdown syntax is not
// interpreted.
package viewer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/keymap"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/styles"
	"github.com/docshub/docshub-cli/internal/core/domain"
)

// Model is the document viewer.
type Model struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	doc    *domain.Document
	offset int

	width  int
	height int
}

// New creates the viewer.
func New(s *styles.Styles, km *keymap.KeyMap) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Model{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// SetDocument loads a document into the viewer and resets scrolling.
func (m *Model) SetDocument(doc *domain.Document) {
	m.doc = doc
	m.offset = 0
}

// Document returns the loaded document, nil when none.
func (m *Model) Document() *domain.Document {
	return m.doc
}

// Update handles viewer key input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.doc == nil {
		return m, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, m.keymap.Up):
		if m.offset > 0 {
			m.offset--
		}
	case keymap.Matches(keyStr, m.keymap.Down):
		if m.offset < m.maxOffset() {
			m.offset++
		}
	}

	return m, nil
}

// View renders the document. A viewer without a document renders
// nothing.
func (m *Model) View() string {
	if m.doc == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.doc.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.RenderBadge(m.doc.Category))
	b.WriteString("\n")

	if len(m.doc.Tags) > 0 {
		pills := make([]string, 0, len(m.doc.Tags))
		for _, tag := range m.doc.Tags {
			pills = append(pills, m.styles.Tag.Render("#"+tag))
		}
		b.WriteString(strings.Join(pills, " "))
		b.WriteString("\n")
	}

	if m.doc.CoverImage != "" {
		b.WriteString(m.styles.Muted.Render("Portada: " + truncate(m.doc.CoverImage, 60)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.visibleContent())

	return b.String()
}

// visibleContent returns the content window at the current scroll
// offset, verbatim.
func (m *Model) visibleContent() string {
	lines := strings.Split(m.doc.Content, "\n")
	if m.offset >= len(lines) {
		return ""
	}

	end := m.offset + m.contentHeight()
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[m.offset:end], "\n")
}

// contentHeight is the number of content lines that fit the modal.
func (m *Model) contentHeight() int {
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	return h
}

// maxOffset is the furthest the content can scroll.
func (m *Model) maxOffset() int {
	lines := strings.Count(m.doc.Content, "\n") + 1
	max := lines - m.contentHeight()
	if max < 0 {
		return 0
	}
	return max
}

// Offset returns the current scroll offset.
func (m *Model) Offset() int {
	return m.offset
}

// SetDimensions sets the viewer dimensions.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
