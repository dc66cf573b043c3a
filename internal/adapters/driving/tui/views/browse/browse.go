// Package browse implements the document browsing view: the search bar,
// the category filter and the card list.
package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/components/searchbar"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/keymap"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/messages"
	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/styles"
	"github.com/docshub/docshub-cli/internal/core/domain"
	"github.com/docshub/docshub-cli/internal/core/ports/driving"
	"github.com/docshub/docshub-cli/internal/logger"
)

// debounceInterval is how long typing must pause before a filtered
// reload is issued.
const debounceInterval = 300 * time.Millisecond

// requestTimeout bounds a single list request.
const requestTimeout = 30 * time.Second

// Focus identifies the focused zone of the browse view.
type Focus int

const (
	FocusSearch Focus = iota
	FocusCategory
	FocusList
)

// debounceElapsed fires when the debounce timer for a given generation
// expires. Stale generations are ignored.
type debounceElapsed struct {
	gen int
}

// Model is the browse view.
type Model struct {
	documents driving.DocumentService

	styles  *styles.Styles
	keymap  *keymap.KeyMap
	search  *searchbar.SearchBar
	focus   Focus
	cursor  int
	docs    []domain.DocumentSummary
	loading bool
	err     error

	// gen is bumped on every filter edit; only the latest generation's
	// debounce tick triggers a reload.
	gen int

	// lastFilter is the filter used for the most recent load, so edits
	// that end up equivalent do not re-query.
	lastFilter domain.Filter

	width  int
	height int
}

// New creates the browse view.
func New(documents driving.DocumentService, s *styles.Styles, km *keymap.KeyMap) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	search := searchbar.New(s)
	search.SetFocus(searchbar.FocusQuery)

	return &Model{
		documents: documents,
		styles:    s,
		keymap:    km,
		search:    search,
		focus:     FocusSearch,
		loading:   true,
		width:     80,
		height:    24,
	}
}

// Init loads the unfiltered document list once on mount.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.search.Init(), m.loadCmd(domain.Filter{}))
}

// Update handles browse view messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceElapsed:
		if msg.gen != m.gen {
			// A newer edit restarted the clock.
			return m, nil
		}
		filter := m.filter()
		if filter == m.lastFilter {
			return m, nil
		}
		m.loading = true
		return m, m.loadCmd(filter)

	case messages.DocumentsLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.docs = msg.Documents
		if m.cursor >= len(m.docs) {
			m.cursor = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleKey routes key input by focus zone.
func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, m.keymap.NextField):
		return m, m.cycleFocus(1)

	case keymap.Matches(keyStr, m.keymap.PrevField):
		return m, m.cycleFocus(-1)

	case keymap.Matches(keyStr, m.keymap.Reload):
		m.loading = true
		m.lastFilter = m.filter()
		return m, m.loadCmd(m.lastFilter)
	}

	switch m.focus {
	case FocusSearch, FocusCategory:
		before := m.filter()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.filter() != before {
			m.gen++
			return m, tea.Batch(cmd, m.debounceCmd(m.gen))
		}
		return m, cmd

	case FocusList:
		switch {
		case keymap.Matches(keyStr, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case keymap.Matches(keyStr, m.keymap.Down):
			if m.cursor < len(m.docs)-1 {
				m.cursor++
			}
		case keymap.Matches(keyStr, m.keymap.Open):
			if m.cursor < len(m.docs) {
				selected := m.docs[m.cursor]
				return m, func() tea.Msg {
					return messages.DocumentOpenRequested{Summary: selected}
				}
			}
		}
	}

	return m, nil
}

// cycleFocus moves the focus zone forward or backward.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	zones := 3
	m.focus = Focus((int(m.focus) + delta + zones) % zones)

	switch m.focus {
	case FocusSearch:
		return m.search.SetFocus(searchbar.FocusQuery)
	case FocusCategory:
		return m.search.SetFocus(searchbar.FocusCategory)
	case FocusList:
		return m.search.SetFocus(searchbar.FocusNone)
	}
	return nil
}

// filter builds the current filter from the search bar.
func (m *Model) filter() domain.Filter {
	return domain.Filter{
		Query:    m.search.Query(),
		Category: m.search.Category(),
	}
}

// debounceCmd schedules a debounce tick for the given generation.
func (m *Model) debounceCmd(gen int) tea.Cmd {
	return tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return debounceElapsed{gen: gen}
	})
}

// loadCmd fetches the document list matching the filter.
func (m *Model) loadCmd(filter domain.Filter) tea.Cmd {
	m.lastFilter = filter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		logger.Debug("browse: loading documents (query=%q, category=%q)",
			filter.Query, filter.Category)

		docs, err := m.documents.List(ctx, filter)
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Reload re-runs the current filter. Used after a successful save.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return m.loadCmd(m.filter())
}

// View renders the browse view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Docs Hub"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted.Render("Cargando..."))
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	case len(m.docs) == 0:
		b.WriteString(m.styles.Muted.Render("No hay documentos"))
	default:
		b.WriteString(m.renderCards())
	}

	return b.String()
}

// renderCards renders the visible document cards.
func (m *Model) renderCards() string {
	cards := make([]string, 0, len(m.docs))
	for i, doc := range m.docs {
		cards = append(cards, m.renderCard(doc, i == m.cursor && m.focus == FocusList))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders a single document card.
func (m *Model) renderCard(doc domain.DocumentSummary, selected bool) string {
	var b strings.Builder

	title := m.styles.Normal.Render(doc.Title)
	if selected {
		title = m.styles.Selected.Render(doc.Title)
	}
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(m.styles.RenderBadge(doc.Category))

	if doc.CoverImage != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.Muted.Render("🖼"))
	}

	if tags := doc.CardTags(); len(tags) > 0 {
		b.WriteString("\n")
		pills := make([]string, 0, len(tags))
		for _, tag := range tags {
			pills = append(pills, m.styles.Tag.Render("#"+tag))
		}
		b.WriteString("  " + strings.Join(pills, " "))
	}

	border := m.styles.Border
	if selected {
		border = border.BorderForeground(m.styles.Theme().Primary)
	}
	return border.Width(m.cardWidth()).Padding(0, 1).Render(b.String())
}

// cardWidth returns the inner card width for the current terminal size.
func (m *Model) cardWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// SetDimensions sets the view dimensions.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(width)
}

// Documents returns the currently loaded summaries.
func (m *Model) Documents() []domain.DocumentSummary {
	return m.docs
}

// Loading reports whether a list request is in flight.
func (m *Model) Loading() bool {
	return m.loading
}

// Err returns the last load error, if any.
func (m *Model) Err() error {
	return m.err
}

// Focused returns the focused zone.
func (m *Model) Focused() Focus {
	return m.focus
}

// Cursor returns the selected card index.
func (m *Model) Cursor() int {
	return m.cursor
}
