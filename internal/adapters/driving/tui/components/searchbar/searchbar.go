// Package searchbar provides the search controls for the TUI.
//
// It is a controlled pair: a free-text query input and a category
// selector. Every keystroke or selection change is visible to the
// parent immediately; debouncing is the parent's responsibility.
package searchbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui/styles"
	"github.com/docshub/docshub-cli/internal/core/domain"
)

// Focus identifies which control owns key input.
type Focus int

const (
	// FocusNone means neither control is focused.
	FocusNone Focus = iota
	// FocusQuery focuses the free-text input.
	FocusQuery
	// FocusCategory focuses the category selector.
	FocusCategory
)

// option is a category selector entry.
type option struct {
	value string
	label string
}

// SearchBar is the query input plus category selector.
type SearchBar struct {
	styles  *styles.Styles
	input   textinput.Model
	options []option
	catIdx  int
	focus   Focus
	width   int
}

// New creates a search bar with the fixed category options.
func New(s *styles.Styles) *SearchBar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Buscar documentación..."
	ti.CharLimit = 256
	ti.Width = 50

	options := []option{{value: "", label: "Todas las categorías"}}
	for _, c := range domain.Categories() {
		options = append(options, option{value: string(c), label: c.Badge().Label})
	}

	return &SearchBar{
		styles:  s,
		input:   ti,
		options: options,
		width:   80,
	}
}

// Init initialises the search bar.
func (s *SearchBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes key input to the focused control.
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch s.focus {
	case FocusQuery:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(keyMsg)
		return s, cmd

	case FocusCategory:
		switch keyMsg.String() {
		case "left", "up", "k":
			s.catIdx--
			if s.catIdx < 0 {
				s.catIdx = len(s.options) - 1
			}
		case "right", "down", "j", " ":
			s.catIdx++
			if s.catIdx >= len(s.options) {
				s.catIdx = 0
			}
		}
		return s, nil

	case FocusNone:
	}

	return s, nil
}

// View renders the search bar.
func (s *SearchBar) View() string {
	inputStyle := s.styles.InputField
	catStyle := s.styles.InputField
	switch s.focus {
	case FocusQuery:
		inputStyle = inputStyle.BorderForeground(s.styles.Theme().Primary)
	case FocusCategory:
		catStyle = catStyle.BorderForeground(s.styles.Theme().Primary)
	case FocusNone:
	}

	query := inputStyle.Render(s.input.View())
	category := catStyle.Render("◂ " + s.options[s.catIdx].label + " ▸")

	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, query, " ", category)
}

// SetFocus moves focus between the controls.
func (s *SearchBar) SetFocus(f Focus) tea.Cmd {
	s.focus = f
	if f == FocusQuery {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// Focus returns the currently focused control.
func (s *SearchBar) Focus() Focus {
	return s.focus
}

// Query returns the current query text.
func (s *SearchBar) Query() string {
	return s.input.Value()
}

// SetQuery sets the query text.
func (s *SearchBar) SetQuery(q string) {
	s.input.SetValue(q)
}

// Category returns the selected category value; empty means all.
func (s *SearchBar) Category() string {
	return s.options[s.catIdx].value
}

// SetCategory selects the given category value if it exists.
func (s *SearchBar) SetCategory(value string) {
	for i, opt := range s.options {
		if opt.value == value {
			s.catIdx = i
			return
		}
	}
}

// SetWidth sets the component width.
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	inputWidth := width - 30
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.input.Width = inputWidth
}
