package searchbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	bar := New(nil)

	require.NotNil(t, bar)
	assert.Empty(t, bar.Query())
	assert.Empty(t, bar.Category()) // "" = all categories
	assert.Equal(t, FocusNone, bar.Focus())
}

func TestSearchBar_TypingUpdatesQueryImmediately(t *testing.T) {
	bar := New(nil)
	bar.SetFocus(FocusQuery)

	for _, r := range "ssh" {
		bar, _ = bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	// No local buffering: each keystroke is visible to the parent.
	assert.Equal(t, "ssh", bar.Query())
}

func TestSearchBar_CategoryCycling(t *testing.T) {
	bar := New(nil)
	bar.SetFocus(FocusCategory)

	right := tea.KeyMsg{Type: tea.KeyRight}
	bar, _ = bar.Update(right)
	assert.Equal(t, "linux", bar.Category())

	bar, _ = bar.Update(right)
	assert.Equal(t, "windows", bar.Category())

	bar, _ = bar.Update(right)
	assert.Equal(t, "web", bar.Category())

	// Wraps back to all.
	bar, _ = bar.Update(right)
	assert.Empty(t, bar.Category())
}

func TestSearchBar_CategoryCyclingBackwards(t *testing.T) {
	bar := New(nil)
	bar.SetFocus(FocusCategory)

	bar, _ = bar.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "web", bar.Category())
}

func TestSearchBar_IgnoresKeysWhenUnfocused(t *testing.T) {
	bar := New(nil)

	bar, _ = bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Empty(t, bar.Query())
}

func TestSearchBar_SetCategory(t *testing.T) {
	bar := New(nil)

	bar.SetCategory("web")
	assert.Equal(t, "web", bar.Category())

	// Unknown values are ignored.
	bar.SetCategory("solaris")
	assert.Equal(t, "web", bar.Category())
}
