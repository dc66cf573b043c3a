package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/docshub/docshub-cli/internal/core/domain"
)

// RenderBadge renders the category badge: icon plus label in the
// category's colour. Unknown categories render their raw value in a
// neutral style; this never fails.
func (s *Styles) RenderBadge(category domain.Category) string {
	badge := category.Badge()
	return s.badgeStyle(category).Render(badge.Icon + " " + badge.Label)
}

// badgeStyle returns the colour style for a category.
func (s *Styles) badgeStyle(category domain.Category) lipgloss.Style {
	switch category {
	case domain.CategoryLinux:
		return lipgloss.NewStyle().Foreground(s.theme.BadgeLinux)
	case domain.CategoryWindows:
		return lipgloss.NewStyle().Foreground(s.theme.BadgeWindows)
	case domain.CategoryWeb:
		return lipgloss.NewStyle().Foreground(s.theme.BadgeWeb)
	}
	return lipgloss.NewStyle().Foreground(s.theme.Muted)
}
