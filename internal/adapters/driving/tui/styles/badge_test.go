package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docshub/docshub-cli/internal/core/domain"
)

func TestRenderBadge_KnownCategories(t *testing.T) {
	s := DefaultStyles()

	tests := []struct {
		category domain.Category
		label    string
	}{
		{domain.CategoryLinux, "Linux"},
		{domain.CategoryWindows, "Windows"},
		{domain.CategoryWeb, "Web"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			out := s.RenderBadge(tt.category)
			assert.Contains(t, out, tt.label)
		})
	}
}

func TestRenderBadge_UnknownCategory(t *testing.T) {
	s := DefaultStyles()

	assert.NotPanics(t, func() {
		out := s.RenderBadge(domain.Category("solaris"))
		// The raw value is the fallback label.
		assert.Contains(t, out, "solaris")
	})
}

func TestRenderBadge_EmptyCategory(t *testing.T) {
	s := DefaultStyles()

	assert.NotPanics(t, func() {
		s.RenderBadge(domain.Category(""))
	})
}
