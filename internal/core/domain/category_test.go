package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Badge_Known(t *testing.T) {
	tests := []struct {
		category Category
		label    string
	}{
		{CategoryLinux, "Linux"},
		{CategoryWindows, "Windows"},
		{CategoryWeb, "Web"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			badge := tt.category.Badge()
			assert.Equal(t, tt.label, badge.Label)
			assert.NotEmpty(t, badge.Icon)
		})
	}
}

func TestCategory_Badge_Fallback(t *testing.T) {
	badge := Category("macos").Badge()

	// Unknown categories show the raw value with the generic icon.
	assert.Equal(t, "macos", badge.Label)
	assert.Equal(t, "📄", badge.Icon)
}

func TestCategory_Badge_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		badge := Category("").Badge()
		assert.Equal(t, "", badge.Label)
		assert.Equal(t, "📄", badge.Icon)
	})
}

func TestCategory_IsKnown(t *testing.T) {
	assert.True(t, CategoryLinux.IsKnown())
	assert.True(t, CategoryWindows.IsKnown())
	assert.True(t, CategoryWeb.IsKnown())
	assert.False(t, Category("macos").IsKnown())
	assert.False(t, Category("").IsKnown())
}

func TestCategories_Order(t *testing.T) {
	assert.Equal(t,
		[]Category{CategoryLinux, CategoryWindows, CategoryWeb},
		Categories())
}
