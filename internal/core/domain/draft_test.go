package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"trim and drop empties", "a, b ,,c", []string{"a", "b", "c"}},
		{"empty input", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"single tag", "setup", []string{"setup"}},
		{"duplicates preserved", "go, go ,go", []string{"go", "go", "go"}},
		{"order preserved", "z, a, m", []string{"z", "a", "m"}},
		{"inner whitespace kept", "hello world, foo", []string{"hello world", "foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestNewDraft_Defaults(t *testing.T) {
	draft := NewDraft()

	assert.Equal(t, CategoryLinux, draft.Category)
	assert.Empty(t, draft.Title)
	assert.Empty(t, draft.TagsInput)
	assert.Empty(t, draft.Content)
	assert.Empty(t, draft.CoverImage)
}

func TestDraft_Tags(t *testing.T) {
	draft := Draft{TagsInput: "setup, intro"}

	assert.Equal(t, []string{"setup", "intro"}, draft.Tags())
}
