package domain

import "strings"

// Draft is the in-progress, unsaved representation of a new document.
// The backend assigns ID and Slug on creation.
type Draft struct {
	// Title is sent as-is; the backend owns acceptance semantics,
	// so an empty title is not rejected client-side.
	Title string

	// Category defaults to linux in the editor.
	Category Category

	// TagsInput is the raw comma-separated tags string as typed.
	TagsInput string

	// Content is the free-form body text.
	Content string

	// CoverImage is the resolved cover reference from an upload,
	// or empty for no cover.
	CoverImage string
}

// NewDraft returns an empty draft with the default category.
func NewDraft() Draft {
	return Draft{Category: CategoryLinux}
}

// Tags derives the tag list from TagsInput: split on commas, trim each
// entry, drop empties. Order and duplicates are preserved.
func (d Draft) Tags() []string {
	return ParseTags(d.TagsInput)
}

// ParseTags splits a comma-separated tags string into a clean tag list.
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
