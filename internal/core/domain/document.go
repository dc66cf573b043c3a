package domain

// DocumentSummary is the subset of document fields returned by the list
// endpoint. It is sufficient for card rendering; Content is not guaranteed.
type DocumentSummary struct {
	// ID is the opaque unique identifier assigned by the backend.
	ID string

	// Slug is the URL-safe unique identifier used for detail lookups.
	// It is stable once assigned.
	Slug string

	// Title is the human-readable title.
	Title string

	// Category is the document category. Unknown values are rendered
	// generically, never rejected.
	Category Category

	// Tags is the ordered tag list. Summary cards show at most the
	// first MaxCardTags entries.
	Tags []string

	// CoverImage is an optional cover reference: a data URL from a
	// local upload or a backend-hosted URL. Empty means no cover.
	CoverImage string
}

// Document is a full document as returned by the detail endpoint.
type Document struct {
	DocumentSummary

	// Content is the free-form body text. It may contain Markdown
	// syntax but is always rendered verbatim.
	Content string
}

// MaxCardTags is the number of tags shown on a summary card.
// Extra tags are silently omitted from that view.
const MaxCardTags = 4

// CardTags returns the tags shown on a summary card: the first
// MaxCardTags entries, in order.
func (s DocumentSummary) CardTags() []string {
	if len(s.Tags) <= MaxCardTags {
		return s.Tags
	}
	return s.Tags[:MaxCardTags]
}

// Filter holds the list-query filters. Empty fields are omitted from
// the backend request.
type Filter struct {
	// Query is the free-text search query.
	Query string

	// Category restricts results to a single category. Empty means all.
	Category string
}

// IsEmpty reports whether no filters are set.
func (f Filter) IsEmpty() bool {
	return f.Query == "" && f.Category == ""
}
