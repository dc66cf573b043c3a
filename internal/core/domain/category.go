package domain

// Category classifies a document. The backend accepts free-form strings;
// the client knows three fixed values and degrades gracefully for the rest.
type Category string

// Known categories.
const (
	CategoryLinux   Category = "linux"
	CategoryWindows Category = "windows"
	CategoryWeb     Category = "web"
)

// Categories returns the fixed category set, in display order.
func Categories() []Category {
	return []Category{CategoryLinux, CategoryWindows, CategoryWeb}
}

// IsKnown reports whether the category is one of the fixed set.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryLinux, CategoryWindows, CategoryWeb:
		return true
	}
	return false
}

// Badge holds the display attributes for a category.
type Badge struct {
	// Label is the human-readable name.
	Label string

	// Icon is a single-glyph marker shown before the label.
	Icon string
}

// Badge returns the display attributes for the category. Unknown values
// fall back to the raw category string with a generic document icon.
// It never fails, whatever the input.
func (c Category) Badge() Badge {
	switch c {
	case CategoryLinux:
		return Badge{Label: "Linux", Icon: "💻"}
	case CategoryWindows:
		return Badge{Label: "Windows", Icon: "🖥"}
	case CategoryWeb:
		return Badge{Label: "Web", Icon: "🌐"}
	}
	return Badge{Label: string(c), Icon: "📄"}
}
