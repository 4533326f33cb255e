// Package icon maps channel names to display icons using an ordered keyword table.
package icon

import "strings"

const (
	// DefaultKeyword marks the fallback entry of a table. It is never matched
	// against channel names.
	DefaultKeyword = "default"

	// Placeholder is returned when the table is empty or has no default entry.
	Placeholder = "default_channel_image.png"
)

// Mapping associates a set of keywords with an icon reference.
type Mapping struct {
	Keywords []string
	IconRef  string
}

// Table is a read-only, ordered keyword table.
type Table struct {
	entries  []entry
	fallback string
}

type entry struct {
	keywords []string
	iconRef  string
}

// NewTable builds a Table from mappings, preserving their order.
// Keywords are lower-cased once here. The first entry holding DefaultKeyword
// becomes the fallback. An empty keyword is a substring of every name and so
// matches everything.
func NewTable(mappings []Mapping) *Table {
	t := &Table{
		entries:  make([]entry, 0, len(mappings)),
		fallback: Placeholder,
	}

	hasDefault := false
	for _, m := range mappings {
		e := entry{iconRef: m.IconRef}
		for _, kw := range m.Keywords {
			if kw == DefaultKeyword {
				if !hasDefault {
					t.fallback = m.IconRef
					hasDefault = true
				}
				continue
			}
			e.keywords = append(e.keywords, strings.ToLower(kw))
		}
		t.entries = append(t.entries, e)
	}

	return t
}

// Resolve returns the icon for name.
// The first entry, in table order, with a keyword contained in name (ignoring
// case) wins. Otherwise the default entry's icon is returned, or Placeholder.
// A nil Table resolves everything to Placeholder.
func (t *Table) Resolve(name string) string {
	if t == nil {
		return Placeholder
	}

	lower := strings.ToLower(name)
	for _, e := range t.entries {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				return e.iconRef
			}
		}
	}

	return t.fallback
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
