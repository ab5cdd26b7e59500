// Package reference defines the core domain types for bibliographic references.
package reference

import "strings"

// Tag is a single field of a bibliographic record, in input order.
type Tag struct {
	Name  string `json:"name"`  // Lowercased field name (author, title, ...)
	Value string `json:"value"` // Field value with delimiters removed and macros expanded
}

// Record is a parsed bibliographic entry. Tags keep their input order and may
// repeat; consumers decide which occurrence wins.
type Record struct {
	Type string `json:"type"` // Lowercased entry type (article, book, ...)
	Key  string `json:"key"`  // Citation key
	Tags []Tag  `json:"tags"`
}

// Field returns the value of the first tag with the given name.
func (r Record) Field(name string) (string, bool) {
	for _, t := range r.Tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// HasPrefix reports whether the citation key starts with prefix.
// An empty prefix never matches.
func (r Record) HasPrefix(prefix string) bool {
	return prefix != "" && strings.HasPrefix(r.Key, prefix)
}

// Citation is a formatted reference ready to be printed.
type Citation struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Text    string `json:"text"`               // Formatted ABNT citation
	SortKey string `json:"sort_key,omitempty"` // Resolved title/author key, empty if absent
	Year    string `json:"year,omitempty"`
}
