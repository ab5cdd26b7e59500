package abnt

import (
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// SortKey orders a reference list: by Key, then by Year. An absent key or
// year sorts before any present one.
type SortKey struct {
	Key     string
	HasKey  bool
	Year    string
	HasYear bool
}

// SortKeyOf resolves the key of rec from, in order of preference, sorttitle,
// the formatted author list, the formatted editor list, and the title.
// The first non-empty occurrence of each tag is used.
func SortKeyOf(rec reference.Record) SortKey {
	var sortTitle, author, editor, title, year string

	first := func(dst *string, v string) {
		if *dst == "" {
			*dst = strings.TrimSpace(v)
		}
	}
	for _, tag := range rec.Tags {
		switch tag.Name {
		case "sorttitle":
			first(&sortTitle, tag.Value)
		case "author":
			first(&author, tag.Value)
		case "editor", tagOrganizer:
			first(&editor, tag.Value)
		case "title":
			first(&title, tag.Value)
		case "year":
			first(&year, tag.Value)
		}
	}

	var k SortKey
	switch {
	case sortTitle != "":
		k.Key = sortTitle
	case author != "":
		k.Key = Authors(author)
	case editor != "":
		k.Key = Authors(editor)
	default:
		k.Key = title
	}
	k.HasKey = k.Key != ""
	k.Year, k.HasYear = year, year != ""
	return k
}

// Compare returns -1, 0 or +1 as a sorts before, with, or after b.
func Compare(a, b SortKey) int {
	if c := compareOptional(a.Key, a.HasKey, b.Key, b.HasKey); c != 0 {
		return c
	}
	return compareOptional(a.Year, a.HasYear, b.Year, b.HasYear)
}

func compareOptional(a string, hasA bool, b string, hasB bool) int {
	switch {
	case !hasA && !hasB:
		return 0
	case !hasA:
		return -1
	case !hasB:
		return 1
	}
	return strings.Compare(a, b)
}
