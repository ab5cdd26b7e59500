package bibtex

import (
	"fmt"
	"io"
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// Write prints rec as a BibTeX entry. Tags are written in order, one per
// line, with their "=" aligned one column past the longest tag name:
//
//	@article{Key,
//	  title  = {...},
//	  author = {...}
//	}
func Write(w io.Writer, rec reference.Record) error {
	width := 0
	for _, t := range rec.Tags {
		width = max(width, len(t.Name))
	}
	width++

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s", rec.Type, rec.Key)
	for _, t := range rec.Tags {
		fmt.Fprintf(&b, ",\n  %-*s= {%s}", width, t.Name, t.Value)
	}
	b.WriteString("\n}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteAll prints every record in order.
func WriteAll(w io.Writer, records []reference.Record) error {
	for _, rec := range records {
		if err := Write(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// placeholderYear is the year stamped into citation keys that were generated
// before the work's real year was known.
const placeholderYear = "2021"

// Rekey returns a copy of rec whose citation key is prefixed with prefix and
// has every placeholder year replaced with the record's first year tag.
// Records without a year only gain the prefix.
func Rekey(rec reference.Record, prefix string) reference.Record {
	key := prefix + rec.Key
	if year, ok := rec.Field("year"); ok {
		key = strings.ReplaceAll(key, placeholderYear, year)
	}

	out := rec
	out.Key = key
	out.Tags = append([]reference.Tag(nil), rec.Tags...)
	return out
}
