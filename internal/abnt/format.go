package abnt

import (
	"errors"
	"slices"
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// entry is a record of one supported type with its fields extracted.
type entry interface {
	format() string
}

// extractEntry selects the extractor for the record's entry type.
func extractEntry(rec reference.Record) (entry, error) {
	switch strings.ToLower(rec.Type) {
	case "article", "online", "movie", "misc":
		return extractArticle(rec)
	case "book":
		return extractBook(rec)
	case "thesis", "phdthesis", "mastersthesis":
		return extractThesis(rec)
	case "inbook":
		return extractInBook(rec)
	case "incollection":
		return extractInCollection(rec)
	case "inproceedings":
		return extractInProceedings(rec)
	case "collection":
		return extractCollection(rec)
	}
	return nil, &UnknownEntryTypeError{Key: rec.Key, EntryType: rec.Type}
}

// Format renders rec as a complete ABNT citation, trailing note, link and
// access date included. No partial citation is returned on error.
func Format(rec reference.Record) (string, error) {
	e, err := extractEntry(rec)
	if err != nil {
		return "", err
	}
	return e.format() + extractExtra(rec).String(), nil
}

// FormatAll formats every record and returns the citations in reference-list
// order. Records that fail are all reported in the returned error and no
// citations are returned in that case.
func FormatAll(records []reference.Record) ([]reference.Citation, error) {
	type sortable struct {
		citation reference.Citation
		key      SortKey
	}

	items := make([]sortable, 0, len(records))
	var errs []error
	for _, rec := range records {
		text, err := Format(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		key := SortKeyOf(rec)
		items = append(items, sortable{
			citation: reference.Citation{
				Key:     rec.Key,
				Type:    strings.ToLower(rec.Type),
				Text:    text,
				SortKey: key.Key,
				Year:    key.Year,
			},
			key: key,
		})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slices.SortStableFunc(items, func(a, b sortable) int {
		if c := Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.citation.Key, b.citation.Key)
	})

	citations := make([]reference.Citation, len(items))
	for i, it := range items {
		citations[i] = it.citation
	}
	return citations, nil
}
