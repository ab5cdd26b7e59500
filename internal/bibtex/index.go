package bibtex

import (
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// Index tracks the citation keys and DOIs of a database so duplicates can be
// reported.
type Index struct {
	// keys maps a citation key to every record key that used it
	keys map[string][]string
	// dois maps a normalized DOI to the keys of the records carrying it
	dois map[string][]string

	keyOrder []string
	doiOrder []string
}

// Duplicate is a citation key or DOI shared by more than one record.
type Duplicate struct {
	Kind  string   `json:"kind"` // "key" or "doi"
	Value string   `json:"value"`
	Keys  []string `json:"keys"`
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		keys: make(map[string][]string),
		dois: make(map[string][]string),
	}
}

// Add records rec in the index.
func (idx *Index) Add(rec reference.Record) {
	if _, seen := idx.keys[rec.Key]; !seen {
		idx.keyOrder = append(idx.keyOrder, rec.Key)
	}
	idx.keys[rec.Key] = append(idx.keys[rec.Key], rec.Key)

	doi, _ := rec.Field("doi")
	if doi = normalizeDOI(doi); doi == "" {
		return
	}
	if _, seen := idx.dois[doi]; !seen {
		idx.doiOrder = append(idx.doiOrder, doi)
	}
	idx.dois[doi] = append(idx.dois[doi], rec.Key)
}

// HasEntry returns true if the entry already exists (by DOI or key).
// DOI is the primary match; citation key is the fallback if no DOI.
func (idx *Index) HasEntry(key, doi string) bool {
	if doi != "" {
		if _, exists := idx.dois[normalizeDOI(doi)]; exists {
			return true
		}
	}
	_, exists := idx.keys[key]
	return exists
}

// Duplicates returns every citation key and then every DOI used by more than
// one record, each group in order of first appearance.
func (idx *Index) Duplicates() []Duplicate {
	var dups []Duplicate
	for _, k := range idx.keyOrder {
		if len(idx.keys[k]) > 1 {
			dups = append(dups, Duplicate{Kind: "key", Value: k, Keys: idx.keys[k]})
		}
	}
	for _, d := range idx.doiOrder {
		if len(idx.dois[d]) > 1 {
			dups = append(dups, Duplicate{Kind: "doi", Value: d, Keys: idx.dois[d]})
		}
	}
	return dups
}

// normalizeDOI normalizes a DOI for comparison.
// Removes common prefixes like "https://doi.org/" and lowercases.
func normalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.ToLower(doi)
}
