package bibtex

import (
	"testing"

	"github.com/matsen/abnt/internal/reference"
)

func rec(key, doi string) reference.Record {
	r := reference.Record{Type: "article", Key: key}
	if doi != "" {
		r.Tags = append(r.Tags, reference.Tag{Name: "doi", Value: doi})
	}
	return r
}

func TestIndex_Duplicates(t *testing.T) {
	idx := NewIndex()
	for _, r := range []reference.Record{
		rec("A", "10.1234/X"),
		rec("B", "https://doi.org/10.1234/x"),
		rec("A", ""),
		rec("C", "10.5555/other"),
	} {
		idx.Add(r)
	}

	dups := idx.Duplicates()
	if len(dups) != 2 {
		t.Fatalf("Duplicates() = %+v, want 2 entries", dups)
	}
	if dups[0].Kind != "key" || dups[0].Value != "A" || len(dups[0].Keys) != 2 {
		t.Errorf("dups[0] = %+v, want duplicate key A", dups[0])
	}
	if dups[1].Kind != "doi" || dups[1].Value != "10.1234/x" {
		t.Errorf("dups[1] = %+v, want duplicate doi 10.1234/x", dups[1])
	}
	if got := dups[1].Keys; len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("dups[1].Keys = %v, want [A B]", got)
	}
}

func TestIndex_NoDuplicates(t *testing.T) {
	idx := NewIndex()
	idx.Add(rec("A", "10.1/a"))
	idx.Add(rec("B", "10.1/b"))

	if dups := idx.Duplicates(); len(dups) != 0 {
		t.Errorf("Duplicates() = %+v, want none", dups)
	}
}

func TestIndex_HasEntry(t *testing.T) {
	idx := NewIndex()
	idx.Add(rec("Smith2026", "10.1234/test"))

	tests := []struct {
		name string
		key  string
		doi  string
		want bool
	}{
		{"by key", "Smith2026", "", true},
		{"by doi with prefix", "Other", "doi:10.1234/TEST", true},
		{"unknown", "Other", "10.9999/none", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.HasEntry(tt.key, tt.doi); got != tt.want {
				t.Errorf("HasEntry(%q, %q) = %v, want %v", tt.key, tt.doi, got, tt.want)
			}
		})
	}
}

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.1234/ABC", "10.1234/abc"},
		{"https://doi.org/10.1234/abc", "10.1234/abc"},
		{"http://doi.org/10.1234/abc", "10.1234/abc"},
		{"doi.org/10.1234/abc", "10.1234/abc"},
		{"DOI:10.1234/abc", "10.1234/abc"},
		{"  doi:10.1234/abc  ", "10.1234/abc"},
	}
	for _, tt := range tests {
		if got := normalizeDOI(tt.in); got != tt.want {
			t.Errorf("normalizeDOI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
