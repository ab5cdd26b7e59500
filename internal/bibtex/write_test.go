package bibtex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matsen/abnt/internal/reference"
)

func TestWrite(t *testing.T) {
	rec := reference.Record{
		Type: "article",
		Key:  "Azevedo1959",
		Tags: []reference.Tag{
			{Name: "title", Value: "Aldeias e aldeamentos"},
			{Name: "journaltitle", Value: "Boletim Paulista de Geografia"},
			{Name: "year", Value: "1959"},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, rec); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `@article{Azevedo1959,
  title        = {Aldeias e aldeamentos},
  journaltitle = {Boletim Paulista de Geografia},
  year         = {1959}
}
`
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWrite_NoTags(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, reference.Record{Type: "misc", Key: "Empty"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "@misc{Empty\n}\n" {
		t.Errorf("Write() = %q", buf.String())
	}
}

func TestWriteAll_RoundTrip(t *testing.T) {
	src := `@book{Assuncao2004,
  title     = {Negócios {Jesuíticos}},
  author    = {Assunção, P.},
  year      = {2004}
}
@misc{Note,
  note = {Arquivo}
}
`
	records := parseString(t, src)

	var buf bytes.Buffer
	if err := WriteAll(&buf, records); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	again := parseString(t, buf.String())
	if len(again) != len(records) {
		t.Fatalf("round trip returned %d records, want %d", len(again), len(records))
	}
	for i := range records {
		if again[i].Key != records[i].Key || len(again[i].Tags) != len(records[i].Tags) {
			t.Errorf("record %d changed: %+v -> %+v", i, records[i], again[i])
		}
		for j := range records[i].Tags {
			if again[i].Tags[j] != records[i].Tags[j] {
				t.Errorf("tag %d/%d = %+v, want %+v", i, j, again[i].Tags[j], records[i].Tags[j])
			}
		}
	}
}

func TestRekey(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		tags   []reference.Tag
		prefix string
		want   string
	}{
		{
			name:   "placeholder year replaced",
			key:    "Dias2021dinamicas",
			tags:   []reference.Tag{{Name: "year", Value: "2011"}},
			prefix: "Ec",
			want:   "EcDias2011dinamicas",
		},
		{
			name:   "first year tag wins",
			key:    "Dias2021",
			tags:   []reference.Tag{{Name: "year", Value: "2015"}, {Name: "year", Value: "2016"}},
			prefix: "",
			want:   "Dias2015",
		},
		{
			name:   "no year only prefixes",
			key:    "Mariz2021",
			prefix: "Web",
			want:   "WebMariz2021",
		},
		{
			name:   "key without placeholder",
			key:    "Lapa1980",
			tags:   []reference.Tag{{Name: "year", Value: "1980"}},
			prefix: "Ec",
			want:   "EcLapa1980",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := reference.Record{Type: "book", Key: tt.key, Tags: tt.tags}
			got := Rekey(rec, tt.prefix)
			if got.Key != tt.want {
				t.Errorf("Rekey() key = %q, want %q", got.Key, tt.want)
			}
			if rec.Key != tt.key {
				t.Errorf("Rekey() modified its input key to %q", rec.Key)
			}
		})
	}
}

func TestRekey_OutputAlignment(t *testing.T) {
	rec := reference.Record{
		Type: "book",
		Key:  "X2021",
		Tags: []reference.Tag{{Name: "year", Value: "1854"}, {Name: "author", Value: "Passos, A. B."}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, Rekey(rec, "Ec")); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "@book{EcX1854,\n  year   = {1854},\n  author = {Passos, A. B.}") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
