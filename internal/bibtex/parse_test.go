package bibtex

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matsen/abnt/internal/reference"
)

func parseString(t *testing.T, src string) []reference.Record {
	t.Helper()
	records, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return records
}

func TestParse_Entry(t *testing.T) {
	src := `
Some text before the first entry is ignored.

@Article{Azevedo1959,
  Title        = {Aldeias e aldeamentos},
  author       = "Azevedo, A.",
  year         = 1959,
  number       = {33},
  journaltitle = {Boletim {Paulista} de Geografia},
}
`
	records := parseString(t, src)
	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Type != "article" {
		t.Errorf("Type = %q, want article", rec.Type)
	}
	if rec.Key != "Azevedo1959" {
		t.Errorf("Key = %q, want Azevedo1959", rec.Key)
	}

	want := []reference.Tag{
		{Name: "title", Value: "Aldeias e aldeamentos"},
		{Name: "author", Value: "Azevedo, A."},
		{Name: "year", Value: "1959"},
		{Name: "number", Value: "33"},
		{Name: "journaltitle", Value: "Boletim {Paulista} de Geografia"},
	}
	if len(rec.Tags) != len(want) {
		t.Fatalf("got %d tags, want %d: %+v", len(rec.Tags), len(want), rec.Tags)
	}
	for i := range want {
		if rec.Tags[i] != want[i] {
			t.Errorf("Tags[%d] = %+v, want %+v", i, rec.Tags[i], want[i])
		}
	}
}

func TestParse_KeepsDuplicateTags(t *testing.T) {
	records := parseString(t, `@misc{K, title = {First}, title = {Second}}`)

	var titles []string
	for _, tag := range records[0].Tags {
		if tag.Name == "title" {
			titles = append(titles, tag.Value)
		}
	}
	if strings.Join(titles, "|") != "First|Second" {
		t.Errorf("titles = %v, want [First Second]", titles)
	}
}

func TestParse_Macros(t *testing.T) {
	src := `
@string{ihgrn = "Revista do IHGRN"}
@String(natal = {Natal})
@article{T,
  journal = ihgrn,
  location = natal # ", RN",
  month = jul,
  note = "Mês " # set,
}`
	rec := parseString(t, src)[0]

	tests := map[string]string{
		"journal":  "Revista do IHGRN",
		"location": "Natal, RN",
		"month":    "7",
		"note":     "Mês 9",
	}
	for name, want := range tests {
		if got, _ := rec.Field(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestParse_SkipsCommentsAndPreamble(t *testing.T) {
	src := `
@comment{this {is} ignored}
@preamble{"\newcommand{\noop}[1]{}"}
@book{B, year = 2004}
`
	records := parseString(t, src)
	if len(records) != 1 || records[0].Key != "B" {
		t.Errorf("Parse() = %+v, want only B", records)
	}
}

func TestParse_CollapsesWhitespace(t *testing.T) {
	src := "@book{B,\n  title = {Negócios\n     Jesuíticos  },\n}"
	if got, _ := parseString(t, src)[0].Field("title"); got != "Negócios Jesuíticos" {
		t.Errorf("title = %q", got)
	}
}

func TestParse_QuotesInsideBraces(t *testing.T) {
	src := `@misc{Q, title = "O {"}show{"} de Fath"}`
	if got, _ := parseString(t, src)[0].Field("title"); got != `O {"}show{"} de Fath` {
		t.Errorf("title = %q", got)
	}
}

func TestParse_NormalizesToNFC(t *testing.T) {
	// "Assunção" spelled with combining cedilla and tilde.
	src := "@book{B, author = {Assunc\u0327a\u0303o, P.}}"
	got, _ := parseString(t, src)[0].Field("author")
	if got != "Assunção, P." {
		t.Errorf("author = %q (% x), want NFC form", got, got)
	}
}

func TestParse_MultipleEntries(t *testing.T) {
	src := `@book{A, year = 1}
@inbook{B, year = 2}
@thesis{C, year = 3}`

	records := parseString(t, src)
	var keys []string
	for _, r := range records {
		keys = append(keys, r.Type+":"+r.Key)
	}
	if strings.Join(keys, ",") != "book:A,inbook:B,thesis:C" {
		t.Errorf("records = %v", keys)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		wantMsg  string
	}{
		{"unbalanced braces", "@book{B,\n  title = {Open\n", 2, "unbalanced braces"},
		{"undefined macro", "@book{B,\n\n  month = janeiro}", 3, "undefined macro"},
		{"missing equals", "@book{B, title {x}}", 1, "expected '='"},
		{"missing key", "@book{, title = {x}}", 1, "missing citation key"},
		{"unterminated entry", "@book{B, title = {x}", 1, "unterminated entry"},
		{"unterminated string", `@book{B, title = "x}`, 1, "unterminated string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse() error = %v, want *SyntaxError", err)
			}
			if serr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (%v)", serr.Line, tt.wantLine, err)
			}
			if !strings.Contains(serr.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want it to contain %q", serr.Msg, tt.wantMsg)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(path, []byte("@book{B, year = 2004}\n@book{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseFile(path)
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("ParseFile() error = %v, want *SyntaxError", err)
	}
	if serr.File != path || !strings.HasPrefix(err.Error(), path+":2:") {
		t.Errorf("error should name the file and line, got %v", err)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.bib")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile() on missing file error = %v, want ErrNotExist", err)
	}
}
