package abnt

import (
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// extraInfo holds the trailing elements shared by every entry type.
type extraInfo struct {
	note    string
	url     string
	doi     string
	urlDate string
}

var extraSynonyms = map[string]string{
	"note":    "note",
	"url":     "url",
	"doi":     "doi",
	"urldate": "urldate",
}

func extractExtra(rec reference.Record) extraInfo {
	f := collect(rec, extraSynonyms)
	return extraInfo{
		note:    strings.TrimRight(f.get("note"), "."),
		url:     f.get("url"),
		doi:     stripDOIPrefix(f.get("doi")),
		urlDate: f.get("urldate"),
	}
}

// stripDOIPrefix removes a resolver prefix so the DOI can be linked uniformly.
func stripDOIPrefix(doi string) string {
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	return doi
}

// String renders the present elements, each preceded by a space:
// " note. Disponível em: <link>. Acesso em: 19 jul. 2019.". A DOI takes
// priority over a URL.
func (e extraInfo) String() string {
	var b strings.Builder

	if e.note != "" {
		b.WriteString(" ")
		b.WriteString(e.note)
		b.WriteString(".")
	}

	switch {
	case e.doi != "":
		b.WriteString(" Disponível em: <https://doi.org/")
		b.WriteString(e.doi)
		b.WriteString(">.")
	case e.url != "":
		b.WriteString(" Disponível em: <")
		b.WriteString(e.url)
		b.WriteString(">.")
	}

	if e.urlDate != "" {
		b.WriteString(" Acesso em: ")
		b.WriteString(Date(e.urlDate))
		b.WriteString(".")
	}

	return b.String()
}
