package abnt

import (
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// article covers @article, @online, @movie and @misc: works identified by a
// title and, optionally, the periodical or medium that carries them.
type article struct {
	author    string
	title     string
	subtitle  string
	journal   string
	location  string
	publisher string
	issue     string
	volume    string
	pages     string
	year      string
	date      string
}

var articleSynonyms = map[string]string{
	"author":       "author",
	"title":        "title",
	"subtitle":     "subtitle",
	"journal":      "journal",
	"journaltitle": "journal",
	"location":     "location",
	"address":      "location",
	"publisher":    "publisher",
	"issue":        "issue",
	"number":       "issue",
	"volume":       "volume",
	"page":         "pages",
	"pages":        "pages",
	"year":         "year",
	"date":         "date",
}

func extractArticle(rec reference.Record) (*article, error) {
	f := collect(rec, articleSynonyms)
	f.requireOneOf("title", "author", "title", "journal")
	if err := f.err(false); err != nil {
		return nil, err
	}

	return &article{
		author:    f.get("author"),
		title:     f.get("title"),
		subtitle:  f.get("subtitle"),
		journal:   f.get("journal"),
		location:  f.get("location"),
		publisher: f.get("publisher"),
		issue:     f.get("issue"),
		volume:    f.get("volume"),
		pages:     f.get("pages"),
		year:      f.get("year"),
		date:      f.get("date"),
	}, nil
}

func (a *article) format() string {
	var b strings.Builder

	// Without an author the first word of the title leads the citation.
	if a.author != "" {
		b.WriteString(trimPeriod(Authors(a.author)))
		b.WriteString(". ")
		if title := joinNonEmpty(": ", Text(a.title), Text(a.subtitle)); title != "" {
			b.WriteString(title)
			b.WriteString(". ")
		}
	} else {
		lead := ""
		if a.title != "" {
			lead = leadTitle(a.title)
		}
		if title := joinNonEmpty(": ", lead, Text(a.subtitle)); title != "" {
			b.WriteString(title)
			b.WriteString(". ")
		}
	}

	var parts []string
	if a.journal != "" {
		parts = append(parts, strong(Text(a.journal)))
	}
	switch {
	case a.publisher != "":
		parts = append(parts, LocationPublisher(a.location, a.publisher))
	case a.location != "":
		parts = append(parts, Text(a.location))
	}
	if a.volume != "" {
		parts = append(parts, Volume(a.volume))
	}
	if a.issue != "" {
		parts = append(parts, Issue(a.issue))
	}
	if a.pages != "" {
		parts = append(parts, Pages(a.pages))
	}
	switch {
	case a.year != "":
		parts = append(parts, a.year)
	case a.date != "":
		parts = append(parts, Date(a.date))
	}

	if len(parts) == 0 {
		return strings.TrimSuffix(b.String(), " ")
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteByte('.')
	return b.String()
}
