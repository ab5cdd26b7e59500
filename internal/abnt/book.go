package abnt

import (
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

type book struct {
	author    string
	editor    string
	title     string
	subtitle  string
	location  string
	publisher string
	year      string
}

var bookSynonyms = map[string]string{
	"author":    "author",
	"editor":    "editor",
	"title":     "title",
	"subtitle":  "subtitle",
	"location":  "location",
	"address":   "location",
	"publisher": "publisher",
	"year":      "year",
}

// extractBook reads a @book. An editor is only accepted in the organizer
// role; when an author is also present the author leads the citation.
func extractBook(rec reference.Record) (*book, error) {
	f := collect(rec, bookSynonyms)
	f.requireOneOf("author", "author", "editor")
	f.require("year")
	if err := f.err(true); err != nil {
		return nil, err
	}

	return &book{
		author:    f.get("author"),
		editor:    f.get("editor"),
		title:     f.get("title"),
		subtitle:  f.get("subtitle"),
		location:  f.get("location"),
		publisher: f.get("publisher"),
		year:      f.get("year"),
	}, nil
}

func (bk *book) format() string {
	var b strings.Builder

	if bk.author != "" {
		b.WriteString(trimPeriod(Authors(bk.author)))
		b.WriteString(". ")
	} else {
		b.WriteString(organizers(bk.editor))
		b.WriteString(". ")
	}

	if bk.title != "" {
		b.WriteString(boldTitle(bk.title, bk.subtitle))
		b.WriteString(". ")
	}

	b.WriteString(LocationPublisher(bk.location, bk.publisher))
	b.WriteString(", ")
	b.WriteString(bk.year)
	b.WriteByte('.')
	return b.String()
}

// collection is an edited volume cited as a whole (@collection).
type collection struct {
	editor    string
	title     string
	subtitle  string
	location  string
	publisher string
	year      string
}

var collectionSynonyms = map[string]string{
	"editor":    "editor",
	"title":     "title",
	"subtitle":  "subtitle",
	"location":  "location",
	"address":   "location",
	"publisher": "publisher",
	"year":      "year",
}

func extractCollection(rec reference.Record) (*collection, error) {
	f := collect(rec, collectionSynonyms)
	f.require("editor", "title", "year")
	if err := f.err(true); err != nil {
		return nil, err
	}

	return &collection{
		editor:    f.get("editor"),
		title:     f.get("title"),
		subtitle:  f.get("subtitle"),
		location:  f.get("location"),
		publisher: f.get("publisher"),
		year:      f.get("year"),
	}, nil
}

func (c *collection) format() string {
	return organizers(c.editor) + ". " +
		boldTitle(c.title, c.subtitle) + ". " +
		LocationPublisher(c.location, c.publisher) + ", " + c.year + "."
}

// organizers formats editors in the organizer role: "SILVA, G. C. M. (Org.)".
func organizers(editor string) string {
	return Authors(editor) + " (Org.)"
}

// boldTitle renders "<strong>Title</strong>: subtitle".
func boldTitle(title, subtitle string) string {
	if subtitle == "" {
		return strong(Text(title))
	}
	return strong(Text(title)) + ": " + Text(subtitle)
}
