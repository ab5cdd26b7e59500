package abnt

import (
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

// inBook is a part of a book (@inbook). The host book is introduced by its
// own authors, by its organizers, or, lacking both, by its title.
type inBook struct {
	author       string
	title        string
	subtitle     string
	bookAuthor   string
	editor       string
	bookTitle    string
	bookSubtitle string
	location     string
	publisher    string
	year         string
}

var inBookSynonyms = map[string]string{
	"author":       "author",
	"title":        "title",
	"subtitle":     "subtitle",
	"bookauthor":   "bookauthor",
	"editor":       "editor",
	"booktitle":    "booktitle",
	"booksubtitle": "booksubtitle",
	"location":     "location",
	"address":      "location",
	"publisher":    "publisher",
	"year":         "year",
}

func extractInBook(rec reference.Record) (*inBook, error) {
	f := collect(rec, inBookSynonyms)
	f.require("author", "title", "booktitle", "year")
	if err := f.err(false); err != nil {
		return nil, err
	}

	return &inBook{
		author:       f.get("author"),
		title:        f.get("title"),
		subtitle:     f.get("subtitle"),
		bookAuthor:   f.get("bookauthor"),
		editor:       f.get("editor"),
		bookTitle:    f.get("booktitle"),
		bookSubtitle: f.get("booksubtitle"),
		location:     f.get("location"),
		publisher:    f.get("publisher"),
		year:         f.get("year"),
	}, nil
}

func (ib *inBook) format() string {
	var b strings.Builder
	writePartHead(&b, ib.author, ib.title, ib.subtitle)

	host := trimPeriod(Authors(ib.bookAuthor))
	if host == "" && ib.editor != "" {
		host = organizers(ib.editor)
	}

	if host == "" {
		b.WriteString(joinNonEmpty(": ", leadTitle(ib.bookTitle), Text(ib.bookSubtitle)))
	} else {
		b.WriteString(host)
		b.WriteString(". ")
		b.WriteString(boldTitle(ib.bookTitle, ib.bookSubtitle))
	}

	b.WriteString(". ")
	b.WriteString(LocationPublisher(ib.location, ib.publisher))
	b.WriteString(", ")
	b.WriteString(ib.year)
	b.WriteByte('.')
	return b.String()
}

// inCollection is a chapter of an organized volume (@incollection).
type inCollection struct {
	author       string
	title        string
	subtitle     string
	editor       string
	bookTitle    string
	bookSubtitle string
	location     string
	publisher    string
	year         string
}

var inCollectionSynonyms = map[string]string{
	"author":       "author",
	"title":        "title",
	"subtitle":     "subtitle",
	"editor":       "editor",
	"booktitle":    "booktitle",
	"booksubtitle": "booksubtitle",
	"location":     "location",
	"address":      "location",
	"publisher":    "publisher",
	"year":         "year",
}

func extractInCollection(rec reference.Record) (*inCollection, error) {
	f := collect(rec, inCollectionSynonyms)
	f.require("author", "title", "editor", "booktitle", "year")
	if err := f.err(true); err != nil {
		return nil, err
	}

	return &inCollection{
		author:       f.get("author"),
		title:        f.get("title"),
		subtitle:     f.get("subtitle"),
		editor:       f.get("editor"),
		bookTitle:    f.get("booktitle"),
		bookSubtitle: f.get("booksubtitle"),
		location:     f.get("location"),
		publisher:    f.get("publisher"),
		year:         f.get("year"),
	}, nil
}

func (ic *inCollection) format() string {
	var b strings.Builder
	writePartHead(&b, ic.author, ic.title, ic.subtitle)

	b.WriteString(organizers(ic.editor))
	b.WriteString(". ")
	b.WriteString(boldTitle(ic.bookTitle, ic.bookSubtitle))
	b.WriteString(". ")
	b.WriteString(LocationPublisher(ic.location, ic.publisher))
	b.WriteString(", ")
	b.WriteString(ic.year)
	b.WriteByte('.')
	return b.String()
}

// inProceedings is a paper presented at an event (@inproceedings).
type inProceedings struct {
	author     string
	title      string
	subtitle   string
	eventTitle string
	number     string
	location   string
	year       string
}

var inProceedingsSynonyms = map[string]string{
	"author":     "author",
	"title":      "title",
	"subtitle":   "subtitle",
	"eventtitle": "eventtitle",
	"number":     "number",
	"year":       "year",
	"eventyear":  "year",
	"location":   "location",
	"address":    "location",
	"venue":      "location",
}

func extractInProceedings(rec reference.Record) (*inProceedings, error) {
	f := collect(rec, inProceedingsSynonyms)
	f.require("author", "title", "eventtitle", "year")
	if err := f.err(false); err != nil {
		return nil, err
	}

	return &inProceedings{
		author:     f.get("author"),
		title:      f.get("title"),
		subtitle:   f.get("subtitle"),
		eventTitle: f.get("eventtitle"),
		number:     f.get("number"),
		location:   f.get("location"),
		year:       f.get("year"),
	}, nil
}

func (ip *inProceedings) format() string {
	var b strings.Builder
	writePartHead(&b, ip.author, ip.title, ip.subtitle)

	b.WriteString(Uppercase(Text(ip.eventTitle)))
	if details := joinNonEmpty(", ", Text(ip.number), ip.year, Text(ip.location)); details != "" {
		b.WriteString(", ")
		b.WriteString(details)
	}
	b.WriteByte('.')
	return b.String()
}

// writePartHead writes "AUTHOR. Title: subtitle. In: ", the opening shared
// by every citation of a part of a larger work.
func writePartHead(b *strings.Builder, author, title, subtitle string) {
	b.WriteString(trimPeriod(Authors(author)))
	b.WriteString(". ")
	b.WriteString(joinNonEmpty(": ", Text(title), Text(subtitle)))
	b.WriteString(". In: ")
}
