package abnt

import (
	"strings"

	"github.com/matsen/abnt/internal/reference"
)

type thesis struct {
	author      string
	title       string
	subtitle    string
	thesisType  string
	institution string
	location    string
	year        string
}

var thesisSynonyms = map[string]string{
	"author":      "author",
	"title":       "title",
	"subtitle":    "subtitle",
	"type":        "type",
	"institution": "institution",
	"school":      "institution",
	"location":    "location",
	"address":     "location",
	"year":        "year",
}

func extractThesis(rec reference.Record) (*thesis, error) {
	f := collect(rec, thesisSynonyms)
	f.require("author", "title", "type", "institution", "year")
	if err := f.err(false); err != nil {
		return nil, err
	}

	return &thesis{
		author:      f.get("author"),
		title:       f.get("title"),
		subtitle:    f.get("subtitle"),
		thesisType:  f.get("type"),
		institution: f.get("institution"),
		location:    f.get("location"),
		year:        f.get("year"),
	}, nil
}

func (t *thesis) format() string {
	var b strings.Builder

	b.WriteString(trimPeriod(Authors(t.author)))
	b.WriteString(". ")
	b.WriteString(boldTitle(t.title, t.subtitle))
	b.WriteString(". ")
	b.WriteString(t.year)
	b.WriteString(". ")
	b.WriteString(Text(t.thesisType))
	b.WriteString(" – ")
	b.WriteString(Text(t.institution))
	if t.location != "" {
		b.WriteString(", ")
		b.WriteString(Text(t.location))
	}
	b.WriteByte('.')
	return b.String()
}
