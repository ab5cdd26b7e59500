package abnt

import (
	"strconv"
	"strings"
)

// Pages formats a page field: "201--226" becomes "p. 201–226" and any other
// value is prefixed as a single page ("p. v").
func Pages(s string) string {
	if first, last, ok := strings.Cut(s, "--"); ok {
		return "p. " + first + "–" + last
	}
	return "p. " + s
}

// Volume formats a volume number.
func Volume(s string) string { return "v. " + s }

// Issue formats an issue number.
func Issue(s string) string { return "n. " + s }

func strong(s string) string { return "<strong>" + s + "</strong>" }

var monthAbbrevs = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// Date renders an ISO date (YYYY-MM-DD) as "24 jul. 1952". Values without a
// parseable day, or with a month outside 1-12, are returned unchanged.
func Date(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return s
	}

	month, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || month < 1 || month > 12 {
		return s
	}
	day, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return s
	}

	return strconv.FormatUint(day, 10) + " " + monthAbbrevs[month-1] + ". " + parts[0]
}

// trimPeriod removes one trailing period so a following ". " does not
// double it ("SILVA, J." → "SILVA, J").
func trimPeriod(s string) string {
	return strings.TrimSuffix(s, ".")
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// leadTitle uppercases the first unbraced word of a title that opens a
// citation in place of an author ("Aldeias e aldeamentos" → "ALDEIAS e
// aldeamentos").
func leadTitle(title string) string {
	lead, rest, found := cutUnbraced(title, ' ')
	if !found || strings.TrimSpace(rest) == "" {
		return Uppercase(Text(lead))
	}
	return Uppercase(Text(lead)) + " " + Text(rest)
}
