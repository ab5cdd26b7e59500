package abnt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// andSeparator splits BibTeX name and place lists.
var andSeparator = regexp.MustCompile(`(?i) and `)

// etAl replaces every author after the first when a list has more than
// maxListedAuthors names.
const etAl = "<em>et al</em>"

const maxListedAuthors = 3

// splitAnd splits a multi-valued field on " and " (case-insensitive).
// An empty value yields a single empty element.
func splitAnd(s string) []string {
	return andSeparator.Split(s, -1)
}

// Authors formats a name list ("A and B and C") as "A; B; C" with every name
// surname-first. Lists longer than three names keep only the first one,
// followed by "; et al". An empty field yields "".
func Authors(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	names := splitAnd(s)
	if len(names) > maxListedAuthors {
		return SurnameFirst(names[0]) + "; " + etAl
	}

	formatted := make([]string, len(names))
	for i, name := range names {
		formatted[i] = SurnameFirst(name)
	}
	return strings.Join(formatted, "; ")
}

// SurnameFirst formats a single name as "FAMILY, I. I. particles".
//
// Supported formats:
//   - "Araújo, Gabriel"  → "ARAÚJO, G."
//   - "del Priori, M."   → "PRIORI, M. del"
//   - "Gabriel Araújo"   → "ARAÚJO, G." (no comma: the last unbraced word is the family name)
//   - "Heródoto"         → "HERÓDOTO" (mononym)
//
// Commas and spaces inside {} groups never split, so "Prado{ }Jr., C."
// yields "PRADO JR., C.".
func SurnameFirst(name string) string {
	name = strings.TrimSpace(name)

	var family, given string
	if f, g, ok := cutUnbraced(name, ','); ok {
		family, given = f, g
	} else if i := lastIndexUnbraced(name, ' '); i >= 0 {
		given, family = splitGivenParticles(name[:i], name[i+1:])
	} else {
		return Uppercase(name)
	}

	parts := strings.Fields(family)
	var particles []string
	for len(parts) > 1 && startsLower(parts[0]) {
		particles = append(particles, parts[0])
		parts = parts[1:]
	}

	upper := make([]string, len(parts))
	for i, p := range parts {
		upper[i] = Uppercase(p)
	}

	var b strings.Builder
	b.WriteString(strings.Join(upper, " "))
	if initials := Initials(given); initials != "" {
		b.WriteString(", ")
		b.WriteString(initials)
	}
	for _, p := range particles {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	return b.String()
}

// splitGivenParticles moves trailing lowercase words of a "Given Family"
// given part ("Ludwig van") to the front of the family name, where they are
// treated as particles. At least one given word is kept.
func splitGivenParticles(given, family string) (string, string) {
	words := strings.Fields(given)
	j := len(words)
	for j > 1 && startsLower(words[j-1]) {
		j--
	}
	if j == len(words) {
		return given, family
	}
	moved := append([]string{}, words[j:]...)
	return strings.Join(words[:j], " "), strings.Join(append(moved, family), " ")
}

// Initials reduces given names to "X. Y." using the first letter of each
// word. Grouping braces are skipped.
func Initials(given string) string {
	var initials []string
	for _, word := range strings.Fields(given) {
		word = strings.TrimLeft(word, "{}")
		if word == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, string(r)+".")
	}
	return strings.Join(initials, " ")
}

func startsLower(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsLower(r)
}
