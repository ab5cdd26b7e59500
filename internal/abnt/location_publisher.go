package abnt

import "strings"

// Placeholders for a missing place or publisher.
const (
	noLocation          = "[s.l.]"
	noPublisher         = "[s.n.]"
	noLocationPublisher = "[s.l.: s.n.]"
)

// LocationPublisher formats the publication places and publishers of a work.
// Both fields may hold several values joined by " and ". When the counts
// match, values are paired positionally ("Belo Horizonte: Itatiaia; São
// Paulo: EDUSP"). Otherwise the pairing is ambiguous and both lists are
// written out in full around a single colon ("Natal e Recife: EDUFRN").
func LocationPublisher(locations, publishers string) string {
	locs := splitAnd(locations)
	pubs := splitAnd(publishers)

	if len(locs) != len(pubs) {
		return joinAnd(escapeAll(locs)) + ": " + joinAnd(escapeAll(pubs))
	}

	pairs := make([]string, len(locs))
	for i := range locs {
		pairs[i] = singleLocationPublisher(strings.TrimSpace(locs[i]), strings.TrimSpace(pubs[i]))
	}
	return strings.Join(pairs, "; ")
}

func singleLocationPublisher(location, publisher string) string {
	switch {
	case location == "" && publisher == "":
		return noLocationPublisher
	case location == "":
		return noLocation + ": " + Text(publisher)
	case publisher == "":
		return Text(location) + ": " + noPublisher
	default:
		return Text(location) + ": " + Text(publisher)
	}
}

func escapeAll(values []string) []string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = Text(strings.TrimSpace(v))
	}
	return escaped
}

// joinAnd joins items as "a, b e c".
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " e " + items[len(items)-1]
}
