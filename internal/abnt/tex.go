// Package abnt formats bibliographic records as ABNT (NBR 6023) citations.
//
// The package is pure: it reads reference.Record values, never mutates them,
// and returns owned strings. Markup in field values is interpreted as a small
// TeX subset (dashes, quotes, \dots, \&, \$) and braces group text that must
// not be split or case-changed.
package abnt

import "strings"

// scanState is the pending markup while scanning a field value.
type scanState int

const (
	stateNormal scanState = iota
	stateDash
	stateEnDash
	stateGrave
	stateApostrophe
	stateCommand
)

// commands maps the recognized TeX commands to their replacement.
var commands = map[string]string{
	`\dots`: "…",
	`\&`:    "&",
	`\$`:    "$",
}

// Text rewrites TeX-like markup into typeset Unicode in a single left-to-right
// pass: "--" and "---" become en and em dashes, `` and '' become curly double
// quotes, a lone ` or ' becomes a curly single quote, and \dots, \& and \$
// are substituted. A command ends at a space, another backslash or the end of
// input; unknown commands are dropped and "\\" yields one backslash.
func Text(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	state := stateNormal
	start := 0 // byte offset of the pending command's backslash

	// normal handles c with no markup pending.
	normal := func(i int, c rune) scanState {
		switch c {
		case '-':
			return stateDash
		case '`':
			return stateGrave
		case '\'':
			return stateApostrophe
		case '\\':
			start = i
			return stateCommand
		}
		b.WriteRune(c)
		return stateNormal
	}

	for i, c := range s {
		switch state {
		case stateNormal:
			state = normal(i, c)

		case stateDash:
			if c == '-' {
				state = stateEnDash
				continue
			}
			b.WriteByte('-')
			state = normal(i, c)

		case stateEnDash:
			if c == '-' {
				b.WriteString("—")
				state = stateNormal
				continue
			}
			b.WriteString("–")
			state = normal(i, c)

		case stateGrave:
			if c == '`' {
				b.WriteString("“")
				state = stateNormal
				continue
			}
			b.WriteString("‘")
			state = normal(i, c)

		case stateApostrophe:
			if c == '\'' {
				b.WriteString("”")
				state = stateNormal
				continue
			}
			b.WriteString("’")
			state = normal(i, c)

		case stateCommand:
			switch c {
			case ' ':
				// An unknown command swallows its terminating space too.
				if r, ok := commands[s[start:i]]; ok {
					b.WriteString(r)
					b.WriteByte(' ')
				}
				state = stateNormal
			case '\\':
				if i == start+1 {
					b.WriteByte('\\')
					state = stateNormal
					continue
				}
				b.WriteString(commands[s[start:i]])
				start = i
			}
		}
	}

	switch state {
	case stateDash:
		b.WriteByte('-')
	case stateEnDash:
		b.WriteString("–")
	case stateGrave:
		b.WriteString("‘")
	case stateApostrophe:
		b.WriteString("’")
	case stateCommand:
		b.WriteString(commands[s[start:]])
	}

	return b.String()
}

// indexUnbraced returns the byte index of the first c in s that is not
// inside a {} group, or -1.
func indexUnbraced(s string, c rune) int {
	depth := 0
	for i, r := range s {
		switch {
		case r == c && depth == 0:
			return i
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		}
	}
	return -1
}

// lastIndexUnbraced returns the byte index of the last c in s that is not
// inside a {} group, or -1.
func lastIndexUnbraced(s string, c rune) int {
	depth, last := 0, -1
	for i, r := range s {
		switch {
		case r == c && depth == 0:
			last = i
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		}
	}
	return last
}

// cutUnbraced splits s around the first unbraced c.
func cutUnbraced(s string, c rune) (before, after string, found bool) {
	if i := indexUnbraced(s, c); i >= 0 {
		return s[:i], s[i+len(string(c)):], true
	}
	return s, "", false
}
