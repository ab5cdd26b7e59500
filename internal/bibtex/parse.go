// Package bibtex reads and writes BibTeX databases.
//
// The reader keeps every tag in input order, duplicates included, so callers
// can apply their own precedence rules. Entry types and tag names are
// lowercased; values have their delimiters removed, @string macros expanded,
// "#" concatenations joined, whitespace runs collapsed and are normalized to
// Unicode NFC.
package bibtex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/matsen/abnt/internal/reference"
)

// monthMacros are predefined before any input is read. Both the English and
// the Portuguese abbreviations are accepted.
var monthMacros = map[string]string{
	"jan": "1",
	"feb": "2", "fev": "2",
	"mar": "3",
	"apr": "4", "abr": "4",
	"may": "5", "mai": "5",
	"jun": "6",
	"jul": "7",
	"aug": "8", "ago": "8",
	"sep": "9", "set": "9",
	"oct": "10", "out": "10",
	"nov": "11",
	"dec": "12", "dez": "12",
}

// SyntaxError reports malformed input.
type SyntaxError struct {
	File string // Empty when parsing a stream
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads every entry from r. @comment and @preamble blocks and text
// outside entries are skipped.
func Parse(r io.Reader) ([]reference.Record, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bibtex: %w", err)
	}

	p := &parser{src: string(src), macros: make(map[string]string, len(monthMacros))}
	for k, v := range monthMacros {
		p.macros[k] = v
	}
	return p.parse()
}

// ParseFile parses the BibTeX file at path.
func ParseFile(path string) ([]reference.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Parse(f)
	var serr *SyntaxError
	if errors.As(err, &serr) {
		serr.File = path
	}
	return records, err
}

type parser struct {
	src    string
	pos    int
	macros map[string]string
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Line: strings.Count(p.src[:p.pos], "\n") + 1,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) parse() ([]reference.Record, error) {
	var records []reference.Record

	for {
		at := strings.IndexByte(p.src[p.pos:], '@')
		if at < 0 {
			return records, nil
		}
		p.pos += at + 1

		p.skipSpace()
		kind := strings.ToLower(p.ident())
		if kind == "" {
			return nil, p.errorf("expected entry type after '@'")
		}
		p.skipSpace()

		if kind == "comment" {
			if err := p.skipComment(); err != nil {
				return nil, err
			}
			continue
		}

		closer, err := p.open()
		if err != nil {
			return nil, err
		}

		switch kind {
		case "preamble":
			p.skipSpace()
			if _, err := p.value(); err != nil {
				return nil, err
			}
			if err := p.close(closer); err != nil {
				return nil, err
			}
		case "string":
			if err := p.stringMacro(closer); err != nil {
				return nil, err
			}
		default:
			rec, err := p.entry(kind, closer)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}
}

// open consumes the opening delimiter of a block and returns its closer.
func (p *parser) open() (byte, error) {
	if p.eof() {
		return 0, p.errorf("unexpected end of input")
	}
	switch p.peek() {
	case '{':
		p.pos++
		return '}', nil
	case '(':
		p.pos++
		return ')', nil
	}
	return 0, p.errorf("expected '{' or '(', found %q", p.peek())
}

func (p *parser) close(closer byte) error {
	p.skipSpace()
	if p.eof() || p.peek() != closer {
		return p.errorf("expected %q", closer)
	}
	p.pos++
	return nil
}

// skipComment skips a braced @comment body, or nothing when the comment is
// not followed by a group.
func (p *parser) skipComment() error {
	if p.eof() || (p.peek() != '{' && p.peek() != '(') {
		return nil
	}
	if p.peek() == '(' {
		end := strings.IndexByte(p.src[p.pos:], ')')
		if end < 0 {
			return p.errorf("unterminated @comment")
		}
		p.pos += end + 1
		return nil
	}
	_, err := p.braced()
	return err
}

func (p *parser) stringMacro(closer byte) error {
	p.skipSpace()
	name := strings.ToLower(p.ident())
	if name == "" {
		return p.errorf("expected macro name in @string")
	}
	p.skipSpace()
	if p.eof() || p.peek() != '=' {
		return p.errorf("expected '=' after macro %q", name)
	}
	p.pos++
	p.skipSpace()

	v, err := p.value()
	if err != nil {
		return err
	}
	p.macros[name] = v
	return p.close(closer)
}

func (p *parser) entry(kind string, closer byte) (reference.Record, error) {
	rec := reference.Record{Type: kind}

	p.skipSpace()
	start := p.pos
	for !p.eof() && p.peek() != ',' && p.peek() != closer && !isSpace(p.peek()) {
		p.pos++
	}
	rec.Key = norm.NFC.String(p.src[start:p.pos])
	if rec.Key == "" {
		return rec, p.errorf("missing citation key in @%s", kind)
	}

	for {
		p.skipSpace()
		if p.eof() {
			return rec, p.errorf("unterminated entry %q", rec.Key)
		}
		switch p.peek() {
		case closer:
			p.pos++
			return rec, nil
		case ',':
			p.pos++
		default:
			return rec, p.errorf("expected ',' or %q in entry %q, found %q", closer, rec.Key, p.peek())
		}

		p.skipSpace()
		if !p.eof() && p.peek() == closer {
			continue // trailing comma
		}

		name := strings.ToLower(p.ident())
		if name == "" {
			return rec, p.errorf("expected tag name in entry %q", rec.Key)
		}
		p.skipSpace()
		if p.eof() || p.peek() != '=' {
			return rec, p.errorf("expected '=' after tag %q in entry %q", name, rec.Key)
		}
		p.pos++
		p.skipSpace()

		v, err := p.value()
		if err != nil {
			return rec, err
		}
		rec.Tags = append(rec.Tags, reference.Tag{Name: name, Value: v})
	}
}

// value parses piece ("#" piece)* and returns the normalized result.
func (p *parser) value() (string, error) {
	var b strings.Builder
	for {
		piece, err := p.piece()
		if err != nil {
			return "", err
		}
		b.WriteString(piece)

		p.skipSpace()
		if p.eof() || p.peek() != '#' {
			break
		}
		p.pos++
		p.skipSpace()
	}
	return norm.NFC.String(strings.Join(strings.Fields(b.String()), " ")), nil
}

func (p *parser) piece() (string, error) {
	if p.eof() {
		return "", p.errorf("unexpected end of input, expected a value")
	}

	switch c := p.peek(); {
	case c == '{':
		return p.braced()
	case c == '"':
		return p.quoted()
	case c >= '0' && c <= '9':
		start := p.pos
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
		return p.src[start:p.pos], nil
	}

	name := p.ident()
	if name == "" {
		return "", p.errorf("unexpected %q, expected a value", p.peek())
	}
	v, ok := p.macros[strings.ToLower(name)]
	if !ok {
		return "", p.errorf("undefined macro %q", name)
	}
	return v, nil
}

// braced returns the content of a {} group, nested braces kept.
func (p *parser) braced() (string, error) {
	start := p.pos
	depth := 0
	for ; !p.eof(); p.pos++ {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				p.pos++
				return p.src[start+1 : p.pos-1], nil
			}
		}
	}
	p.pos = start
	return "", p.errorf("unbalanced braces")
}

// quoted returns the content of a "" string. Quotes inside braces do not
// terminate it.
func (p *parser) quoted() (string, error) {
	start := p.pos
	depth := 0
	for p.pos++; !p.eof(); p.pos++ {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				p.pos++
				return p.src[start+1 : p.pos-1], nil
			}
		}
	}
	p.pos = start
	return "", p.errorf("unterminated string")
}

// ident reads a name: entry type, tag or macro.
func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isSpace(c byte) bool {
	return c < 0x80 && unicode.IsSpace(rune(c))
}

func isIdentByte(c byte) bool {
	if isSpace(c) {
		return false
	}
	return !strings.ContainsRune(`{}(),="#%'@`, rune(c))
}
