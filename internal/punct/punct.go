// Package punct removes doubled punctuation from formatted citations.
//
// Citations are assembled from fields that often carry their own final
// punctuation ("SILVA, J." followed by ". "). The Writer filters the stream so
// that only one mark survives where two meet.
package punct

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Writer filters punctuation written through it. When two marks among
// ". ; ? ! … : ," are adjacent, the second one is dropped, except for the
// sequences "??", "?!", "!?", "!!", ".." and ".;", which are kept as
// written. Everything else passes through unchanged.
//
// The underlying writer is flushed after every newline when it has a
// Flush method.
type Writer struct {
	w       io.Writer
	last    rune // previous rune when it was punctuation, 0 otherwise
	partial []byte
	buf     bytes.Buffer
}

// NewWriter returns a Writer filtering into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func isPunct(r rune) bool {
	switch r {
	case '.', ';', '?', '!', '…', ':', ',':
		return true
	}
	return false
}

// keepPair reports whether the second of two adjacent marks is written.
func keepPair(prev, next rune) bool {
	switch prev {
	case '?', '!':
		return next == '?' || next == '!'
	case '.':
		return next == '.' || next == ';'
	}
	return false
}

// Write filters p. A multi-byte character split across calls is held until
// it is complete.
func (pw *Writer) Write(p []byte) (int, error) {
	data := p
	if len(pw.partial) > 0 {
		data = append(pw.partial, p...)
		pw.partial = nil
	}

	for len(data) > 0 {
		if !utf8.FullRune(data) {
			pw.partial = append([]byte(nil), data...)
			break
		}
		r, size := utf8.DecodeRune(data)
		chunk := data[:size]
		data = data[size:]

		punct := isPunct(r)
		if !punct || pw.last == 0 || keepPair(pw.last, r) {
			pw.buf.Write(chunk)
		}
		pw.last = 0
		if punct {
			pw.last = r
		}

		if r == '\n' {
			if err := pw.Flush(); err != nil {
				return 0, err
			}
		}
	}

	if err := pw.writeBuffered(); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (pw *Writer) writeBuffered() error {
	if pw.buf.Len() == 0 {
		return nil
	}
	_, err := pw.w.Write(pw.buf.Bytes())
	pw.buf.Reset()
	return err
}

// Flush writes pending output and flushes the underlying writer if it
// supports flushing. A trailing incomplete character is written as is.
func (pw *Writer) Flush() error {
	pw.buf.Write(pw.partial)
	pw.partial = nil
	if err := pw.writeBuffered(); err != nil {
		return err
	}
	if f, ok := pw.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Clean filters a single string.
func Clean(s string) string {
	var b bytes.Buffer
	w := NewWriter(&b)
	// Writes to a bytes.Buffer cannot fail.
	_, _ = io.WriteString(w, s)
	_ = w.Flush()
	return b.String()
}
