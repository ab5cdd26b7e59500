// Package storage persists formatted citations as JSONL and in a SQLite
// cache with full-text search.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matsen/abnt/internal/reference"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads all citations from a JSONL file.
func ReadAll(path string) ([]reference.Citation, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Missing file reads as empty
		}
		return nil, fmt.Errorf("opening citations file: %w", err)
	}
	defer f.Close()

	var citations []reference.Citation
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var c reference.Citation
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		citations = append(citations, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading citations file: %w", err)
	}

	return citations, nil
}

// Encode writes one JSON object per line to w.
func Encode(w io.Writer, citations []reference.Citation) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, c := range citations {
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding citation %d: %w", i, err)
		}
	}
	return nil
}

// WriteAll writes all citations to a JSONL file, replacing existing content.
func WriteAll(path string, citations []reference.Citation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating citations file: %w", err)
	}

	if err := Encode(f, citations); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FindByKey searches for a citation by its citation key.
func FindByKey(citations []reference.Citation, key string) (int, bool) {
	for i, c := range citations {
		if c.Key == key {
			return i, true
		}
	}
	return -1, false
}
