package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/matsen/abnt/internal/reference"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectCitationFields contains the standard field list for SELECT queries.
const selectCitationFields = `key, type, text, sort_key, year`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Formatted citations in reference-list order
		CREATE TABLE IF NOT EXISTS citations (
			key TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			type TEXT NOT NULL,
			text TEXT NOT NULL,
			sort_key TEXT,
			year TEXT
		);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS citations_fts USING fts5(
			key,
			text,
			sort_key,
			year
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	citations, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	return d.RebuildFromCitations(citations)
}

// RebuildFromCitations replaces the database content with citations, keeping
// their order. Keys must be unique.
func (d *DB) RebuildFromCitations(citations []reference.Citation) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM citations"); err != nil {
		return 0, fmt.Errorf("clearing citations table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM citations_fts"); err != nil {
		return 0, fmt.Errorf("clearing citations_fts table: %w", err)
	}

	citeStmt, err := tx.Prepare(`
		INSERT INTO citations (key, position, type, text, sort_key, year)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing citations insert: %w", err)
	}
	defer citeStmt.Close()

	ftsStmt, err := tx.Prepare(`
		INSERT INTO citations_fts (key, text, sort_key, year)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, c := range citations {
		_, err := citeStmt.Exec(c.Key, i, c.Type, c.Text,
			nullableStringValue(c.SortKey), nullableStringValue(c.Year))
		if err != nil {
			return 0, fmt.Errorf("inserting citation %s: %w", c.Key, err)
		}

		if _, err := ftsStmt.Exec(c.Key, stripMarkup(c.Text), c.SortKey, c.Year); err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", c.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing citations: %w", err)
	}
	return len(citations), nil
}

var markupRemover = strings.NewReplacer(
	"<strong>", "", "</strong>", "",
	"<em>", "", "</em>", "",
)

// stripMarkup removes the inline HTML of a citation so it does not pollute
// the search index.
func stripMarkup(text string) string {
	return markupRemover.Replace(text)
}

// GetByKey retrieves a citation by its citation key.
// Returns nil, nil when the key is not cached.
func (d *DB) GetByKey(key string) (*reference.Citation, error) {
	row := d.db.QueryRow(`SELECT `+selectCitationFields+` FROM citations WHERE key = ?`, key)
	return scanCitation(row)
}

// Search performs a full-text search over citation text and returns the
// matches in reference-list order.
func (d *DB) Search(query string, limit int) ([]reference.Citation, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectCitationFields+`
		FROM citations
		WHERE key IN (SELECT key FROM citations_fts WHERE citations_fts MATCH ?)
		ORDER BY position
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanCitations(rows)
}

// ListAll returns all citations in reference-list order, optionally limited.
func (d *DB) ListAll(limit int) ([]reference.Citation, error) {
	query := `SELECT ` + selectCitationFields + ` FROM citations ORDER BY position`
	var args []any

	if limit > 0 {
		query += " LIMIT ?"
		args = []any{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing citations: %w", err)
	}
	defer rows.Close()

	return scanCitations(rows)
}

// Count returns the total number of cached citations.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM citations").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanCitation(s scanner) (*reference.Citation, error) {
	var c reference.Citation
	var sortKey, year sql.NullString

	if err := s.Scan(&c.Key, &c.Type, &c.Text, &sortKey, &year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	c.SortKey = sortKey.String
	c.Year = year.String
	return &c, nil
}

func scanCitations(rows *sql.Rows) ([]reference.Citation, error) {
	var citations []reference.Citation
	for rows.Next() {
		c, err := scanCitation(rows)
		if err != nil {
			return nil, err
		}
		if c != nil {
			citations = append(citations, *c)
		}
	}
	return citations, rows.Err()
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~.,;|") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
