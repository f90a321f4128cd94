// Package library tracks recently opened notebooks in SQLite.
package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one remembered notebook.
type Entry struct {
	Fingerprint string
	Title       string
	Path        string
	OpenedAt    time.Time
}

// Store handles SQLite operations for the notebook library.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the library database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create library dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS notebooks (
    fingerprint TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    path TEXT NOT NULL,
    opened_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notebooks_opened ON notebooks(opened_at DESC);
`
	_, err := s.db.Exec(schema)
	return err
}

// Record remembers that a notebook was opened now. Reopening the same
// content (by fingerprint) updates its path and timestamp instead of
// adding a duplicate.
func (s *Store) Record(fingerprint, title, path string) error {
	if fingerprint == "" {
		return fmt.Errorf("record notebook: empty fingerprint")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
INSERT INTO notebooks (fingerprint, title, path, opened_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(fingerprint) DO UPDATE SET
    title = excluded.title,
    path = excluded.path,
    opened_at = excluded.opened_at`,
		fingerprint, title, path, now)
	if err != nil {
		return fmt.Errorf("record notebook: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently opened first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
SELECT fingerprint, title, path, opened_at
FROM notebooks
ORDER BY opened_at DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var openedAt string
		if err := rows.Scan(&e.Fingerprint, &e.Title, &e.Path, &openedAt); err != nil {
			return nil, fmt.Errorf("scan notebook: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, openedAt); err == nil {
			e.OpenedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Forget removes an entry by fingerprint. Unknown fingerprints are a no-op.
func (s *Store) Forget(fingerprint string) error {
	_, err := s.db.Exec(`DELETE FROM notebooks WHERE fingerprint = ?`, fingerprint)
	if err != nil {
		return fmt.Errorf("forget notebook: %w", err)
	}
	return nil
}
