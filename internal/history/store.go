// Package history persists submitted console lines to SQLite so the host can
// offer recall across sessions. Each row records the line, the session that
// submitted it, and the diagnostic the dispatch produced (empty on success).
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded console line.
type Entry struct {
	ID         string
	SessionID  string
	Line       string
	Diagnostic string
	IssuedAt   time.Time
}

// Store manages the history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates or opens a history store at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		line TEXT NOT NULL,
		diagnostic TEXT NOT NULL DEFAULT '',
		issued_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_issued ON history(issued_at);
	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id, issued_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append records one submitted line. diagnostic is the shell's LastError
// after the dispatch, "" when the line succeeded.
func (s *Store) Append(sessionID, line, diagnostic string) error {
	_, err := s.db.Exec(
		`INSERT INTO history (id, session_id, line, diagnostic, issued_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), sessionID, line, diagnostic, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, line, diagnostic, issued_at
		 FROM history ORDER BY issued_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &e.Diagnostic, &e.IssuedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// Trim deletes the oldest entries beyond limit, keeping the newest ones.
// The host calls this after appends so the HISTLIMIT variable takes effect.
func (s *Store) Trim(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("trim limit must be positive, got %d", limit)
	}
	_, err := s.db.Exec(
		`DELETE FROM history WHERE rowid NOT IN
		 (SELECT rowid FROM history ORDER BY issued_at DESC, rowid DESC LIMIT ?)`, limit,
	)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	return nil
}
