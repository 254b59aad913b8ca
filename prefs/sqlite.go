package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

const (
	kindBool   = "bool"
	kindString = "string"
)

// SQLite keeps values in a single prefs table. Each row records the value's
// kind so booleans come back as booleans.
type SQLite struct {
	db *sqlx.DB
	mu sync.RWMutex
}

type prefRow struct {
	Kind  string `db:"kind"`
	Value string `db:"value"`
}

// NewSQLite opens or creates the database at dbPath.
func NewSQLite(dbPath string) (*SQLite, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	// single writer
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Get returns the value for key or ErrNotFound.
func (s *SQLite) Get(key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var row prefRow
	err := s.db.Get(&row, "SELECT kind, value FROM prefs WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	if row.Kind == kindBool {
		b, err := strconv.ParseBool(row.Value)
		if err != nil {
			return nil, fmt.Errorf("bad boolean for key %q: %w", key, err)
		}
		return b, nil
	}
	return row.Value, nil
}

// Set stores a bool or string value, replacing any previous one.
func (s *SQLite) Set(key string, value any) error {
	var kind, text string
	switch v := value.(type) {
	case bool:
		kind, text = kindBool, strconv.FormatBool(v)
	case string:
		kind, text = kindString, v
	default:
		return checkValue(value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO prefs (key, kind, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET kind = excluded.kind, value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.Exec(query, key, kind, text, now); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
