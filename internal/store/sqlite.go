// SQLite-backed key/value store using modernc.org/sqlite. One table, one
// connection; the database file lives in the data directory.
package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteDBName = "abacus.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// sqliteKV implements KV over a single-table SQLite database.
type sqliteKV struct {
	db *sql.DB
}

// openSQLiteKV opens (or creates) the database under dir and ensures the
// schema exists.
func openSQLiteKV(dir string) (*sqliteKV, error) {
	dbPath := filepath.Join(dir, sqliteDBName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// modernc sqlite handles one writer at a time; a single connection
	// avoids table-lock errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &sqliteKV{db: db}, nil
}

func (s *sqliteKV) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, ErrStoreClosed
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *sqliteKV) Set(key, value string) error {
	if s.db == nil {
		return ErrStoreClosed
	}
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// Close closes the database. Idempotent.
func (s *sqliteKV) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
