package settings

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const (
	kindArray  = "array"
	kindString = "string"
	kindBool   = "bool"
)

// SQLiteStore persists the settings table in a single sqlite file. Reads
// degrade to zero values on missing keys or backend failure; the last
// read failure stays available through Err, the store's own error
// channel, so the core never has to handle it.
type SQLiteStore struct {
	db        *sql.DB
	listeners map[string][]func()
	lastErr   error
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("settings: nil db")
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			kind  TEXT NOT NULL,
			value TEXT NOT NULL
		)`); err != nil {
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &SQLiteStore{db: db, listeners: make(map[string][]func())}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Err returns the last read failure, if any.
func (s *SQLiteStore) Err() error {
	return s.lastErr
}

func (s *SQLiteStore) StringArray(key string) []string {
	raw, ok := s.read(key, kindArray)
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.lastErr = fmt.Errorf("settings: decode array %q: %w", key, err)
		return nil
	}
	return out
}

func (s *SQLiteStore) SetStringArray(key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("settings: encode array %q: %w", key, err)
	}
	return s.write(key, kindArray, string(raw))
}

func (s *SQLiteStore) String(key string) string {
	raw, _ := s.read(key, kindString)
	return raw
}

func (s *SQLiteStore) SetString(key, value string) error {
	return s.write(key, kindString, value)
}

func (s *SQLiteStore) Bool(key string) bool {
	raw, ok := s.read(key, kindBool)
	return ok && raw == "1"
}

func (s *SQLiteStore) SetBool(key string, value bool) error {
	raw := "0"
	if value {
		raw = "1"
	}
	return s.write(key, kindBool, raw)
}

func (s *SQLiteStore) OnChange(key string, fn func()) {
	s.listeners[key] = append(s.listeners[key], fn)
}

func (s *SQLiteStore) read(key, kind string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ? AND kind = ?`, key, kind).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.lastErr = fmt.Errorf("settings: read %q: %w", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) write(key, kind, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, kind, value) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET kind = excluded.kind, value = excluded.value`,
		key, kind, value,
	)
	if err != nil {
		return fmt.Errorf("settings: write %q: %w", key, err)
	}
	for _, fn := range s.listeners[key] {
		fn()
	}
	return nil
}
