package store

import (
	"database/sql"
	"errors"
	"fmt"
)

const tokenKey = "token"

// SQLiteTokens implements [TokenStore] over the session table created by
// the shared migrations.
type SQLiteTokens struct {
	db *sql.DB
}

var _ TokenStore = (*SQLiteTokens)(nil)

// NewSQLiteTokens creates a token store over an open, migrated database.
func NewSQLiteTokens(db *sql.DB) *SQLiteTokens {
	return &SQLiteTokens{db: db}
}

// Token returns the stored session token, or "" when none is stored.
func (s *SQLiteTokens) Token() (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return value, nil
}

// SetToken stores the session token, replacing any previous value.
func (s *SQLiteTokens) SetToken(token string) error {
	_, err := s.db.Exec(
		"INSERT INTO session (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		tokenKey, token,
	)
	if err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

// ClearToken removes the stored session token.
func (s *SQLiteTokens) ClearToken() error {
	if _, err := s.db.Exec("DELETE FROM session WHERE key = ?", tokenKey); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
