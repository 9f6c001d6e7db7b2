package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mkowalczyk/docdeck"
)

// Compile-time interface verification.
var _ docdeck.CredentialStore = (*CredentialStore)(nil)

// defaultCredential is the row name for the single stored bearer token.
const defaultCredential = "default"

// CredentialStore implements docdeck.CredentialStore using SQLite, the
// client-side equivalent of a browser's persisted auth token.
type CredentialStore struct {
	db *DB
}

// NewCredentialStore creates a new CredentialStore.
func NewCredentialStore(db *DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Token returns the stored bearer token, or an empty string if none is
// stored.
func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `
		SELECT token FROM credentials WHERE name = ?
	`, defaultCredential).Scan(&token)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// SetToken stores the bearer token, replacing any previous one.
func (s *CredentialStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return docdeck.Errorf(docdeck.EINVALID, "token required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (name, token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`, defaultCredential, token, time.Now().UTC().Format(time.RFC3339))

	return err
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *CredentialStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM credentials WHERE name = ?", defaultCredential)
	return err
}
