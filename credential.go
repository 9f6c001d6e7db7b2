package docdeck

import "context"

// CredentialStore persists the bearer credential between runs. The
// transport attaches the stored token to every request and clears it when
// the backend answers 401.
type CredentialStore interface {
	// Token returns the stored bearer token, or an empty string if none
	// is stored.
	Token(ctx context.Context) (string, error)

	// SetToken stores the bearer token, replacing any previous one.
	SetToken(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
