package mock

import (
	"context"
	"sync"

	"github.com/mkowalczyk/docdeck"
)

var _ docdeck.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is an in-memory mock implementation of
// docdeck.CredentialStore. The zero value is usable; Fn fields override
// the in-memory behavior when set.
type CredentialStore struct {
	TokenFn    func(ctx context.Context) (string, error)
	SetTokenFn func(ctx context.Context, token string) error
	ClearFn    func(ctx context.Context) error

	mu    sync.Mutex
	token string
}

func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	if s.TokenFn != nil {
		return s.TokenFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *CredentialStore) SetToken(ctx context.Context, token string) error {
	if s.SetTokenFn != nil {
		return s.SetTokenFn(ctx, token)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *CredentialStore) Clear(ctx context.Context) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
