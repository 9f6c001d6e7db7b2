package main_test

import (
	"bytes"
	"context"

	"github.com/mkowalczyk/docdeck"
	main "github.com/mkowalczyk/docdeck/cmd/docdeck"
	"github.com/mkowalczyk/docdeck/mock"
)

// testDeps returns Dependencies with buffered output and permissive mocks
// for the services every command touches. Tests override the services they
// exercise.
func testDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		History: &mock.HistoryService{
			RecordSearchFn:   func(ctx context.Context, query docdeck.SearchQuery) error { return nil },
			RecentSearchesFn: func(ctx context.Context, limit int) ([]*docdeck.HistoryEntry, error) { return nil, nil },
			ClearHistoryFn:   func(ctx context.Context) error { return nil },
		},
		Credentials: &mock.CredentialStore{},
	}
	return deps, stdout, stderr
}
