package mock

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

var _ docdeck.SnippetService = (*SnippetService)(nil)

// SnippetService is a mock implementation of docdeck.SnippetService.
type SnippetService struct {
	FindSnippetsFn   func(ctx context.Context, filter docdeck.SnippetFilter) ([]*docdeck.Snippet, error)
	SearchSnippetsFn func(ctx context.Context, query docdeck.SearchQuery) ([]*docdeck.Snippet, error)
}

func (s *SnippetService) FindSnippets(ctx context.Context, filter docdeck.SnippetFilter) ([]*docdeck.Snippet, error) {
	return s.FindSnippetsFn(ctx, filter)
}

func (s *SnippetService) SearchSnippets(ctx context.Context, query docdeck.SearchQuery) ([]*docdeck.Snippet, error) {
	return s.SearchSnippetsFn(ctx, query)
}
