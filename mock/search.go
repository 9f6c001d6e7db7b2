package mock

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

var _ docdeck.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docdeck.SearchService.
type SearchService struct {
	SearchFn         func(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error)
	SemanticSearchFn func(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error)
	SuggestFn        func(ctx context.Context, partial string) ([]docdeck.Suggestion, error)
	FindSimilarFn    func(ctx context.Context, documentID string, limit int) ([]docdeck.SearchResult, error)
	StatsFn          func(ctx context.Context) (*docdeck.SearchStats, error)
}

func (s *SearchService) Search(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	return s.SearchFn(ctx, query)
}

func (s *SearchService) SemanticSearch(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	return s.SemanticSearchFn(ctx, query)
}

func (s *SearchService) Suggest(ctx context.Context, partial string) ([]docdeck.Suggestion, error) {
	return s.SuggestFn(ctx, partial)
}

func (s *SearchService) FindSimilar(ctx context.Context, documentID string, limit int) ([]docdeck.SearchResult, error) {
	return s.FindSimilarFn(ctx, documentID, limit)
}

func (s *SearchService) Stats(ctx context.Context) (*docdeck.SearchStats, error) {
	return s.StatsFn(ctx)
}
