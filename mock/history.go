package mock

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

var _ docdeck.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of docdeck.HistoryService.
type HistoryService struct {
	RecordSearchFn   func(ctx context.Context, query docdeck.SearchQuery) error
	RecentSearchesFn func(ctx context.Context, limit int) ([]*docdeck.HistoryEntry, error)
	ClearHistoryFn   func(ctx context.Context) error
}

func (s *HistoryService) RecordSearch(ctx context.Context, query docdeck.SearchQuery) error {
	return s.RecordSearchFn(ctx, query)
}

func (s *HistoryService) RecentSearches(ctx context.Context, limit int) ([]*docdeck.HistoryEntry, error) {
	return s.RecentSearchesFn(ctx, limit)
}

func (s *HistoryService) ClearHistory(ctx context.Context) error {
	return s.ClearHistoryFn(ctx)
}
