package cache

import (
	"context"
	"time"

	"github.com/mkowalczyk/docdeck"
	"golang.org/x/time/rate"
)

// Ensure SearchService implements docdeck.SearchService at compile time.
var _ docdeck.SearchService = (*SearchService)(nil)

// load runs a typed fetch through the store's blocking path.
func load[T any](ctx context.Context, s *Store, key docdeck.RequestKey, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.Load(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, _ := v.(T)
	return out, nil
}

// SearchService caches search reads under the configured staleness
// windows and throttles autocomplete calls.
type SearchService struct {
	store   *Store
	next    docdeck.SearchService
	windows Windows

	// suggestLimiter keeps keystroke-driven autocomplete from hammering
	// the backend.
	suggestLimiter *rate.Limiter
}

// NewSearchService creates a caching decorator around next. suggestRPS
// bounds autocomplete calls per second; zero disables throttling.
func NewSearchService(store *Store, next docdeck.SearchService, windows Windows, suggestRPS float64) *SearchService {
	s := &SearchService{
		store:   store,
		next:    next,
		windows: windows,
	}
	if suggestRPS > 0 {
		s.suggestLimiter = rate.NewLimiter(rate.Limit(suggestRPS), 1)
	}
	return s
}

// Search performs a paginated search, serving repeats from cache within
// the listing window.
func (s *SearchService) Search(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	key := docdeck.NewRequestKey("search", query)
	return load(ctx, s.store, key, s.windows.Listing, func(ctx context.Context) (*docdeck.SearchPage, error) {
		return s.next.Search(ctx, query)
	})
}

// SemanticSearch performs vector-similarity search with listing-window
// caching.
func (s *SearchService) SemanticSearch(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	key := docdeck.NewRequestKey("semanticSearch", query)
	return load(ctx, s.store, key, s.windows.Listing, func(ctx context.Context) (*docdeck.SearchPage, error) {
		return s.next.SemanticSearch(ctx, query)
	})
}

// Suggest returns autocomplete candidates, cached under the short window
// and rate limited.
func (s *SearchService) Suggest(ctx context.Context, partial string) ([]docdeck.Suggestion, error) {
	key := docdeck.NewRequestKey("suggest", partial)
	return load(ctx, s.store, key, s.windows.Short, func(ctx context.Context) ([]docdeck.Suggestion, error) {
		if s.suggestLimiter != nil {
			if err := s.suggestLimiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		return s.next.Suggest(ctx, partial)
	})
}

// FindSimilar returns related documents with listing-window caching.
func (s *SearchService) FindSimilar(ctx context.Context, documentID string, limit int) ([]docdeck.SearchResult, error) {
	key := docdeck.NewRequestKey("similarDocuments", struct {
		DocumentID string `json:"documentId"`
		Limit      int    `json:"limit"`
	}{documentID, limit})
	return load(ctx, s.store, key, s.windows.Listing, func(ctx context.Context) ([]docdeck.SearchResult, error) {
		return s.next.FindSimilar(ctx, documentID, limit)
	})
}

// Stats returns corpus metrics. The entry lives under the "searchStats"
// operation so indexing mutations invalidate it.
func (s *SearchService) Stats(ctx context.Context) (*docdeck.SearchStats, error) {
	key := docdeck.NewRequestKey("searchStats", nil)
	return load(ctx, s.store, key, s.windows.Listing, func(ctx context.Context) (*docdeck.SearchStats, error) {
		return s.next.Stats(ctx)
	})
}
