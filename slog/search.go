// Package slog provides logging decorators for docdeck services, built on
// the standard structured logger. Each decorator logs the operation name,
// duration, and error code without changing behavior.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkowalczyk/docdeck"
)

// Ensure LoggingSearchService implements docdeck.SearchService.
var _ docdeck.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with per-operation logging.
type LoggingSearchService struct {
	next   docdeck.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next docdeck.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// logOp emits one record per finished operation. Errors log at warn with
// the code so transport failures are visible without a debug build.
func logOp(logger *slog.Logger, op string, begin time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration", time.Since(begin))
	if err != nil {
		attrs = append(attrs, "code", docdeck.ErrorCode(err), "err", err.Error())
		logger.Warn(op, attrs...)
		return
	}
	logger.Info(op, attrs...)
}

// Search logs the search with its result count.
func (s *LoggingSearchService) Search(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	begin := time.Now()
	page, err := s.next.Search(ctx, query)

	results := 0
	if page != nil {
		results = len(page.Results)
	}
	logOp(s.logger, "search", begin, err,
		"text", query.Text,
		"mode", string(query.Mode),
		"results", results,
	)
	return page, err
}

// SemanticSearch logs the search with its result count.
func (s *LoggingSearchService) SemanticSearch(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	begin := time.Now()
	page, err := s.next.SemanticSearch(ctx, query)

	results := 0
	if page != nil {
		results = len(page.Results)
	}
	logOp(s.logger, "semantic search", begin, err,
		"text", query.Text,
		"results", results,
	)
	return page, err
}

// Suggest logs at debug; keystroke-frequency calls would drown the log at
// info.
func (s *LoggingSearchService) Suggest(ctx context.Context, partial string) ([]docdeck.Suggestion, error) {
	begin := time.Now()
	suggestions, err := s.next.Suggest(ctx, partial)
	s.logger.Debug("suggest",
		"partial", partial,
		"candidates", len(suggestions),
		"duration", time.Since(begin),
	)
	return suggestions, err
}

// FindSimilar logs the lookup with its result count.
func (s *LoggingSearchService) FindSimilar(ctx context.Context, documentID string, limit int) ([]docdeck.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.FindSimilar(ctx, documentID, limit)
	logOp(s.logger, "find similar", begin, err,
		"documentId", documentID,
		"results", len(results),
	)
	return results, err
}

// Stats logs the stats fetch.
func (s *LoggingSearchService) Stats(ctx context.Context) (*docdeck.SearchStats, error) {
	begin := time.Now()
	stats, err := s.next.Stats(ctx)
	logOp(s.logger, "search stats", begin, err)
	return stats, err
}
