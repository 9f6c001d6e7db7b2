package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/docdeck"
)

// Compile-time interface verification.
var _ docdeck.HistoryService = (*HistoryService)(nil)

// HistoryService implements docdeck.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// RecordSearch appends the query to the history.
func (s *HistoryService) RecordSearch(ctx context.Context, query docdeck.SearchQuery) error {
	if query.Text == "" {
		return docdeck.Errorf(docdeck.EINVALID, "search text required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_history (id, query, mode, searched_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), query.Text, string(query.Mode), time.Now().UTC().Format(time.RFC3339Nano))

	return err
}

// RecentSearches returns the most recent entries, newest first.
func (s *HistoryService) RecentSearches(ctx context.Context, limit int) ([]*docdeck.HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, mode, searched_at
		FROM search_history
		ORDER BY searched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docdeck.HistoryEntry
	for rows.Next() {
		var entry docdeck.HistoryEntry
		var mode, searchedAt string

		if err := rows.Scan(&entry.ID, &entry.Query, &mode, &searchedAt); err != nil {
			return nil, err
		}
		entry.Mode = docdeck.SearchMode(mode)

		entry.SearchedAt, err = time.Parse(time.RFC3339Nano, searchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse searched_at: %w", err)
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// ClearHistory removes all entries.
func (s *HistoryService) ClearHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM search_history")
	return err
}
