package docdeck

import (
	"context"
	"time"
)

// HistoryEntry records a past search so the TUI can offer recent queries.
type HistoryEntry struct {
	ID         string     `json:"id"`
	Query      string     `json:"query"`
	Mode       SearchMode `json:"mode,omitempty"`
	SearchedAt time.Time  `json:"searchedAt"`
}

// HistoryService persists search history locally, between runs.
type HistoryService interface {
	// RecordSearch appends the query to the history.
	RecordSearch(ctx context.Context, query SearchQuery) error

	// RecentSearches returns the most recent entries, newest first.
	RecentSearches(ctx context.Context, limit int) ([]*HistoryEntry, error)

	// ClearHistory removes all entries.
	ClearHistory(ctx context.Context) error
}
