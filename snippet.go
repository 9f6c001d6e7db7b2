package docdeck

import "context"

// Snippet represents a bounded excerpt of a document's text, indexed by
// position, used for preview and as RAG context.
type Snippet struct {
	ID         string  `json:"id"`
	DocumentID string  `json:"documentId"`
	Content    string  `json:"content"`
	Position   int     `json:"position"`
	StartLine  int     `json:"startLine,omitempty"`
	EndLine    int     `json:"endLine,omitempty"`
	Score      float32 `json:"score,omitempty"`
}

// SnippetFilter represents a filter for FindSnippets.
type SnippetFilter struct {
	DocumentID *string `json:"documentId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SnippetService provides chunk-level retrieval and search.
type SnippetService interface {
	// FindSnippets retrieves snippets matching the filter, ordered by
	// position within their document.
	FindSnippets(ctx context.Context, filter SnippetFilter) ([]*Snippet, error)

	// SearchSnippets searches at chunk granularity.
	SearchSnippets(ctx context.Context, query SearchQuery) ([]*Snippet, error)
}
