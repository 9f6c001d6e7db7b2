package docdeck

import "context"

// SearchMode selects the ranking strategy used by the backend.
type SearchMode string

// SearchMode constants for SearchQuery.
const (
	ModeKeyword  SearchMode = "keyword"
	ModeSemantic SearchMode = "semantic"
)

// Scope restricts a search to a folder or a single document. The two
// filters are mutually exclusive: selecting one clears the other, and a
// request never carries both.
type Scope struct {
	FolderID   string `json:"folderId,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
}

// Validate returns an error if both scope filters are set.
func (s Scope) Validate() error {
	if s.FolderID != "" && s.DocumentID != "" {
		return Errorf(EINVALID, "folder and document scope are mutually exclusive")
	}
	return nil
}

// IsZero reports whether the scope carries no filter.
func (s Scope) IsZero() bool {
	return s.FolderID == "" && s.DocumentID == ""
}

// WithFolder returns a scope filtered to the folder, clearing any document
// selection.
func (s Scope) WithFolder(folderID string) Scope {
	return Scope{FolderID: folderID}
}

// WithDocument returns a scope filtered to the document, clearing any
// folder selection.
func (s Scope) WithDocument(documentID string) Scope {
	return Scope{DocumentID: documentID}
}

// SearchQuery represents a search request.
type SearchQuery struct {
	Text  string     `json:"text"`
	Mode  SearchMode `json:"mode,omitempty"`
	Scope Scope      `json:"scope,omitzero"`

	// Cursor is the opaque pagination token returned by the previous page.
	// Empty requests the first page.
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// Validate returns an error if the query contains invalid fields.
func (q SearchQuery) Validate() error {
	if q.Text == "" {
		return Errorf(EINVALID, "search text required")
	}
	return q.Scope.Validate()
}

// SearchResult represents a single search match.
type SearchResult struct {
	DocumentID string  `json:"documentId"`
	Title      string  `json:"title"`
	Excerpt    string  `json:"excerpt"`
	Score      float32 `json:"score"`
}

// SearchPage is one page of search results. NextCursor is empty on the
// last page.
type SearchPage struct {
	Results    []SearchResult `json:"results"`
	NextCursor string         `json:"nextCursor,omitempty"`
	Total      int            `json:"total,omitempty"`
}

// Suggestion is an autocomplete candidate for a partial query.
type Suggestion struct {
	Text  string  `json:"text"`
	Score float32 `json:"score,omitempty"`
}

// SearchStats reports corpus-level metrics.
type SearchStats struct {
	DocumentCount int `json:"documentCount"`
	IndexedCount  int `json:"indexedCount"`
	SnippetCount  int `json:"snippetCount"`
	FolderCount   int `json:"folderCount"`
}

// SearchService provides keyword and semantic search over the corpus.
type SearchService interface {
	// Search performs a paginated search. The query's mode selects keyword
	// or semantic ranking; the scope restricts to a folder or document.
	Search(ctx context.Context, query SearchQuery) (*SearchPage, error)

	// SemanticSearch performs vector-similarity search regardless of the
	// query's mode field.
	SemanticSearch(ctx context.Context, query SearchQuery) (*SearchPage, error)

	// Suggest returns autocomplete candidates for a partial query.
	Suggest(ctx context.Context, partial string) ([]Suggestion, error)

	// FindSimilar returns documents related to the given document.
	// Returns ENOTFOUND if the document does not exist.
	FindSimilar(ctx context.Context, documentID string, limit int) ([]SearchResult, error)

	// Stats returns corpus-level metrics.
	Stats(ctx context.Context) (*SearchStats, error)
}
