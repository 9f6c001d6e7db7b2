package http

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mkowalczyk/docdeck"
)

// Ensure Client implements docdeck.SearchService at compile time.
var _ docdeck.SearchService = (*Client)(nil)

// searchRequest is the wire shape for the search endpoints. The scope is
// flattened: at most one of folderId/documentId is ever set.
type searchRequest struct {
	Text       string `json:"text"`
	Mode       string `json:"mode,omitempty"`
	FolderID   string `json:"folderId,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Cursor     string `json:"cursor,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

func newSearchRequest(q docdeck.SearchQuery) searchRequest {
	return searchRequest{
		Text:       q.Text,
		Mode:       string(q.Mode),
		FolderID:   q.Scope.FolderID,
		DocumentID: q.Scope.DocumentID,
		Cursor:     q.Cursor,
		Limit:      q.Limit,
	}
}

// Search performs a paginated keyword or semantic search.
func (c *Client) Search(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	var page docdeck.SearchPage
	if err := c.readJSON(ctx, "/search", newSearchRequest(query), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SemanticSearch performs vector-similarity search.
func (c *Client) SemanticSearch(ctx context.Context, query docdeck.SearchQuery) (*docdeck.SearchPage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	var page docdeck.SearchPage
	if err := c.readJSON(ctx, "/search/semantic", newSearchRequest(query), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Suggest returns autocomplete candidates for a partial query.
func (c *Client) Suggest(ctx context.Context, partial string) ([]docdeck.Suggestion, error) {
	if partial == "" {
		return nil, docdeck.Errorf(docdeck.EINVALID, "suggestion prefix required")
	}
	var resp struct {
		Suggestions []docdeck.Suggestion `json:"suggestions"`
	}
	q := url.Values{"q": {partial}}
	if err := c.getJSON(ctx, "/search/suggestions", q, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// FindSimilar returns documents related to the given document.
func (c *Client) FindSimilar(ctx context.Context, documentID string, limit int) ([]docdeck.SearchResult, error) {
	if documentID == "" {
		return nil, docdeck.Errorf(docdeck.EINVALID, "document ID required")
	}
	var resp struct {
		Results []docdeck.SearchResult `json:"results"`
	}
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if err := c.getJSON(ctx, "/search/similar/"+url.PathEscape(documentID), q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Stats returns corpus-level metrics.
func (c *Client) Stats(ctx context.Context) (*docdeck.SearchStats, error) {
	var stats docdeck.SearchStats
	if err := c.getJSON(ctx, "/search/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
