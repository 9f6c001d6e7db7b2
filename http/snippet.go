package http

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mkowalczyk/docdeck"
)

// Ensure Client implements docdeck.SnippetService at compile time.
var _ docdeck.SnippetService = (*Client)(nil)

// FindSnippets retrieves snippets matching the filter, ordered by position.
func (c *Client) FindSnippets(ctx context.Context, filter docdeck.SnippetFilter) ([]*docdeck.Snippet, error) {
	q := url.Values{}
	if filter.DocumentID != nil {
		q.Set("documentId", *filter.DocumentID)
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	var resp struct {
		Snippets []*docdeck.Snippet `json:"snippets"`
	}
	if err := c.getJSON(ctx, "/snippets", q, &resp); err != nil {
		return nil, err
	}
	return resp.Snippets, nil
}

// SearchSnippets searches at chunk granularity.
func (c *Client) SearchSnippets(ctx context.Context, query docdeck.SearchQuery) ([]*docdeck.Snippet, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	var resp struct {
		Snippets []*docdeck.Snippet `json:"snippets"`
	}
	if err := c.readJSON(ctx, "/snippets/search", newSearchRequest(query), &resp); err != nil {
		return nil, err
	}
	return resp.Snippets, nil
}
