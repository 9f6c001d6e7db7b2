package http

import (
	"context"
	"net/http"

	"github.com/mkowalczyk/docdeck"
)

// Ensure Client implements docdeck.RAGService at compile time.
var _ docdeck.RAGService = (*Client)(nil)

// askRequest is the wire shape for the single-question endpoints. The
// backend takes the question under the "question" field; this is the one
// canonical schema for all RAG operations.
type askRequest struct {
	Question   string `json:"question"`
	FolderID   string `json:"folderId,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	TopK       int    `json:"topK,omitempty"`
}

func newAskRequest(in docdeck.AskInput) askRequest {
	return askRequest{
		Question:   in.Question,
		FolderID:   in.Scope.FolderID,
		DocumentID: in.Scope.DocumentID,
		TopK:       in.TopK,
	}
}

// Ask answers a single question. Generation is not idempotent in cost, so
// RAG calls are never retried.
func (c *Client) Ask(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var answer docdeck.Answer
	if err := c.writeJSON(ctx, http.MethodPost, "/rag/query", newAskRequest(in), &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// MultiStepAsk decomposes a complex question into retrieval steps.
func (c *Client) MultiStepAsk(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var answer docdeck.Answer
	if err := c.writeJSON(ctx, http.MethodPost, "/rag/multi-step", newAskRequest(in), &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// Converse answers a question in the context of prior turns. Pending
// placeholder messages are excluded from the history sent to the backend.
func (c *Client) Converse(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	history := make([]docdeck.Message, 0, len(in.History))
	for _, msg := range in.History {
		if msg.Pending {
			continue
		}
		history = append(history, msg)
	}

	body := struct {
		SessionID  string            `json:"sessionId"`
		Question   string            `json:"question"`
		History    []docdeck.Message `json:"history,omitempty"`
		FolderID   string            `json:"folderId,omitempty"`
		DocumentID string            `json:"documentId,omitempty"`
	}{
		SessionID:  in.SessionID,
		Question:   in.Question,
		History:    history,
		FolderID:   in.Scope.FolderID,
		DocumentID: in.Scope.DocumentID,
	}

	var answer docdeck.Answer
	if err := c.writeJSON(ctx, http.MethodPost, "/rag/conversation", body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// Summarize produces a summary of a document.
func (c *Client) Summarize(ctx context.Context, documentID string) (*docdeck.Answer, error) {
	if documentID == "" {
		return nil, docdeck.Errorf(docdeck.EINVALID, "document ID required")
	}
	body := struct {
		DocumentID string `json:"documentId"`
	}{DocumentID: documentID}

	var answer docdeck.Answer
	if err := c.writeJSON(ctx, http.MethodPost, "/rag/summarize", body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// Compare contrasts two or more documents.
func (c *Client) Compare(ctx context.Context, in docdeck.CompareInput) (*docdeck.Answer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var answer docdeck.Answer
	if err := c.writeJSON(ctx, http.MethodPost, "/rag/compare", in, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// Config returns backend capability and limit discovery.
func (c *Client) Config(ctx context.Context) (*docdeck.RAGConfig, error) {
	var cfg docdeck.RAGConfig
	if err := c.getJSON(ctx, "/rag/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
