package cache

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

// Ensure RAGService implements docdeck.RAGService at compile time.
var _ docdeck.RAGService = (*RAGService)(nil)

// RAGService caches only the capability discovery read; question
// answering is generated per call and passes through uncached.
type RAGService struct {
	store   *Store
	next    docdeck.RAGService
	windows Windows
}

// NewRAGService creates a caching decorator around next.
func NewRAGService(store *Store, next docdeck.RAGService, windows Windows) *RAGService {
	return &RAGService{store: store, next: next, windows: windows}
}

func (s *RAGService) Ask(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	return s.next.Ask(ctx, in)
}

func (s *RAGService) MultiStepAsk(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	return s.next.MultiStepAsk(ctx, in)
}

func (s *RAGService) Converse(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error) {
	return s.next.Converse(ctx, in)
}

func (s *RAGService) Summarize(ctx context.Context, documentID string) (*docdeck.Answer, error) {
	return s.next.Summarize(ctx, documentID)
}

func (s *RAGService) Compare(ctx context.Context, in docdeck.CompareInput) (*docdeck.Answer, error) {
	return s.next.Compare(ctx, in)
}

// Config returns backend capabilities, cached under the long window.
func (s *RAGService) Config(ctx context.Context) (*docdeck.RAGConfig, error) {
	key := docdeck.NewRequestKey("ragConfig", nil)
	return load(ctx, s.store, key, s.windows.Long, func(ctx context.Context) (*docdeck.RAGConfig, error) {
		return s.next.Config(ctx)
	})
}
