package mock

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

var _ docdeck.RAGService = (*RAGService)(nil)

// RAGService is a mock implementation of docdeck.RAGService.
type RAGService struct {
	AskFn          func(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error)
	MultiStepAskFn func(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error)
	ConverseFn     func(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error)
	SummarizeFn    func(ctx context.Context, documentID string) (*docdeck.Answer, error)
	CompareFn      func(ctx context.Context, in docdeck.CompareInput) (*docdeck.Answer, error)
	ConfigFn       func(ctx context.Context) (*docdeck.RAGConfig, error)
}

func (s *RAGService) Ask(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	return s.AskFn(ctx, in)
}

func (s *RAGService) MultiStepAsk(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	return s.MultiStepAskFn(ctx, in)
}

func (s *RAGService) Converse(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error) {
	return s.ConverseFn(ctx, in)
}

func (s *RAGService) Summarize(ctx context.Context, documentID string) (*docdeck.Answer, error) {
	return s.SummarizeFn(ctx, documentID)
}

func (s *RAGService) Compare(ctx context.Context, in docdeck.CompareInput) (*docdeck.Answer, error) {
	return s.CompareFn(ctx, in)
}

func (s *RAGService) Config(ctx context.Context) (*docdeck.RAGConfig, error) {
	return s.ConfigFn(ctx)
}
