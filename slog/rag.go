package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkowalczyk/docdeck"
)

// Ensure LoggingRAGService implements docdeck.RAGService.
var _ docdeck.RAGService = (*LoggingRAGService)(nil)

// LoggingRAGService wraps a RAGService with per-operation logging. Question
// text is never logged, only lengths and source counts.
type LoggingRAGService struct {
	next   docdeck.RAGService
	logger *slog.Logger
}

// NewLoggingRAGService creates a new LoggingRAGService.
func NewLoggingRAGService(next docdeck.RAGService, logger *slog.Logger) *LoggingRAGService {
	return &LoggingRAGService{next: next, logger: logger}
}

func sourceCount(answer *docdeck.Answer) int {
	if answer == nil {
		return 0
	}
	return len(answer.Sources)
}

// Ask logs the question length and cited source count.
func (s *LoggingRAGService) Ask(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	begin := time.Now()
	answer, err := s.next.Ask(ctx, in)
	logOp(s.logger, "ask", begin, err,
		"questionLen", len(in.Question),
		"sources", sourceCount(answer),
	)
	return answer, err
}

// MultiStepAsk logs the question length and cited source count.
func (s *LoggingRAGService) MultiStepAsk(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
	begin := time.Now()
	answer, err := s.next.MultiStepAsk(ctx, in)
	logOp(s.logger, "multi-step ask", begin, err,
		"questionLen", len(in.Question),
		"sources", sourceCount(answer),
	)
	return answer, err
}

// Converse logs the session and history depth.
func (s *LoggingRAGService) Converse(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error) {
	begin := time.Now()
	answer, err := s.next.Converse(ctx, in)
	logOp(s.logger, "converse", begin, err,
		"sessionId", in.SessionID,
		"history", len(in.History),
		"sources", sourceCount(answer),
	)
	return answer, err
}

// Summarize logs the document.
func (s *LoggingRAGService) Summarize(ctx context.Context, documentID string) (*docdeck.Answer, error) {
	begin := time.Now()
	answer, err := s.next.Summarize(ctx, documentID)
	logOp(s.logger, "summarize", begin, err, "documentId", documentID)
	return answer, err
}

// Compare logs the document set size.
func (s *LoggingRAGService) Compare(ctx context.Context, in docdeck.CompareInput) (*docdeck.Answer, error) {
	begin := time.Now()
	answer, err := s.next.Compare(ctx, in)
	logOp(s.logger, "compare", begin, err, "documents", len(in.DocumentIDs))
	return answer, err
}

// Config logs the capability fetch.
func (s *LoggingRAGService) Config(ctx context.Context) (*docdeck.RAGConfig, error) {
	begin := time.Now()
	cfg, err := s.next.Config(ctx)
	logOp(s.logger, "rag config", begin, err)
	return cfg, err
}
