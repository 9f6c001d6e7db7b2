package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkowalczyk/docdeck"
)

// Ensure LoggingDocumentService implements docdeck.DocumentService.
var _ docdeck.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with per-operation logging.
type LoggingDocumentService struct {
	next   docdeck.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next docdeck.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// FindDocuments logs the listing with its result count.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter docdeck.DocumentFilter) ([]*docdeck.Document, error) {
	begin := time.Now()
	docs, err := s.next.FindDocuments(ctx, filter)
	logOp(s.logger, "find documents", begin, err, "results", len(docs))
	return docs, err
}

// FindDocumentByID logs the lookup.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (*docdeck.Document, error) {
	begin := time.Now()
	doc, err := s.next.FindDocumentByID(ctx, id)
	logOp(s.logger, "find document", begin, err, "documentId", id)
	return doc, err
}

// FindFolders logs the listing with its result count.
func (s *LoggingDocumentService) FindFolders(ctx context.Context) ([]*docdeck.Folder, error) {
	begin := time.Now()
	folders, err := s.next.FindFolders(ctx)
	logOp(s.logger, "find folders", begin, err, "results", len(folders))
	return folders, err
}

// UploadDocument logs the upload with the created document ID.
func (s *LoggingDocumentService) UploadDocument(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error) {
	begin := time.Now()
	doc, err := s.next.UploadDocument(ctx, in)

	id := ""
	if doc != nil {
		id = doc.ID
	}
	logOp(s.logger, "upload document", begin, err,
		"fileName", in.FileName,
		"documentId", id,
	)
	return doc, err
}

// IndexDocument logs the mutation.
func (s *LoggingDocumentService) IndexDocument(ctx context.Context, id string) error {
	begin := time.Now()
	err := s.next.IndexDocument(ctx, id)
	logOp(s.logger, "index document", begin, err, "documentId", id)
	return err
}

// DeindexDocument logs the mutation.
func (s *LoggingDocumentService) DeindexDocument(ctx context.Context, id string) error {
	begin := time.Now()
	err := s.next.DeindexDocument(ctx, id)
	logOp(s.logger, "deindex document", begin, err, "documentId", id)
	return err
}

// IndexDocuments logs the batch mutation with indexed and failed counts.
func (s *LoggingDocumentService) IndexDocuments(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
	begin := time.Now()
	result, err := s.next.IndexDocuments(ctx, ids)

	indexed, failed := 0, 0
	if result != nil {
		indexed, failed = len(result.Indexed), len(result.Failed)
	}
	logOp(s.logger, "batch index", begin, err,
		"requested", len(ids),
		"indexed", indexed,
		"failed", failed,
	)
	return result, err
}
