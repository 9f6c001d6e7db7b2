package mock

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

var _ docdeck.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docdeck.DocumentService.
type DocumentService struct {
	FindDocumentsFn    func(ctx context.Context, filter docdeck.DocumentFilter) ([]*docdeck.Document, error)
	FindDocumentByIDFn func(ctx context.Context, id string) (*docdeck.Document, error)
	FindFoldersFn      func(ctx context.Context) ([]*docdeck.Folder, error)
	UploadDocumentFn   func(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error)
	IndexDocumentFn    func(ctx context.Context, id string) error
	DeindexDocumentFn  func(ctx context.Context, id string) error
	IndexDocumentsFn   func(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter docdeck.DocumentFilter) ([]*docdeck.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docdeck.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindFolders(ctx context.Context) ([]*docdeck.Folder, error) {
	return s.FindFoldersFn(ctx)
}

func (s *DocumentService) UploadDocument(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error) {
	return s.UploadDocumentFn(ctx, in)
}

func (s *DocumentService) IndexDocument(ctx context.Context, id string) error {
	return s.IndexDocumentFn(ctx, id)
}

func (s *DocumentService) DeindexDocument(ctx context.Context, id string) error {
	return s.DeindexDocumentFn(ctx, id)
}

func (s *DocumentService) IndexDocuments(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
	return s.IndexDocumentsFn(ctx, ids)
}
