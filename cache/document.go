package cache

import (
	"context"

	"github.com/mkowalczyk/docdeck"
)

// Ensure DocumentService implements docdeck.DocumentService at compile time.
var _ docdeck.DocumentService = (*DocumentService)(nil)

// indexMutationPrefixes are the operation-name prefixes invalidated by any
// mutation that changes the document set or the index.
var indexMutationPrefixes = []string{"documents", "indexedDocuments", "searchStats"}

// DocumentService caches document reads and propagates mutation side
// effects: a successful mutation invalidates the dependent prefixes, and
// an upload write-through-seeds the entry for the new document.
type DocumentService struct {
	store   *Store
	next    docdeck.DocumentService
	windows Windows
}

// NewDocumentService creates a caching decorator around next.
func NewDocumentService(store *Store, next docdeck.DocumentService, windows Windows) *DocumentService {
	return &DocumentService{store: store, next: next, windows: windows}
}

// FindDocuments retrieves documents with listing-window caching. Listings
// filtered to indexed documents live under their own operation name so
// indexing mutations can target them.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docdeck.DocumentFilter) ([]*docdeck.Document, error) {
	op := "documents"
	if filter.Indexed != nil && *filter.Indexed {
		op = "indexedDocuments"
	}
	key := docdeck.NewRequestKey(op, filter)
	return load(ctx, s.store, key, s.windows.Listing, func(ctx context.Context) ([]*docdeck.Document, error) {
		return s.next.FindDocuments(ctx, filter)
	})
}

// FindDocumentByID retrieves a document with listing-window caching.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docdeck.Document, error) {
	key := docdeck.NewRequestKey("documents/byId", id)
	return load(ctx, s.store, key, s.windows.Listing, func(ctx context.Context) (*docdeck.Document, error) {
		return s.next.FindDocumentByID(ctx, id)
	})
}

// FindFolders retrieves folders with listing-window caching.
func (s *DocumentService) FindFolders(ctx context.Context) ([]*docdeck.Folder, error) {
	key := docdeck.NewRequestKey("documents/folders", nil)
	return load(ctx, s.store, key, s.windows.Listing, func(ctx context.Context) ([]*docdeck.Folder, error) {
		return s.next.FindFolders(ctx)
	})
}

// UploadDocument passes the upload through, then invalidates listings and
// seeds the by-ID entry for the freshly created document.
func (s *DocumentService) UploadDocument(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error) {
	doc, err := s.next.UploadDocument(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidateIndexReads()
	s.store.Seed(docdeck.NewRequestKey("documents/byId", doc.ID), doc)
	return doc, nil
}

// IndexDocument passes the mutation through and invalidates dependent
// reads on success.
func (s *DocumentService) IndexDocument(ctx context.Context, id string) error {
	if err := s.next.IndexDocument(ctx, id); err != nil {
		return err
	}
	s.invalidateIndexReads()
	return nil
}

// DeindexDocument passes the mutation through and invalidates dependent
// reads on success.
func (s *DocumentService) DeindexDocument(ctx context.Context, id string) error {
	if err := s.next.DeindexDocument(ctx, id); err != nil {
		return err
	}
	s.invalidateIndexReads()
	return nil
}

// IndexDocuments passes the batch mutation through and invalidates
// dependent reads on success.
func (s *DocumentService) IndexDocuments(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
	result, err := s.next.IndexDocuments(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.invalidateIndexReads()
	return result, nil
}

func (s *DocumentService) invalidateIndexReads() {
	for _, prefix := range indexMutationPrefixes {
		s.store.Invalidate(prefix)
	}
}
