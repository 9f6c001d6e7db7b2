package docdeck

import (
	"context"
	"io"
	"time"
)

// Document represents a document registered with the backend.
type Document struct {
	ID          string            `json:"id"`
	FolderID    string            `json:"folderId,omitempty"`
	Title       string            `json:"title"`
	FileName    string            `json:"fileName"`
	ContentType string            `json:"contentType,omitempty"`
	SizeBytes   int64             `json:"sizeBytes,omitempty"`
	Indexed     bool              `json:"indexed"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Folder represents a named grouping of documents on the backend.
type Folder struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DocumentCount int    `json:"documentCount"`
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	FolderID *string `json:"folderId"`
	Indexed  *bool   `json:"indexed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// UploadInput describes a document upload. The file is sent as a multipart
// form with optional folder placement and JSON-encoded metadata.
type UploadInput struct {
	FileName string            `json:"fileName"`
	FolderID string            `json:"folderId,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`

	// Body is consumed exactly once during upload.
	Body io.Reader `json:"-"`
}

// Validate returns an error if the upload input contains invalid fields.
func (in *UploadInput) Validate() error {
	if in.FileName == "" {
		return Errorf(EINVALID, "upload file name required")
	}
	if in.Body == nil {
		return Errorf(EINVALID, "upload body required")
	}
	return nil
}

// BatchIndexResult reports the outcome of a bulk indexing request.
type BatchIndexResult struct {
	Indexed []string `json:"indexed"`
	Failed  []string `json:"failed,omitempty"`
}

// DocumentService represents a service for listing and managing documents.
type DocumentService interface {
	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindFolders retrieves all folders.
	FindFolders(ctx context.Context) ([]*Folder, error)

	// UploadDocument uploads a new document and returns its backend record.
	UploadDocument(ctx context.Context, in UploadInput) (*Document, error)

	// IndexDocument makes a document available for search and RAG.
	// Returns ENOTFOUND if the document does not exist.
	IndexDocument(ctx context.Context, id string) error

	// DeindexDocument removes a document from the search index.
	// Returns ENOTFOUND if the document does not exist.
	DeindexDocument(ctx context.Context, id string) error

	// IndexDocuments indexes multiple documents in a single request.
	IndexDocuments(ctx context.Context, ids []string) (*BatchIndexResult, error)
}
