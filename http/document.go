package http

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mkowalczyk/docdeck"
)

// Ensure Client implements docdeck.DocumentService at compile time.
var _ docdeck.DocumentService = (*Client)(nil)

// FindDocuments retrieves documents matching the filter.
func (c *Client) FindDocuments(ctx context.Context, filter docdeck.DocumentFilter) ([]*docdeck.Document, error) {
	q := url.Values{}
	if filter.FolderID != nil {
		q.Set("folderId", *filter.FolderID)
	}
	if filter.Indexed != nil {
		q.Set("indexed", strconv.FormatBool(*filter.Indexed))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	var resp struct {
		Documents []*docdeck.Document `json:"documents"`
	}
	if err := c.getJSON(ctx, "/documents", q, &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// FindDocumentByID retrieves a document by ID.
func (c *Client) FindDocumentByID(ctx context.Context, id string) (*docdeck.Document, error) {
	if id == "" {
		return nil, docdeck.Errorf(docdeck.EINVALID, "document ID required")
	}
	var doc docdeck.Document
	if err := c.getJSON(ctx, "/documents/"+url.PathEscape(id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindFolders retrieves all folders.
func (c *Client) FindFolders(ctx context.Context) ([]*docdeck.Folder, error) {
	var resp struct {
		Folders []*docdeck.Folder `json:"folders"`
	}
	if err := c.getJSON(ctx, "/documents/folders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

// UploadDocument uploads a file as a multipart form with the fields
// "file", optional "folderId", and optional JSON-encoded "metadata".
// Uploads are mutations and are never retried.
func (c *Client) UploadDocument(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// The form is buffered through a pipe so large files are not held in
	// memory twice.
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		err := writeUploadForm(form, in)
		if cerr := form.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	var doc docdeck.Document
	if err := c.do(ctx, http.MethodPost, "/documents", nil, pr, form.FormDataContentType(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func writeUploadForm(form *multipart.Writer, in docdeck.UploadInput) error {
	if in.FolderID != "" {
		if err := form.WriteField("folderId", in.FolderID); err != nil {
			return err
		}
	}
	if len(in.Metadata) > 0 {
		meta, err := json.Marshal(in.Metadata)
		if err != nil {
			return err
		}
		if err := form.WriteField("metadata", string(meta)); err != nil {
			return err
		}
	}
	part, err := form.CreateFormFile("file", in.FileName)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, in.Body)
	return err
}

// IndexDocument makes a document available for search and RAG.
func (c *Client) IndexDocument(ctx context.Context, id string) error {
	if id == "" {
		return docdeck.Errorf(docdeck.EINVALID, "document ID required")
	}
	return c.writeJSON(ctx, http.MethodPost, "/documents/"+url.PathEscape(id)+"/index", nil, nil)
}

// DeindexDocument removes a document from the search index.
func (c *Client) DeindexDocument(ctx context.Context, id string) error {
	if id == "" {
		return docdeck.Errorf(docdeck.EINVALID, "document ID required")
	}
	return c.writeJSON(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id)+"/index", nil, nil)
}

// IndexDocuments indexes multiple documents in one request.
func (c *Client) IndexDocuments(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
	if len(ids) == 0 {
		return nil, docdeck.Errorf(docdeck.EINVALID, "at least one document ID required")
	}
	body := struct {
		DocumentIDs []string `json:"documentIds"`
	}{DocumentIDs: ids}

	var result docdeck.BatchIndexResult
	if err := c.writeJSON(ctx, http.MethodPost, "/documents/batch/index", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
