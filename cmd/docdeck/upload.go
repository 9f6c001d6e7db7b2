package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mkowalczyk/docdeck"
	"golang.org/x/sync/errgroup"
)

// Run executes the upload command. Files upload concurrently up to the
// configured limit; the first failure cancels the remaining uploads.
func (c *UploadCmd) Run(deps *Dependencies) error {
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	var mu sync.Mutex
	var uploaded []*docdeck.Document

	for _, path := range c.Paths {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %q: %w", path, err)
			}
			defer f.Close()

			doc, err := deps.Documents.UploadDocument(ctx, docdeck.UploadInput{
				FileName: filepath.Base(path),
				FolderID: c.Folder,
				Body:     f,
			})
			if err != nil {
				mu.Lock()
				fmt.Fprintf(deps.Stderr, "error uploading %q: %s\n", path, docdeck.UserMessage(err))
				mu.Unlock()
				return err
			}

			mu.Lock()
			uploaded = append(uploaded, doc)
			fmt.Fprintf(deps.Stdout, "uploaded %s  %s\n", doc.ID, doc.FileName)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if !c.Index {
		return nil
	}

	ids := make([]string, 0, len(uploaded))
	for _, doc := range uploaded {
		ids = append(ids, doc.ID)
	}
	result, err := deps.Documents.IndexDocuments(deps.Ctx, ids)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "indexed %d of %d documents\n", len(result.Indexed), len(ids))
	return nil
}
