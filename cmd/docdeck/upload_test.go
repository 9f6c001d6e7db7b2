package main_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mkowalczyk/docdeck"
	main "github.com/mkowalczyk/docdeck/cmd/docdeck"
	"github.com/mkowalczyk/docdeck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("content of "+name), 0o644))
		paths = append(paths, path)
	}
	return paths
}

func TestCmdUpload(t *testing.T) {
	t.Parallel()

	t.Run("uploads every file", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var names []string
		deps, stdout, _ := testDeps()
		deps.Documents = &mock.DocumentService{
			UploadDocumentFn: func(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error) {
				data, err := io.ReadAll(in.Body)
				require.NoError(t, err)
				assert.Contains(t, string(data), in.FileName)

				mu.Lock()
				names = append(names, in.FileName)
				mu.Unlock()
				return &docdeck.Document{ID: "id-" + in.FileName, FileName: in.FileName}, nil
			},
		}

		paths := writeTempFiles(t, "a.md", "b.md", "c.md")
		cmd := &main.UploadCmd{Paths: paths, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.ElementsMatch(t, []string{"a.md", "b.md", "c.md"}, names)
		assert.Contains(t, stdout.String(), "uploaded")
	})

	t.Run("index flag batch-indexes the uploads", func(t *testing.T) {
		t.Parallel()

		var indexed []string
		deps, stdout, _ := testDeps()
		deps.Documents = &mock.DocumentService{
			UploadDocumentFn: func(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error) {
				return &docdeck.Document{ID: "id-" + in.FileName, FileName: in.FileName}, nil
			},
			IndexDocumentsFn: func(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
				indexed = ids
				return &docdeck.BatchIndexResult{Indexed: ids}, nil
			},
		}

		paths := writeTempFiles(t, "a.md", "b.md")
		cmd := &main.UploadCmd{Paths: paths, Index: true, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.Len(t, indexed, 2)
		assert.Contains(t, stdout.String(), "indexed 2 of 2")
	})

	t.Run("failure surfaces the file name", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Documents = &mock.DocumentService{
			UploadDocumentFn: func(ctx context.Context, in docdeck.UploadInput) (*docdeck.Document, error) {
				return nil, docdeck.Errorf(docdeck.EINVALID, "unsupported file type")
			},
		}

		paths := writeTempFiles(t, "a.bin")
		cmd := &main.UploadCmd{Paths: paths, Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "a.bin")
		assert.Contains(t, stderr.String(), "unsupported file type")
	})
}

func TestCmdIndex(t *testing.T) {
	t.Parallel()

	t.Run("single ID uses the per-document endpoint", func(t *testing.T) {
		t.Parallel()

		var single string
		deps, stdout, _ := testDeps()
		deps.Documents = &mock.DocumentService{
			IndexDocumentFn: func(ctx context.Context, id string) error {
				single = id
				return nil
			},
			IndexDocumentsFn: func(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
				t.Error("batch endpoint must not be used for a single ID")
				return nil, nil
			},
		}

		cmd := &main.IndexCmd{IDs: []string{"d1"}}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "d1", single)
		assert.Contains(t, stdout.String(), "indexed d1")
	})

	t.Run("multiple IDs go out as one batch", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Documents = &mock.DocumentService{
			IndexDocumentsFn: func(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
				assert.Equal(t, []string{"d1", "d2", "d3"}, ids)
				return &docdeck.BatchIndexResult{Indexed: []string{"d1", "d2", "d3"}}, nil
			},
		}

		cmd := &main.IndexCmd{IDs: []string{"d1", "d2", "d3"}}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "indexed 3 of 3")
	})

	t.Run("partial batch failure exits non-zero", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Documents = &mock.DocumentService{
			IndexDocumentsFn: func(ctx context.Context, ids []string) (*docdeck.BatchIndexResult, error) {
				return &docdeck.BatchIndexResult{Indexed: []string{"d1"}, Failed: []string{"d2"}}, nil
			},
		}

		cmd := &main.IndexCmd{IDs: []string{"d1", "d2"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "failed: d2")
	})
}
