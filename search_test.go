package docdeck_test

import (
	"testing"

	"github.com/mkowalczyk/docdeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("folder selection clears document selection", func(t *testing.T) {
		t.Parallel()

		s := docdeck.Scope{DocumentID: "d1"}
		s = s.WithFolder("f1")

		assert.Equal(t, "f1", s.FolderID)
		assert.Empty(t, s.DocumentID)
	})

	t.Run("document selection clears folder selection", func(t *testing.T) {
		t.Parallel()

		s := docdeck.Scope{FolderID: "f1"}
		s = s.WithDocument("d1")

		assert.Equal(t, "d1", s.DocumentID)
		assert.Empty(t, s.FolderID)
	})

	t.Run("rejects both filters set", func(t *testing.T) {
		t.Parallel()

		err := docdeck.Scope{FolderID: "f1", DocumentID: "d1"}.Validate()
		require.Error(t, err)
		assert.Equal(t, docdeck.EINVALID, docdeck.ErrorCode(err))
	})
}

func TestSearchQuery_Validate(t *testing.T) {
	t.Parallel()

	err := docdeck.SearchQuery{}.Validate()
	require.Error(t, err)
	assert.Equal(t, docdeck.EINVALID, docdeck.ErrorCode(err))

	assert.NoError(t, docdeck.SearchQuery{Text: "raft"}.Validate())
}

func TestUploadInput_Validate(t *testing.T) {
	t.Parallel()

	err := (&docdeck.UploadInput{}).Validate()
	require.Error(t, err)
	assert.Equal(t, docdeck.EINVALID, docdeck.ErrorCode(err))
}
