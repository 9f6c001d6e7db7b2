package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkowalczyk/docdeck"
	dochttp "github.com/mkowalczyk/docdeck/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Ask(t *testing.T) {
	t.Parallel()

	t.Run("sends question field", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rag/query", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"text":"42","sources":[{"documentId":"d1","snippetId":"s1"}]}`))
		}))
		defer server.Close()

		client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

		answer, err := client.Ask(context.Background(), docdeck.AskInput{
			Question: "What is the answer?",
			Scope:    docdeck.Scope{DocumentID: "d1"},
			TopK:     3,
		})
		require.NoError(t, err)

		assert.Equal(t, "What is the answer?", got["question"])
		assert.Equal(t, "d1", got["documentId"])
		assert.NotContains(t, got, "folderId")
		assert.NotContains(t, got, "query")

		assert.Equal(t, "42", answer.Text)
		require.Len(t, answer.Sources, 1)
		assert.Equal(t, "s1", answer.Sources[0].SnippetID)
	})

	t.Run("rejects empty question before the network", func(t *testing.T) {
		t.Parallel()

		client := dochttp.NewClient("http://unused.invalid", dochttp.WithRetryPolicy(noRetry()))

		_, err := client.Ask(context.Background(), docdeck.AskInput{})
		require.Error(t, err)
		assert.Equal(t, docdeck.EINVALID, docdeck.ErrorCode(err))
	})
}

func TestClient_MultiStepAsk(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rag/multi-step", r.URL.Path)
		_, _ = w.Write([]byte(`{"text":"step answer"}`))
	}))
	defer server.Close()

	client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

	answer, err := client.MultiStepAsk(context.Background(), docdeck.AskInput{Question: "why?"})
	require.NoError(t, err)
	assert.Equal(t, "step answer", answer.Text)
}

func TestClient_Converse(t *testing.T) {
	t.Parallel()

	var got struct {
		SessionID string            `json:"sessionId"`
		Question  string            `json:"question"`
		History   []docdeck.Message `json:"history"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rag/conversation", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"text":"follow-up answer"}`))
	}))
	defer server.Close()

	client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

	answer, err := client.Converse(context.Background(), docdeck.ConverseInput{
		SessionID: "s1",
		Question:  "And Y?",
		History: []docdeck.Message{
			{ID: "u1", Role: docdeck.RoleUser, Content: "What is X?"},
			{ID: "a1", Role: docdeck.RoleAssistant, Content: "X is a thing."},
			{ID: "a2", Role: docdeck.RoleAssistant, Pending: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "follow-up answer", answer.Text)

	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, "And Y?", got.Question)
	// Pending placeholders never travel to the backend.
	require.Len(t, got.History, 2)
	assert.Equal(t, "u1", got.History[0].ID)
	assert.Equal(t, "a1", got.History[1].ID)
}

func TestClient_Summarize(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rag/summarize", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "d1", body["documentId"])
		_, _ = w.Write([]byte(`{"text":"summary"}`))
	}))
	defer server.Close()

	client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

	answer, err := client.Summarize(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "summary", answer.Text)
}

func TestClient_Compare(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rag/compare", r.URL.Path)
		var body docdeck.CompareInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"d1", "d2"}, body.DocumentIDs)
		_, _ = w.Write([]byte(`{"text":"comparison"}`))
	}))
	defer server.Close()

	client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

	answer, err := client.Compare(context.Background(), docdeck.CompareInput{DocumentIDs: []string{"d1", "d2"}})
	require.NoError(t, err)
	assert.Equal(t, "comparison", answer.Text)
}

func TestClient_Config(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rag/config", r.URL.Path)
		_, _ = w.Write([]byte(`{"model":"m1","maxTopK":10,"multiStep":true,"compare":true}`))
	}))
	defer server.Close()

	client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

	cfg, err := client.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m1", cfg.Model)
	assert.True(t, cfg.MultiStep)
}
