package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mkowalczyk/docdeck"
	dochttp "github.com/mkowalczyk/docdeck/http"
	"github.com/mkowalczyk/docdeck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noRetry keeps transport tests to a single attempt unless a test opts in.
func noRetry() docdeck.RetryPolicy {
	policy := docdeck.DefaultRetryPolicy(1)
	policy.Backoff = func(int) time.Duration { return 0 }
	return policy
}

// fastRetry retries like the default policy but without delays.
func fastRetry(maxAttempts int) docdeck.RetryPolicy {
	policy := docdeck.DefaultRetryPolicy(maxAttempts)
	policy.Backoff = func(int) time.Duration { return 0 }
	return policy
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		wantCode string
	}{
		{http.StatusBadRequest, docdeck.EINVALID},
		{http.StatusUnauthorized, docdeck.EUNAUTHORIZED},
		{http.StatusForbidden, docdeck.EFORBIDDEN},
		{http.StatusNotFound, docdeck.ENOTFOUND},
		{http.StatusInternalServerError, docdeck.EINTERNAL},
		{http.StatusBadGateway, docdeck.EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

			_, err := client.Stats(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, docdeck.ErrorCode(err))
		})
	}
}

func TestClient_ErrorMessageFromBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid","message":"cursor expired"}}`))
	}))
	defer server.Close()

	client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(noRetry()))

	_, err := client.Search(context.Background(), docdeck.SearchQuery{Text: "raft"})
	require.Error(t, err)
	assert.Equal(t, "cursor expired", docdeck.ErrorMessage(err))
}

func TestClient_BearerCredential(t *testing.T) {
	t.Parallel()

	t.Run("attaches stored token", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"documentCount":1,"indexedCount":1,"snippetCount":3,"folderCount":0}`))
		}))
		defer server.Close()

		creds := &mock.CredentialStore{}
		require.NoError(t, creds.SetToken(context.Background(), "tok-123"))

		client := dochttp.NewClient(server.URL,
			dochttp.WithCredentialStore(creds),
			dochttp.WithRetryPolicy(noRetry()),
		)

		_, err := client.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("omits header without token", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := dochttp.NewClient(server.URL,
			dochttp.WithCredentialStore(&mock.CredentialStore{}),
			dochttp.WithRetryPolicy(noRetry()),
		)

		_, err := client.Stats(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("clears credential on 401", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		creds := &mock.CredentialStore{}
		require.NoError(t, creds.SetToken(context.Background(), "expired"))

		client := dochttp.NewClient(server.URL,
			dochttp.WithCredentialStore(creds),
			dochttp.WithRetryPolicy(noRetry()),
		)

		_, err := client.Stats(context.Background())
		require.Error(t, err)
		assert.Equal(t, docdeck.EUNAUTHORIZED, docdeck.ErrorCode(err))

		token, err := creds.Token(context.Background())
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestClient_Retry(t *testing.T) {
	t.Parallel()

	t.Run("client error is never retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(fastRetry(5)))

		_, err := client.Search(context.Background(), docdeck.SearchQuery{Text: "raft"})
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server error retried to max attempts", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(fastRetry(3)))

		_, err := client.Stats(context.Background())
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("recovers when server heals mid-retry", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"documentCount":7,"indexedCount":5,"snippetCount":40,"folderCount":2}`))
		}))
		defer server.Close()

		client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(fastRetry(4)))

		stats, err := client.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, stats.DocumentCount)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("mutations are not retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := dochttp.NewClient(server.URL, dochttp.WithRetryPolicy(fastRetry(5)))

		err := client.IndexDocument(context.Background(), "d1")
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := dochttp.NewClient(server.URL,
		dochttp.WithTimeout(10*time.Millisecond),
		dochttp.WithRetryPolicy(noRetry()),
	)

	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.Equal(t, docdeck.EUNAVAILABLE, docdeck.ErrorCode(err))
}

func TestClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	// An empty base URL must fall back to the local development address
	// rather than producing malformed request URLs.
	client := dochttp.NewClient("", dochttp.WithRetryPolicy(noRetry()), dochttp.WithTimeout(50*time.Millisecond))
	_, err := client.Check(context.Background())
	// No backend is listening in tests; the point is a well-formed attempt.
	if err != nil {
		assert.Equal(t, docdeck.EUNAVAILABLE, docdeck.ErrorCode(err))
	}
}
