// Package http provides the HTTP transport for the docdeck service
// interfaces. It performs one backend call per invocation, attaches the
// stored bearer credential, normalizes failures into docdeck error codes,
// and retries idempotent reads under an explicit retry policy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mkowalczyk/docdeck"
)

// DefaultTimeout is the fixed per-call upper bound. On expiry the call
// fails as a transport-class error, eligible for retry.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the local development backend address.
const DefaultBaseURL = "http://localhost:8080"

// Client calls the backend REST API. It implements the remote service
// interfaces; see document.go, search.go, rag.go, snippet.go, health.go.
type Client struct {
	baseURL string
	httpc   *http.Client
	creds   docdeck.CredentialStore
	policy  docdeck.RetryPolicy
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// WithCredentialStore sets the store holding the bearer credential.
// Without a store, requests go out unauthenticated.
func WithCredentialStore(creds docdeck.CredentialStore) Option {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithRetryPolicy sets the retry policy for idempotent reads.
// Defaults to docdeck.DefaultRetryPolicy(3).
func WithRetryPolicy(policy docdeck.RetryPolicy) Option {
	return func(c *Client) {
		c.policy = policy
	}
}

// NewClient creates a Client for the backend at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		policy:  docdeck.DefaultRetryPolicy(3),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a GET and decodes the response into out. Reads are
// idempotent, so the call runs under the retry policy.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return docdeck.Retry(ctx, c.policy, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, path, query, nil, "", out)
	})
}

// readJSON performs a POST whose semantics are an idempotent read (search
// endpoints take their parameters as a JSON body). Runs under the retry
// policy.
func (c *Client) readJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return docdeck.Errorf(docdeck.EINVALID, "encode request: %v", err)
	}
	return docdeck.Retry(ctx, c.policy, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/json", out)
	})
}

// writeJSON performs a mutating request. Mutations are never retried.
func (c *Client) writeJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return docdeck.Errorf(docdeck.EINVALID, "encode request: %v", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, nil, reader, contentType, out)
}

// do performs a single HTTP call: build the request, attach the bearer
// credential, execute, and either decode the payload into out or return a
// normalized error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return docdeck.Errorf(docdeck.EINVALID, "build request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Timeouts and connection failures are transport-class and
		// eligible for retry.
		return docdeck.Errorf(docdeck.EUNAVAILABLE, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(ctx, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return docdeck.Errorf(docdeck.EINTERNAL, "decode response: %v", err)
	}
	return nil
}

// errorBody is the backend's error envelope. Decoding is best-effort; a
// non-conforming body falls back to the HTTP status text.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// decodeError maps a non-2xx response to a docdeck error. A 401 also
// clears the stored credential.
func (c *Client) decodeError(ctx context.Context, resp *http.Response) error {
	msg := ""
	var eb errorBody
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		if jsonErr := json.Unmarshal(data, &eb); jsonErr == nil {
			if eb.Error.Message != "" {
				msg = eb.Error.Message
			} else {
				msg = eb.Message
			}
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.creds != nil {
			_ = c.creds.Clear(ctx)
		}
		return docdeck.Errorf(docdeck.EUNAUTHORIZED, "%s", msg)
	case resp.StatusCode == http.StatusForbidden:
		return docdeck.Errorf(docdeck.EFORBIDDEN, "%s", msg)
	case resp.StatusCode == http.StatusNotFound:
		return docdeck.Errorf(docdeck.ENOTFOUND, "%s", msg)
	case resp.StatusCode >= 500:
		return docdeck.Errorf(docdeck.EINTERNAL, "%s", msg)
	default:
		return docdeck.Errorf(docdeck.EINVALID, "%s", msg)
	}
}
