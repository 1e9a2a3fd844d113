// Package api is the JSON client for the health-tracking backend. It owns
// the transport policy: bearer auth from a token source, one bounded retry on
// transport failure, and typed errors that separate "could not send" from
// "server said no". It holds no state of its own — every call is plain
// request/response.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxAttempts bounds the transport retry: the original attempt plus exactly
// one retry, no backoff. HTTP error responses are never retried.
const maxAttempts = 2

const defaultTimeout = 15 * time.Second

// TokenSource supplies the current bearer token. Returns "" when the auth
// collaborator has no session — requests then go out unauthenticated.
type TokenSource func() string

// Client calls the backend. Zero-value fields get sane defaults, so tests can
// construct one with just a BaseURL.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      TokenSource
}

// New returns a client for the given base URL using the default HTTP timeout.
func New(baseURL string, token TokenSource) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		Token:      token,
	}
}

/* ─── Error types ────────────────────────────────────────────────────── */

// TransportError means the request could not be sent even after the retry.
// It wraps the last attempt's error.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "request failed: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response. Message is the parsed error body when
// the server sent {"error": "..."}, falling back to the raw response text,
// then to the bare status.
type StatusError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsStatus reports whether err is a StatusError with the given status code.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

/* ─── Transport core ─────────────────────────────────────────────────── */

// doJSON sends one API call. body (if non-nil) is JSON-encoded; on 2xx the
// response is decoded into out (if non-nil). The request body is held as
// bytes so the retry can resend it.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	u := strings.TrimRight(c.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.Token != nil {
			if tok := c.Token(); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
		}

		resp, lastErr = httpClient.Do(req)
		if lastErr == nil {
			break
		}
		// Transport failure: retry once unless the caller is gone.
		if ctx.Err() != nil {
			return &TransportError{Err: lastErr}
		}
	}
	if lastErr != nil {
		return &TransportError{Err: lastErr}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw),
			Body:    raw,
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts {"error": "..."} from an error body, falling back to
// the trimmed raw text. Empty means the caller should show the bare status.
func errorMessage(raw []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return strings.TrimSpace(string(raw))
}

func dateQuery(date string) url.Values {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	return q
}
