// Package backend is the thin client for the jewelry backend REST API.
// It translates typed resource operations into JSON requests against
// <BACKEND_URL>/api/v1 and never retries: callers display the error and let
// the user resubmit.
package backend

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

	"github.com/shopspring/decimal"
)

const basePath = "/api/v1"

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	// NetworkErrMessage is shown whenever no response was received at all.
	NetworkErrMessage = "Network error. Please try again."
	genericErrMessage = "Request failed. Please try again."
)

// APIError carries the display message resolved from a failed call.
// StatusCode 0 means the request never got a response.
type APIError struct {
	StatusCode int
	Message    string
	// Fields holds per-field validation messages when the backend rejects a
	// submission with {body: {field: [messages]}}.
	Fields map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// Display is the user-facing message, without status decoration.
func (e *APIError) Display() string { return e.Message }

type PageMeta struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// Page is the uniform list-endpoint envelope.
type Page[T any] struct {
	Content []T      `json:"content"`
	Page    PageMeta `json:"page"`
}

type Client struct {
	base  string
	http  *http.Client
	token string
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/") + basePath,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithToken derives a client that attaches "Authorization: Bearer <tok>" to
// every request. The zero-token client stays usable for public endpoints.
func (c *Client) WithToken(tok string) *Client {
	cp := *c
	cp.token = tok
	return &cp
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: genericErrMessage}
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return &APIError{Message: genericErrMessage}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: NetworkErrMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: NetworkErrMessage}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: genericErrMessage}
		}
	}
	return nil
}

// errBody covers every error shape the backend is known to emit; which
// fields are populated varies per endpoint.
type errBody struct {
	Status struct {
		Description string `json:"description"`
	} `json:"status"`
	Message string              `json:"message"`
	Body    map[string][]string `json:"body"`
}

// decodeError resolves the display message in priority order:
// status.description, then message, then the generic fallback.
func decodeError(status int, raw []byte) *APIError {
	e := &APIError{StatusCode: status, Message: genericErrMessage}
	var b errBody
	if json.Unmarshal(raw, &b) == nil {
		switch {
		case b.Status.Description != "":
			e.Message = b.Status.Description
		case b.Message != "":
			e.Message = b.Message
		}
		if len(b.Body) > 0 {
			e.Fields = b.Body
		}
	}
	return e
}

// Display extracts a user-facing message from any error the client returned.
func Display(err error) string {
	if e, ok := err.(*APIError); ok {
		return e.Display()
	}
	return genericErrMessage
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))
	return q
}
