// Package client is a typed Go client for the pearlsite API, used by
// the admin CLI and suitable for embedding in other tools.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the server rejects the session
// token. The token store has already been cleared when it surfaces.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a server-provided error message and status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to one pearlsite server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore

	// OnUnauthorized runs once per intercepted 401, after the token
	// store is cleared. CLI callers use it to print a re-login hint.
	OnUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client against a base URL like http://localhost:8080.
func New(baseURL string, store TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoggedIn reports whether the store holds a token. It does not verify
// the token against the server.
func (c *Client) LoggedIn() bool {
	return c.store.Token() != ""
}

type requestOptions struct {
	skipIntercept bool
	contentType   string
	rawBody       io.Reader
}

// request performs one API call: bearer injection, JSON encoding, 401
// interception and response decoding into out (when non-nil).
func (c *Client) request(ctx context.Context, method, endpoint string, body any, out any, opts requestOptions) error {
	var reader io.Reader
	contentType := opts.contentType
	if opts.rawBody != nil {
		reader = opts.rawBody
	} else if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !opts.skipIntercept {
		c.store.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return ErrUnauthorized
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var serverErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(payload, &serverErr) == nil {
			if serverErr.Error != "" {
				apiErr.Message = serverErr.Error
			} else {
				apiErr.Message = serverErr.Message
			}
		}
		return apiErr
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// get is shorthand for an authenticated GET decoded into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, nil, out, requestOptions{})
}

type filePart struct {
	field string
	name  string
	r     io.Reader
}

// multipartBody assembles a multipart form from fields and file parts.
// A field may repeat across parts (e.g. multiple `images`).
func multipartBody(fields map[string]string, files []filePart) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range files {
		part, err := w.CreateFormFile(file.field, file.name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.r); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
