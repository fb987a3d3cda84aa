// package api implements the HTTP client adapter for the lectern REST API.
//
// All store operations go through [Client]: it attaches bearer credentials
// when a token source is installed, encodes JSON or multipart bodies, and
// normalizes every failure into an [*Error] carrying the server-provided
// message (or a caller-supplied fallback when the server gave none).
//
// Calls are single-attempt. There is no retry or backoff; the only pacing
// is an optional client-side rate limiter.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/praslea/lectern/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:5000/api"

// ErrorKind classifies adapter failures. The rendered text is always the
// plain message; the kind is available for callers that want it.
type ErrorKind int

const (
	KindServer ErrorKind = iota
	KindNetwork
	KindAuthorization
	KindValidation
)

// Error is the uniform failure type surfaced by the adapter.
type Error struct {
	Kind    ErrorKind
	Message string // user-facing message, from the server when available
	Status  int    // HTTP status code, 0 when no response was received
	Err     error  // underlying cause, may be nil
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// Options configures a single request.
type Options struct {
	// Auth attaches the current bearer token. If no token source is
	// installed the call proceeds unauthenticated and the server decides.
	Auth bool

	// Fallback is the generic error message used when the server response
	// is absent or unparseable (e.g. "Login failed").
	Fallback string
}

// Client issues REST calls against the dashboard API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger

	mu     sync.RWMutex
	tokens oauth2.TokenSource
}

// NewClient creates a client for the API at baseURL. A nil httpClient uses
// [http.DefaultClient]; ratePerSec <= 0 disables client-side pacing.
func NewClient(baseURL string, httpClient *http.Client, ratePerSec float64, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	var limiter *rate.Limiter
	if ratePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// SetTokenSource installs the bearer credential source used for Auth requests.
func (c *Client) SetTokenSource(ts oauth2.TokenSource) {
	c.mu.Lock()
	c.tokens = ts
	c.mu.Unlock()
}

// ClearTokenSource removes the installed credential source.
func (c *Client) ClearTokenSource() {
	c.SetTokenSource(nil)
}

func (c *Client) tokenSource() oauth2.TokenSource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

// Get performs a GET request and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, path string, opts Options, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", opts, result)
}

// Post performs a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any, opts Options, result any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, opts, result)
}

// Put performs a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body any, opts Options, result any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, opts, result)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts Options, result any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", opts, result)
}

// PostMultipart performs a POST request with a multipart form body, used
// for file-bearing submissions (cover images, video uploads).
func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, opts Options, result any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return &Error{Kind: KindValidation, Message: fallback(opts, "invalid form data"), Err: err}
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, opts, result)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, opts Options, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: fallback(opts, "invalid request body"), Err: err}
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "application/json", opts, result)
}

// do executes a single request and settles it into either a decoded result
// or an [*Error]. Server failures prefer the {message} envelope.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, opts Options, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindNetwork, Message: fallback(opts, "request cancelled"), Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindValidation, Message: fallback(opts, "invalid request"), Err: err}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", shared.GenerateID())

	if opts.Auth {
		if ts := c.tokenSource(); ts != nil {
			token, err := ts.Token()
			if err != nil {
				return &Error{Kind: KindAuthorization, Message: fallback(opts, "not authenticated"), Err: err}
			}
			token.SetAuthHeader(req)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed before response", "method", method, "path", path, "error", err)
		return &Error{Kind: KindNetwork, Message: fallback(opts, "request failed"), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fallback(opts, "request failed"), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.serverError(resp.StatusCode, respBody, opts)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{Kind: KindServer, Message: fallback(opts, "request failed"), Status: resp.StatusCode, Err: err}
		}
	}

	return nil
}

// serverError builds an [*Error] from a non-2xx response, preferring the
// server's {message} field over the generic fallback.
func (c *Client) serverError(status int, body []byte, opts Options) *Error {
	kind := KindServer
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		kind = KindAuthorization
	}

	var envelope struct {
		Message string `json:"message"`
	}
	message := fallback(opts, fmt.Sprintf("request failed: status %d", status))
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}

	return &Error{Kind: kind, Message: message, Status: status, Err: shared.ErrAPIRequest}
}

func fallback(opts Options, def string) string {
	if opts.Fallback != "" {
		return opts.Fallback
	}
	return def
}

// Form accumulates textual fields and file parts for a multipart submission.
type Form struct {
	fields [][2]string
	files  []filePart
}

type filePart struct {
	field    string
	filename string
	data     []byte
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Set appends a textual field.
func (f *Form) Set(key, value string) {
	f.fields = append(f.fields, [2]string{key, value})
}

// AddFile appends a file part with the given field name and filename.
func (f *Form) AddFile(field, filename string, data []byte) {
	f.files = append(f.files, filePart{field: field, filename: filename, data: data})
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := writer.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", kv[0], err)
		}
	}

	for _, fp := range f.files {
		part, err := writer.CreateFormFile(fp.field, fp.filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %s: %w", fp.field, err)
		}
		if _, err := part.Write(fp.data); err != nil {
			return nil, "", fmt.Errorf("failed to write form file %s: %w", fp.field, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
