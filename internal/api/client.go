// Package api is the single network surface towards the job tracker
// backend: a thin request-issuing client bound to one base URL. It offers
// generic verb methods that serialize bodies as JSON-decoded responses or
// multipart form posts. No retries, no auth, no interceptors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkolesn/jobtrack/internal/logging"
)

// maxErrBody caps how much of an error response body is kept for messages.
const maxErrBody = 2048

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
}

// New returns a client bound to baseURL. timeout is applied per request on
// top of transport defaults; zero disables it.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		log:     log,
	}
}

// Get issues a GET and decodes a 2xx JSON response into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Delete issues a DELETE and decodes a 2xx JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// Put issues a PUT without a body (used for query-parameter updates such as
// the status-only endpoint) and decodes a 2xx JSON response into out.
func (c *Client) Put(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, "", out)
}

// PostMultipart issues a POST with a multipart/form-data body.
func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// PutMultipart issues a PUT with a multipart/form-data body.
func (c *Client) PutMultipart(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	log := c.log.With("request_id", requestID, "method", method, "path", path)
	log.Debug(ctx, "issuing request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "transport error", "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		log.Warn(ctx, "request failed", "status", resp.StatusCode)
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// Fetch retrieves an arbitrary (possibly absolute) URL and returns its raw
// body. The details view uses it to download resume content; reference
// freshness is not checked.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if !strings.Contains(rawURL, "://") {
		rawURL = c.baseURL + "/" + strings.TrimLeft(rawURL, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// Form accumulates multipart fields plus at most one file part, in insertion
// order.
type Form struct {
	fields []formField
	file   *filePart
}

type formField struct {
	name  string
	value string
}

type filePart struct {
	field    string
	filename string
	content  []byte
}

func NewForm() *Form {
	return &Form{}
}

// Set appends a text field.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// File attaches the file part sent under the given field name.
func (f *Form) File(field, filename string, content []byte) *Form {
	f.file = &filePart{field: field, filename: filename, content: content}
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", fld.name, err)
		}
	}
	if f.file != nil {
		part, err := w.CreateFormFile(f.file.field, f.file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part: %w", err)
		}
		if _, err := part.Write(f.file.content); err != nil {
			return nil, "", fmt.Errorf("writing file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
