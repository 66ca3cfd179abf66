package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
	"golang.org/x/time/rate"
)

// Client issues credentialed HTTP requests to the VideoTube API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
	notifier   *Notifier
}

// Options configures a Client.
type Options struct {
	HTTPClient *http.Client
	// Jar overrides the default in-memory cookie jar. Ignored when
	// HTTPClient is supplied.
	Jar     http.CookieJar
	Timeout time.Duration
	// Requests per second allowed against the server; zero disables limiting.
	RequestsPerSec float64
	Burst          int
	Logger         *log.Logger
}

// NewClient creates a Client for the given base URL. When no HTTP client is
// supplied, one is built with a cookie jar so the server's httpOnly session
// cookie rides along on every request.
func NewClient(baseURL string, opts Options) (*Client, error) {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		jar := opts.Jar
		if jar == nil {
			memJar, err := cookiejar.New(nil)
			if err != nil {
				return nil, fmt.Errorf("failed to create cookie jar: %w", err)
			}
			jar = memJar
		}
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Jar: jar, Timeout: timeout}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSec > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSec), burst)
	}

	logger := opts.Logger
	if logger == nil {
		logger = shared.NewSilentLogger()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
		notifier:   &Notifier{},
	}, nil
}

// Failures returns the notifier carrying normalized failure events for
// every request this client issues.
func (c *Client) Failures() *Notifier {
	return c.notifier
}

// BaseURL returns the server base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response is a successful (2xx) API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Envelope decodes the response body into the standard envelope.
func (r *Response) Envelope() (*models.Envelope, error) {
	var envelope models.Envelope
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	return &envelope, nil
}

// do dispatches one request and normalizes every failure path. The returned
// error, when non-nil, is always an *Error; it has already been published
// to subscribers before being handed back to the caller.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*Response, error) {
	requestID := shared.GenerateID()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.fail(requestID, path, &Error{Kind: KindNetwork, Message: err.Error()})
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, c.fail(requestID, path, ValidationError(fmt.Sprintf("failed to create request: %v", err)))
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("network error", "method", method, "path", path, "request_id", requestID, "err", err)
		return nil, c.fail(requestID, path, NetworkError())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(requestID, path, NetworkError())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := normalizeStatus(resp.StatusCode, respBody)
		c.logger.Warn("request failed", "method", method, "path", path, "status", resp.StatusCode, "kind", apiErr.Kind.String())
		return nil, c.fail(requestID, path, apiErr)
	}

	c.logger.Debug("request ok", "method", method, "path", path, "status", resp.StatusCode)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}

// fail publishes the failure event and returns the error for the call site.
func (c *Client) fail(requestID, path string, apiErr *Error) error {
	c.notifier.Publish(FailureEvent{Err: apiErr, RequestID: requestID, Path: path})
	return apiErr
}

// decode unwraps the response envelope's data into target (target may be nil).
func decode(resp *Response, target any) error {
	if target == nil {
		return nil
	}
	envelope, err := resp.Envelope()
	if err != nil {
		return err
	}
	return envelope.Unwrap(target)
}

// Get performs a GET and unwraps the envelope data into target.
func (c *Client) Get(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	return decode(resp, target)
}

// Post performs a POST with a JSON body and unwraps the envelope data into target.
func (c *Client) Post(ctx context.Context, path string, payload, target any) error {
	body, err := marshalBody(payload)
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, path, "application/json", body)
	if err != nil {
		return err
	}
	return decode(resp, target)
}

// Patch performs a PATCH with an optional JSON body and unwraps the envelope data into target.
func (c *Client) Patch(ctx context.Context, path string, payload, target any) error {
	body, err := marshalBody(payload)
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPatch, path, "application/json", body)
	if err != nil {
		return err
	}
	return decode(resp, target)
}

// Delete performs a DELETE and unwraps the envelope data into target.
func (c *Client) Delete(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodDelete, path, "", nil)
	if err != nil {
		return err
	}
	return decode(resp, target)
}

func marshalBody(payload any) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, ValidationError(fmt.Sprintf("failed to encode request body: %v", err))
	}
	return bytes.NewReader(data), nil
}

// FileUpload names a file part in a multipart request.
type FileUpload struct {
	FieldName string
	FileName  string
	Content   io.Reader
}

// PostMultipart performs a POST with a multipart/form-data body for
// file-bearing operations (register, video upload, avatar update).
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []FileUpload, target any) error {
	return c.multipart(ctx, http.MethodPost, path, fields, files, target)
}

// PatchMultipart performs a PATCH with a multipart/form-data body.
func (c *Client) PatchMultipart(ctx context.Context, path string, fields map[string]string, files []FileUpload, target any) error {
	return c.multipart(ctx, http.MethodPatch, path, fields, files, target)
}

func (c *Client) multipart(ctx context.Context, method, path string, fields map[string]string, files []FileUpload, target any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return ValidationError(fmt.Sprintf("failed to write form field %s: %v", name, err))
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return ValidationError(fmt.Sprintf("failed to create form file %s: %v", file.FieldName, err))
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return ValidationError(fmt.Sprintf("failed to read %s: %v", file.FileName, err))
		}
	}

	if err := writer.Close(); err != nil {
		return ValidationError(fmt.Sprintf("failed to finalize multipart body: %v", err))
	}

	resp, err := c.do(ctx, method, path, writer.FormDataContentType(), &buf)
	if err != nil {
		return err
	}
	return decode(resp, target)
}
