package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docshub/docshub-cli/internal/core/domain"
	"github.com/docshub/docshub-cli/internal/core/ports/driven"
	"github.com/docshub/docshub-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"
)

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Client talks to the Docs Hub backend API.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *RateLimiter
}

// NewClient creates a backend client for the given base URL.
// A trailing slash on the base URL is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		limiter: NewRateLimiter(),
	}
}

// documentBody is the wire shape exchanged with the backend.
type documentBody struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CoverImage *string  `json:"cover_image"`
	Content    string   `json:"content"`
}

// createBody is the creation payload. CoverImage marshals to an
// explicit null when no cover was uploaded.
type createBody struct {
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	CoverImage *string  `json:"cover_image"`
}

// uploadResponse is the upload endpoint's response shape.
type uploadResponse struct {
	DataURL string `json:"data_url"`
}

func (b documentBody) toSummary() domain.DocumentSummary {
	s := domain.DocumentSummary{
		ID:       b.ID,
		Slug:     b.Slug,
		Title:    b.Title,
		Category: domain.Category(b.Category),
		Tags:     b.Tags,
	}
	if b.CoverImage != nil {
		s.CoverImage = *b.CoverImage
	}
	return s
}

func (b documentBody) toDocument() *domain.Document {
	return &domain.Document{
		DocumentSummary: b.toSummary(),
		Content:         b.Content,
	}
}

// ListDocuments returns summaries matching the filter, in backend order.
// Filter fields are included as query parameters only when non-empty.
func (c *Client) ListDocuments(ctx context.Context, filter domain.Filter) ([]domain.DocumentSummary, error) {
	params := url.Values{}
	if filter.Query != "" {
		params.Set("q", filter.Query)
	}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/docs", params, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // response body

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, "list documents")
	}

	var bodies []documentBody
	if err := json.NewDecoder(resp.Body).Decode(&bodies); err != nil {
		return nil, fmt.Errorf("list documents: decode response: %w", err)
	}

	summaries := make([]domain.DocumentSummary, 0, len(bodies))
	for _, b := range bodies {
		summaries = append(summaries, b.toSummary())
	}
	return summaries, nil
}

// GetDocument retrieves a full document by slug.
func (c *Client) GetDocument(ctx context.Context, slug string) (*domain.Document, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/docs/"+url.PathEscape(slug), nil, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // response body

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("get %q: %w", slug, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, "get document")
	}

	var body documentBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("get document: decode response: %w", err)
	}
	return body.toDocument(), nil
}

// CreateDocument submits a draft as JSON. Any non-success status maps
// to domain.ErrSaveRejected so callers can surface the save alert.
func (c *Client) CreateDocument(ctx context.Context, draft domain.Draft) (*domain.Document, error) {
	payload := createBody{
		Title:    draft.Title,
		Category: string(draft.Category),
		Content:  draft.Content,
		Tags:     draft.Tags(),
	}
	if draft.CoverImage != "" {
		cover := draft.CoverImage
		payload.CoverImage = &cover
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("create document: encode payload: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/docs", nil, bytes.NewReader(data), "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // response body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("create document: backend returned status %d: %w",
			resp.StatusCode, domain.ErrSaveRejected)
	}

	// The backend returns the created document, but only the success
	// status is contractual. Fall back to echoing the draft.
	var body documentBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &domain.Document{
			DocumentSummary: domain.DocumentSummary{
				Title:      draft.Title,
				Category:   draft.Category,
				Tags:       draft.Tags(),
				CoverImage: draft.CoverImage,
			},
			Content: draft.Content,
		}, nil
	}
	return body.toDocument(), nil
}

// UploadFile uploads a file as multipart form data (field "file") and
// returns the reference the backend assigned.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("upload: build form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("upload: read file: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("upload: finalise form: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/upload", nil, &buf, form.FormDataContentType())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // response body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload: backend returned status %d: %w",
			resp.StatusCode, domain.ErrUploadRejected)
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("upload: decode response: %w", err)
	}
	return body.DataURL, nil
}

// do performs a throttled request with a correlation ID.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s %s: rate limit wait: %w", method, path, err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logger.Debug("%s %s (request-id=%s)", method, u, requestID)
	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Error("%s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrBackendUnavailable, err)
	}

	logger.Debug("%s %s -> %d", method, path, resp.StatusCode)
	return resp, nil
}

// statusError drains the body and reports an unexpected status.
func (c *Client) statusError(resp *http.Response, op string) error {
	_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // draining
	return fmt.Errorf("%s: backend returned status %d", op, resp.StatusCode)
}
