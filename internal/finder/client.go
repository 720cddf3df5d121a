package finder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// EvidenceSearcher defines the interface for talking to the Evidence Finder API.
// This interface is implemented by *Client and can be used for testing.
type EvidenceSearcher interface {
	FetchSourceTypes(ctx context.Context) ([]SourceTypeOption, error)
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	FetchHealth(ctx context.Context) (*HealthResponse, error)
}

// Ensure Client implements EvidenceSearcher at compile time.
var _ EvidenceSearcher = (*Client)(nil)

// Client talks to the Evidence Finder HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:8000"
	defaultUserAgent = "sleuth/0.1"

	// Searches fan out to an upstream search provider and an analysis model,
	// so the timeout is far looser than a typical local API call.
	requestTimeout = 60 * time.Second
)

// APIError reports a non-2xx response from the API. Detail carries the
// server's JSON "detail" field when the body had one.
type APIError struct {
	Path   string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
}

// NewClient builds a Client using the provided api_base host:port value.
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchSourceTypes retrieves the catalog of selectable source-type filters.
func (c *Client) FetchSourceTypes(ctx context.Context) ([]SourceTypeOption, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SourceTypesResponse
	if err := c.do(ctx, http.MethodGet, "/api/source-types", nil, &payload); err != nil {
		return nil, err
	}
	return payload.SourceTypes, nil
}

// Search submits a claim or question and returns the evidence the service found.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchHealth pings the service health endpoint.
func (c *Client) FetchHealth(ctx context.Context) (*HealthResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Path: path, Status: resp.StatusCode}
		// FastAPI-style error bodies carry {"detail": "..."}; surface it
		// when present, ignore bodies that are not JSON.
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = strings.TrimSpace(detail.Detail)
		}
		return apiErr
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
