package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	pathRoot            = "/"
	pathAnalyze         = "/analyze"
	pathInsights        = "/insights"
	pathSupportServices = "/support-services"
	pathROI             = "/roi"
	pathCompare         = "/compare"

	// RequestIDHeader carries a per-call identifier used to correlate logs.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to the career outcomes backend.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client (tests use the httptest one).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout sets a client-wide timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		clone := *c.http
		clone.Timeout = timeout
		c.http = &clone
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if agent != "" {
			c.userAgent = agent
		}
	}
}

// New returns a Client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		userAgent: "careerscout",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping issues GET / and succeeds on any 2xx status.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, pathRoot, nil, nil, nil)
}

// Analyze posts a degree/year pair and returns the outcome analysis.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	var out AnalyzeResponse
	if err := c.do(ctx, http.MethodPost, pathAnalyze, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Insights asks the backend a free-text question.
func (c *Client) Insights(ctx context.Context, question string) (*InsightsResponse, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.New("question cannot be empty")
	}
	var out InsightsResponse
	query := url.Values{"q": []string{question}}
	if err := c.do(ctx, http.MethodGet, pathInsights, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SupportServices lists the support index of every known institution.
func (c *Client) SupportServices(ctx context.Context) (*SupportServicesResponse, error) {
	var out SupportServicesResponse
	if err := c.do(ctx, http.MethodGet, pathSupportServices, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ROI requests the return-on-investment estimate for one program.
func (c *Client) ROI(ctx context.Context, req ROIRequest) (*ROIResponse, error) {
	var out ROIResponse
	if err := c.do(ctx, http.MethodPost, pathROI, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Compare requests a side-by-side comparison of two institutions.
func (c *Client) Compare(ctx context.Context, req CompareRequest) (*CompareResponse, error) {
	var out CompareResponse
	if err := c.do(ctx, http.MethodPost, pathCompare, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[api] %s %s id=%s transport error after %s: %v", method, path, requestID, time.Since(started), err)
		return &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()
	log.Printf("[api] %s %s id=%s status=%d duration=%s", method, path, requestID, resp.StatusCode, time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return nil
}
