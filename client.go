package vxmcp

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

	"github.com/google/uuid"

	"github.com/vx-nyc/vx-mcp/internal/backoff"
)

const apiKeyHeader = "X-API-Key"

// Client is a typed client for the vx memory-storage API. Every operation
// runs through a resilient request pipeline with bounded retries, per-attempt
// timeouts and a normalized error taxonomy. A Client is immutable after
// construction and safe for concurrent use.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	source        string
	maxRetries    int
	retryDelay    time.Duration
	maxRetryDelay time.Duration
	timeout       time.Duration
	logger        Logger
	metrics       *MetricsCollector
	requestIDGen  func() string
}

// New constructs a Client for the service at baseURL, authenticated with
// apiKey, applying the provided functional options. The base URL is
// normalized (trailing slash stripped) and the configuration validated; an
// invalid configuration is reported as a VALIDATION_ERROR.
func New(baseURL, apiKey string, options ...Option) (*Client, error) {
	client := &Client{
		httpClient:   &http.Client{},
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		source:       "vx-mcp",
		maxRetries:   3,
		retryDelay:   time.Second,
		timeout:      30 * time.Second,
		requestIDGen: uuid.NewString,
	}

	for _, option := range options {
		option(client)
	}

	if err := client.validateConfiguration(); err != nil {
		return nil, err
	}

	return client, nil
}

// do executes one logical operation: marshal the body, run the bounded
// attempt loop and decode the result into out. Out may be nil for operations
// with empty success bodies.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return newError(CodeUnknown, "encoding request body", err)
		}
	}

	requestID := c.requestIDGen()
	endpoint := metricsEndpoint(path)

	var last *ClientError
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.metrics.RecordRetry(method, endpoint, attempt)
		}

		data, cerr := c.attempt(ctx, method, path, payload, requestID)
		if cerr == nil {
			if out == nil || len(data) == 0 {
				return nil
			}
			if err := json.Unmarshal(data, out); err != nil {
				return newError(CodeUnknown, "malformed response body", err)
			}
			return nil
		}

		last = cerr
		c.metrics.RecordError(cerr.Code, method, endpoint)

		if !cerr.Retryable || attempt == c.maxRetries {
			if c.logger != nil {
				c.logger.Error("request failed", "requestID", requestID, "method", method, "path", path, "code", cerr.Code, "attempt", attempt)
			}
			return cerr
		}

		delay := c.nextDelay(attempt, cerr)
		if c.logger != nil {
			c.logger.Info("scheduling retry", "requestID", requestID, "method", method, "path", path, "attempt", attempt+1, "backoff", delay)
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return classifyTransport(ctx.Err())
		}
	}

	// Unreachable: the loop always returns on success, terminal failure or
	// the final attempt.
	if last != nil {
		return last
	}
	return newError(CodeUnknown, "request loop exited without a result", nil)
}

// attempt performs a single HTTP exchange bounded by the per-attempt timeout
// and returns the raw response body or a classified failure. The timeout
// aborts only this attempt; retry eligibility is evaluated by the caller.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, requestID string) ([]byte, *ClientError) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, newError(CodeUnknown, "building request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("X-Memory-Source", c.source)
	req.Header.Set("X-Request-ID", requestID)

	if c.logger != nil {
		c.logger.Debug("starting attempt", "requestID", requestID, "method", method, "path", path)
	}

	endpoint := metricsEndpoint(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordRequest(method, endpoint, 0, time.Since(start))
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	c.metrics.RecordRequest(method, endpoint, resp.StatusCode, duration)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, data, resp.Header)
	}

	return data, nil
}

// metricsEndpoint strips the query string off a request path so listing
// filters do not explode metric label cardinality.
func metricsEndpoint(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

// nextDelay computes the wait before the next attempt: a server-requested
// Retry-After wins over exponential backoff.
func (c *Client) nextDelay(attempt int, cerr *ClientError) time.Duration {
	if cerr.retryAfter > 0 {
		return cerr.retryAfter
	}
	return backoff.Exponential(attempt, c.retryDelay, c.maxRetryDelay)
}

// validateConfiguration collects every configuration violation into a single
// VALIDATION_ERROR.
func (c *Client) validateConfiguration() error {
	var problems []string

	parsed, err := url.Parse(c.baseURL)
	switch {
	case c.baseURL == "":
		problems = append(problems, "baseURL is required")
	case err != nil:
		problems = append(problems, fmt.Sprintf("baseURL is not a valid URL: %v", err))
	case parsed.Scheme != "http" && parsed.Scheme != "https":
		problems = append(problems, "baseURL must use http or https")
	case parsed.Host == "":
		problems = append(problems, "baseURL must be an absolute URL")
	}

	if c.apiKey == "" {
		problems = append(problems, "apiKey is required")
	}
	if c.maxRetries < 0 {
		problems = append(problems, "maxRetries must be non-negative")
	}
	if c.retryDelay <= 0 {
		problems = append(problems, "retryDelay must be positive")
	}
	if c.maxRetryDelay < 0 {
		problems = append(problems, "maxRetryDelay must be non-negative")
	}
	if c.timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	if c.httpClient == nil {
		problems = append(problems, "HTTP client cannot be nil")
	}
	if c.requestIDGen == nil {
		problems = append(problems, "request ID generator cannot be nil")
	}

	if len(problems) > 0 {
		return newError(CodeValidation, "configuration validation failed: "+strings.Join(problems, "; "), nil)
	}
	return nil
}
