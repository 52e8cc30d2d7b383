// ABOUTME: Standard HTTP client implementation with GET retry support
// ABOUTME: Safe-to-repeat reads get exponential backoff; writes are sent once

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"barangay-app-client/core/interfaces"
)

const (
	maxRetries = 3
	userAgent  = "BarangayPortal/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using the standard
// library. A zero timeout means requests can wait on the server indefinitely;
// callers that need a deadline put one on the context.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// Pass 0 for no client-level timeout.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do executes a request. GETs are retried with exponential backoff on
// transport failures and 5xx responses; other methods are never repeated
// because their side effects may not be idempotent.
func (c *StandardHTTPClient) Do(ctx context.Context, method, url string, header http.Header, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if header != nil {
		req.Header = header.Clone()
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}

	if method != http.MethodGet {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		return &httpResponse{
			statusCode: resp.StatusCode,
			body:       resp.Body,
			headers:    resp.Header,
		}, nil
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
