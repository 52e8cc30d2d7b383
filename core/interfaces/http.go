package interfaces

import (
	"context"
	"io"
	"net/http"
)

// HTTPClient defines the interface for executing HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations (standard library, instrumented, etc.)
type HTTPClient interface {
	// Do executes a request with the given method, URL, headers and body.
	// header and body may be nil. Returns a Response interface or an error
	// when no response was received at all (transport failure).
	Do(ctx context.Context, method, url string, header http.Header, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
