// ABOUTME: Normalized error type produced for every request failure
// ABOUTME: One uniform shape regardless of whether the failure was transport or server side

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// CodeProfanityWarning is the structured error code the server attaches to
// comment and feedback submissions rejected by the moderation filter.
const CodeProfanityWarning = "PROFANITY_WARNING"

// NormalizedError is the uniform failure shape surfaced for any request error.
// Message is always non-empty. Status is non-zero only when the failure
// originated from a server response; transport and timeout failures leave it 0.
type NormalizedError struct {
	// Message is a human-readable description of the failure
	Message string

	// Status is the HTTP status code of the failed response, 0 for transport errors
	Status int

	// Code is the structured error code from the response body, if any
	Code string

	// Body is the raw response body for callers that need the original payload
	Body json.RawMessage

	// timeout marks failures caused by the client-side timer
	timeout bool
}

// Error implements the error interface.
func (e *NormalizedError) Error() string {
	return e.Message
}

// IsTimeout checks whether an error is a normalized client-side timeout.
func IsTimeout(err error) bool {
	var nerr *NormalizedError
	return errors.As(err, &nerr) && nerr.timeout
}

// IsAuthRequired checks whether an error means the caller must log in.
// Features surface these as a login prompt rather than a generic error.
func IsAuthRequired(err error) bool {
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		return false
	}
	return nerr.Status == http.StatusUnauthorized || nerr.Status == http.StatusForbidden
}

// IsModerationRejected checks for the moderation hard block: a 409 response
// carrying the profanity warning code. Terminal, no retry is offered.
func IsModerationRejected(err error) bool {
	var nerr *NormalizedError
	if !errors.As(err, &nerr) {
		return false
	}
	return nerr.Status == http.StatusConflict && nerr.Code == CodeProfanityWarning
}

// StatusOf returns the HTTP status of a normalized error, 0 otherwise.
func StatusOf(err error) int {
	var nerr *NormalizedError
	if errors.As(err, &nerr) {
		return nerr.Status
	}
	return 0
}

// Timeout builds the normalized error for a request that hit the client-side
// timer before the server responded.
func Timeout(origin string) *NormalizedError {
	return &NormalizedError{
		Message: fmt.Sprintf("Request timed out. Is the server at %s running?", origin),
		timeout: true,
	}
}
