// ABOUTME: Converts heterogeneous transport and server failures into NormalizedError
// ABOUTME: Total functions - any input yields a non-empty human-readable message

package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// FromTransport normalizes a failure that happened before any server response
// was received. Priority: timeout, then the raw network message, then the
// unknown-error fallback. Status stays 0 for all transport failures.
func FromTransport(err error, origin string) *NormalizedError {
	if err == nil {
		return &NormalizedError{Message: "An unknown error occurred"}
	}

	if isTimeoutErr(err) {
		return Timeout(origin)
	}

	return &NormalizedError{Message: "Error: " + err.Error()}
}

// FromResponse normalizes a non-2xx server response. A structured body with an
// "error" or "message" field wins; anything else falls back to the status line.
func FromResponse(status int, body []byte) *NormalizedError {
	nerr := &NormalizedError{
		Status: status,
		Body:   json.RawMessage(body),
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		// The "error" field doubles as a structured code (e.g. PROFANITY_WARNING).
		// When a separate message is present, the code stays in Code and the
		// message is what users see; otherwise the error text itself is shown.
		if payload.Error != "" && payload.Message != "" {
			nerr.Code = payload.Error
			nerr.Message = payload.Message
			return nerr
		}
		if payload.Error != "" {
			if looksLikeCode(payload.Error) {
				nerr.Code = payload.Error
			}
			nerr.Message = payload.Error
			return nerr
		}
		if payload.Message != "" {
			nerr.Message = payload.Message
			return nerr
		}
	}

	text := http.StatusText(status)
	if text == "" {
		text = "request failed"
	}
	nerr.Message = "Error: " + strconv.Itoa(status) + " " + text
	return nerr
}

func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

// looksLikeCode reports whether an "error" field value is a machine code like
// PROFANITY_WARNING rather than prose.
func looksLikeCode(s string) bool {
	if s == "" || strings.ContainsRune(s, ' ') {
		return false
	}
	return strings.ToUpper(s) == s
}
