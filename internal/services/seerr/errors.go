package seerr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RequestError is returned when the server answers with a status >= 400.
// Error() is the server's message, or a generic fallback when it sent none.
type RequestError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *RequestError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether the credential was rejected
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether the resource does not exist
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func newRequestError(method, path string, statusCode int, body []byte) *RequestError {
	var payload struct {
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = strings.TrimSpace(payload.Message)
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
	}

	return &RequestError{
		StatusCode: statusCode,
		Message:    message,
		Method:     method,
		Path:       path,
	}
}

// AggregationError reports the item whose lookup aborted a fan-out.
// No partial results accompany it.
type AggregationError struct {
	Index int
	Total int
	Err   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("lookup %d of %d failed: %v", e.Index+1, e.Total, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
