package netbox

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Get when no object matches.
	ErrNotFound = errors.New("no matching object found")
	// ErrMultipleResults is returned by Get when the query is ambiguous.
	ErrMultipleResults = errors.New("query returned more than one object")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// URL is the request URL.
	URL string
	// Detail is the server's error message, when one could be extracted.
	Detail string
}

// Error returns the status and the server-provided detail.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

// Is allows errors.Is() to match any APIError.
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}
