package netbox

import (
	"context"
	"net/url"
)

// Session is what commands need from the remote API.
type Session interface {
	// BaseURL identifies the server in diagnostics.
	BaseURL() string
	// Get returns the single object of locator matching query.
	Get(ctx context.Context, locator string, query url.Values) (*Record, error)
	// Filter returns every object of locator matching query, following pagination.
	Filter(ctx context.Context, locator string, query url.Values) ([]*Record, error)
	// Status returns the server status document.
	Status(ctx context.Context) (*Record, error)
}
