package netbox

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nbcli/pkg/logging"

	"github.com/google/uuid"
)

const (
	// DefaultTimeout bounds every HTTP request.
	DefaultTimeout = 30 * time.Second
	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 64 << 10
	// statusLocator is the pseudo-locator of the status document.
	statusLocator = "status"
)

// Options configures a Client.
type Options struct {
	// URL is the server base URL, e.g. https://netbox.example.com.
	URL string
	// Token is the API token sent in the Authorization header.
	Token string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
	// HTTPClient overrides the HTTP client, mostly for tests.
	HTTPClient *http.Client
}

// Client is the HTTP implementation of Session.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
	log   logging.Logger
}

var _ Session = (*Client)(nil)

// NewClient validates opts and returns a ready Client.
func NewClient(opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("server URL is not configured")
	}
	base, err := url.Parse(strings.TrimRight(opts.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", opts.URL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", opts.URL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if opts.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via ssl_verify: false
		}
		httpClient = &http.Client{Timeout: timeout, Transport: transport}
	}

	return &Client{
		base:  base,
		token: opts.Token,
		http:  httpClient,
		log:   logging.For("session"),
	}, nil
}

// BaseURL implements Session.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// endpointURL returns the absolute list URL of locator.
func (c *Client) endpointURL(locator string) string {
	return c.base.String() + apiPathPrefix + EndpointPath(locator)
}

// Get implements Session. A query consisting of a single id is served from
// the object's detail URL.
func (c *Client) Get(ctx context.Context, locator string, query url.Values) (*Record, error) {
	if ids, ok := query["id"]; ok && len(query) == 1 && len(ids) == 1 {
		data, err := c.do(ctx, c.endpointURL(locator)+url.PathEscape(ids[0])+"/")
		if err != nil {
			return nil, err
		}
		return DecodeRecord(data, locator)
	}

	records, err := c.Filter(ctx, locator, query)
	if err != nil {
		return nil, err
	}
	switch len(records) {
	case 0:
		return nil, fmt.Errorf("%s %s: %w", locator, query.Encode(), ErrNotFound)
	case 1:
		return records[0], nil
	default:
		return nil, fmt.Errorf("%s %s: %w (%d results)", locator, query.Encode(), ErrMultipleResults, len(records))
	}
}

// Filter implements Session.
func (c *Client) Filter(ctx context.Context, locator string, query url.Values) ([]*Record, error) {
	next := c.endpointURL(locator)
	if len(query) > 0 {
		next += "?" + query.Encode()
	}

	var records []*Record
	for next != "" {
		data, err := c.do(ctx, next)
		if err != nil {
			return nil, err
		}
		page, nextURL, err := decodePage(data, locator)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		next = nextURL
	}
	return records, nil
}

// Status implements Session.
func (c *Client) Status(ctx context.Context) (*Record, error) {
	data, err := c.do(ctx, c.base.String()+apiPathPrefix+statusLocator+"/")
	if err != nil {
		return nil, err
	}
	return DecodeRecord(data, statusLocator)
}

func (c *Client) do(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	c.log.Debug("GET %s request_id=%s", rawURL, requestID)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, URL: rawURL, Detail: errorDetail(body)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}
	c.log.Debug("%s returned %d bytes", rawURL, len(data))
	return data, nil
}

// decodePage splits a paginated list response into records and the next URL.
// A bare array is accepted as a single page.
func decodePage(data []byte, locator string) ([]*Record, string, error) {
	dec := newDecoder(data)
	tok, err := firstToken(dec)
	if err != nil {
		return nil, "", err
	}

	var records []*Record
	var next string
	switch tok {
	case json.Delim('['):
		if records, err = decodeRecords(dec, locator); err != nil {
			return nil, "", fmt.Errorf("failed to decode response: %w", err)
		}
	case json.Delim('{'):
		if records, next, err = decodePageObject(dec, locator); err != nil {
			return nil, "", err
		}
	default:
		return nil, "", fmt.Errorf("expected a list response, got %s", tokenKind(tok))
	}
	if err := expectEnd(dec); err != nil {
		return nil, "", err
	}
	return records, next, nil
}

// decodePageObject reads the members of a paginated envelope.
func decodePageObject(dec *json.Decoder, locator string) ([]*Record, string, error) {
	var records []*Record
	var next string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode response: %w", err)
		}
		switch tok {
		case "results":
			tok, err := dec.Token()
			if err != nil {
				return nil, "", fmt.Errorf("failed to decode response: %w", err)
			}
			if tok != json.Delim('[') {
				return nil, "", fmt.Errorf("list response has no results array")
			}
			if records, err = decodeRecords(dec, locator); err != nil {
				return nil, "", fmt.Errorf("failed to decode response: %w", err)
			}
		case "next":
			v, err := decodeValue(dec)
			if err != nil {
				return nil, "", fmt.Errorf("failed to decode response: %w", err)
			}
			next, _ = v.(string)
		default:
			if _, err := decodeValue(dec); err != nil {
				return nil, "", fmt.Errorf("failed to decode response: %w", err)
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, "", fmt.Errorf("failed to decode response: %w", err)
	}
	if records == nil {
		return nil, "", fmt.Errorf("list response has no results array")
	}
	return records, next, nil
}

// errorDetail extracts the "detail" message of an error body, falling back to
// the trimmed body itself.
func errorDetail(body []byte) string {
	if r, err := DecodeRecord(body, ""); err == nil {
		if d, ok := r.Field("detail"); ok {
			if s, ok := d.(string); ok {
				return s
			}
		}
	}
	return strings.TrimSpace(string(body))
}
