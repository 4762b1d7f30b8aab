package netbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{URL: srv.URL + "/", Token: "secret"})
	require.NoError(t, err)
	return c, srv
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Options{})
	assert.ErrorContains(t, err, "not configured")

	_, err = NewClient(Options{URL: "ftp://nb.example.com"})
	assert.ErrorContains(t, err, "scheme")

	c, err := NewClient(Options{URL: "https://nb.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "https://nb.example.com", c.BaseURL())
}

func TestClient_Filter_Paginates(t *testing.T) {
	var srvURL string
	c, srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dcim/devices/", r.URL.Path)
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		switch r.URL.Query().Get("offset") {
		case "":
			assert.Equal(t, "dc1", r.URL.Query().Get("site"))
			fmt.Fprintf(w, `{"count": 3, "next": "%s/api/dcim/devices/?offset=2&site=dc1", "previous": null, "results": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]}`, srvURL)
		case "2":
			fmt.Fprint(w, `{"count": 3, "next": null, "previous": null, "results": [{"id": 3, "name": "c"}]}`)
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	})
	srvURL = srv.URL

	records, err := c.Filter(context.Background(), "dcim.devices", url.Values{"site": {"dc1"}})
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, r := range records {
		locator, ok := r.TypeLocator()
		assert.True(t, ok)
		assert.Equal(t, "dcim.devices", locator)
		name, _ := r.Field("name")
		assert.Equal(t, string(rune('a'+i)), name)
	}
}

func TestClient_Get(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/ipam/ip-addresses/9/":
			fmt.Fprint(w, `{"id": 9, "address": "10.0.0.1/24"}`)
		case r.URL.Query().Get("address") == "10.0.0.2/24":
			fmt.Fprint(w, `{"count": 1, "next": null, "results": [{"id": 10, "address": "10.0.0.2/24"}]}`)
		case r.URL.Query().Get("address") == "missing":
			fmt.Fprint(w, `{"count": 0, "next": null, "results": []}`)
		default:
			fmt.Fprint(w, `{"count": 2, "next": null, "results": [{"id": 1}, {"id": 2}]}`)
		}
	})
	ctx := context.Background()

	r, err := c.Get(ctx, "ipam.ip_addresses", url.Values{"id": {"9"}})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1/24", r.Label())

	r, err = c.Get(ctx, "ipam.ip_addresses", url.Values{"address": {"10.0.0.2/24"}})
	require.NoError(t, err)
	id, _ := r.Field("id")
	assert.Equal(t, json.Number("10"), id)

	_, err = c.Get(ctx, "ipam.ip_addresses", url.Values{"address": {"missing"}})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Get(ctx, "ipam.ip_addresses", url.Values{"status": {"active"}})
	assert.ErrorIs(t, err, ErrMultipleResults)
}

func TestClient_APIError(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"detail": "Invalid token"}`)
	})

	_, err := c.Filter(context.Background(), "dcim.sites", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Invalid token", apiErr.Detail)
	assert.Contains(t, err.Error(), "Invalid token")
}

func TestClient_APIError_PlainBody(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := c.Status(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream down", apiErr.Detail)
}

func TestClient_Status(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/status/", r.URL.Path)
		fmt.Fprint(w, `{"django-version": "5.0.9", "netbox-version": "4.1.3", "plugins": {}}`)
	})

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	version, _ := status.Field("netbox-version")
	assert.Equal(t, "4.1.3", version)
}

func TestDecodePage_BareList(t *testing.T) {
	records, next, err := decodePage([]byte(`[{"id": 1}, {"id": 2}]`), "extras.tags")
	require.NoError(t, err)
	assert.Empty(t, next)
	assert.Len(t, records, 2)

	_, _, err = decodePage([]byte(`{"count": 1}`), "extras.tags")
	assert.ErrorContains(t, err, "no results")

	_, _, err = decodePage([]byte(`[1]`), "extras.tags")
	assert.ErrorContains(t, err, "objects")
}

func TestDecodePage_Envelope(t *testing.T) {
	data := `{"count": 3, "next": "https://nb.example/api/extras/tags/?offset=2", "previous": null,
		"results": [{"id": 1, "name": "a\/b"}, {"id": 2, "meta": {"k": [1, 2]}}]}`
	records, next, err := decodePage([]byte(data), "extras.tags")
	require.NoError(t, err)
	assert.Equal(t, "https://nb.example/api/extras/tags/?offset=2", next)
	require.Len(t, records, 2)
	assert.Equal(t, "a/b", records[0].Label())
	locator, _ := records[1].TypeLocator()
	assert.Equal(t, "extras.tags", locator)

	records, next, err = decodePage([]byte(`{"results": [], "next": null}`), "extras.tags")
	require.NoError(t, err)
	assert.Empty(t, next)
	assert.Empty(t, records)

	_, _, err = decodePage([]byte(`{"results": {}}`), "extras.tags")
	assert.ErrorContains(t, err, "no results")

	_, _, err = decodePage([]byte(`{"results": [] `), "extras.tags")
	assert.ErrorContains(t, err, "failed to decode response")
}
