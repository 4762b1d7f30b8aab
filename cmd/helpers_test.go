package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"nbcli/internal/cli"
	"nbcli/internal/config"
	"nbcli/internal/netbox"
	"nbcli/internal/view"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type sessionCall struct {
	locator string
	query   url.Values
}

// fakeSession serves records from memory and fails Status a fixed number of
// times before answering.
type fakeSession struct {
	records        map[string][]*netbox.Record
	status         *netbox.Record
	statusFailures int

	gets        []sessionCall
	filters     []sessionCall
	statusCalls int
}

func (f *fakeSession) BaseURL() string { return "https://netbox.test" }

func (f *fakeSession) Get(_ context.Context, locator string, query url.Values) (*netbox.Record, error) {
	f.gets = append(f.gets, sessionCall{locator: locator, query: query})
	matches := f.match(locator, query)
	switch len(matches) {
	case 0:
		return nil, netbox.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, netbox.ErrMultipleResults
	}
}

func (f *fakeSession) Filter(_ context.Context, locator string, query url.Values) ([]*netbox.Record, error) {
	f.filters = append(f.filters, sessionCall{locator: locator, query: query})
	return f.match(locator, query), nil
}

func (f *fakeSession) Status(context.Context) (*netbox.Record, error) {
	f.statusCalls++
	if f.statusFailures > 0 {
		f.statusFailures--
		return nil, &url.Error{Op: "Get", URL: "https://netbox.test/api/status/", Err: errors.New("dial tcp: connection refused")}
	}
	return f.status, nil
}

func (f *fakeSession) match(locator string, query url.Values) []*netbox.Record {
	var matches []*netbox.Record
	for _, r := range f.records[locator] {
		if recordMatches(r, query) {
			matches = append(matches, r)
		}
	}
	return matches
}

func recordMatches(r *netbox.Record, query url.Values) bool {
	for key, values := range query {
		got := view.Lookup(r, key)
		found := false
		for _, v := range values {
			if got == v {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func device(id int, name, site string) *netbox.Record {
	return netbox.NewRecord("dcim.devices",
		view.Field{Name: "id", Value: id},
		view.Field{Name: "name", Value: name},
		view.Field{Name: "status", Value: "active"},
		view.Field{Name: "site", Value: site},
	)
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		records: map[string][]*netbox.Record{
			"dcim.devices": {
				device(1, "edge01", "nyc"),
				device(2, "edge02", "nyc"),
				device(3, "core01", "lon"),
			},
		},
		status: netbox.NewRecord("status", view.Field{Name: "netbox-version", Value: "4.0.1"}),
	}
}

// setupEnv isolates the nbcli directory, disables colors and installs
// session as the session of every command. It returns the nbcli directory.
func setupEnv(t *testing.T, session netbox.Session) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDir, dir)

	text.DisableColors()
	t.Cleanup(text.EnableColors)

	original := cli.SessionFactory
	cli.SessionFactory = func(config.Config) (netbox.Session, error) { return session, nil }
	t.Cleanup(func() { cli.SessionFactory = original })
	return dir
}

func writeUserConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user_config.yml"), []byte(content), 0o600))
}

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
