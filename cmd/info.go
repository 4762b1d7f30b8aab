package cmd

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"nbcli/internal/cli"
	"nbcli/internal/config"
	"nbcli/internal/netbox"
	"nbcli/internal/render"
	"nbcli/internal/resources"
	"nbcli/internal/view"
	nbstrings "nbcli/pkg/strings"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const (
	// modelsAll is the value of a bare --models.
	modelsAll = "all"
	// statusOff is the value of --status when the flag is absent.
	statusOff = -1
)

type infoOptions struct {
	detailed bool
	models   string
	status   int
}

// newInfoCmd creates the command that describes the nbcli installation.
func newInfoCmd() *cobra.Command {
	opts := infoOptions{status: statusOff}
	return cli.NewCommand(cli.Spec{
		Use:   "info",
		Short: "Display information about the nbcli instance",
		Long: `Display version information about nbcli and the configured server.

--models lists the supported models, or describes one model when given an
alias. --status polls the server status endpoint, retrying for up to
RETRY_SEC seconds.`,
		Example: `  nbcli info
  nbcli info --detailed
  nbcli info --models
  nbcli info --models=device
  nbcli info --status=60`,
		Args:      cobra.NoArgs,
		NoSession: true,
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "Show more detailed info")
			cmd.Flags().StringVar(&opts.models, "models", "", "List supported models, or describe the given model")
			cmd.Flags().Lookup("models").NoOptDefVal = modelsAll
			cmd.Flags().IntVar(&opts.status, "status", statusOff, "Check the server status, retrying for RETRY_SEC seconds")
			cmd.Flags().Lookup("status").NoOptDefVal = "0"
			cmd.MarkFlagsMutuallyExclusive("detailed", "models", "status")
		},
		Run: func(ctx context.Context, c *cli.Context) error {
			switch {
			case opts.status > statusOff:
				return runInfoStatus(ctx, c, time.Duration(opts.status)*time.Second)
			case opts.models == modelsAll:
				return runInfoModels(c)
			case opts.models != "":
				return runInfoModel(c, opts.models)
			default:
				return runInfoVersions(ctx, c, opts.detailed)
			}
		},
	})
}

// runInfoStatus polls the status endpoint until it answers or retry has
// elapsed. A zero retry makes a single attempt.
func runInfoStatus(ctx context.Context, c *cli.Context, retry time.Duration) error {
	session, err := c.OpenSession()
	if err != nil {
		return err
	}

	interval := c.Config.StatusInterval
	if interval <= 0 {
		interval = config.DefaultStatusInterval
	}
	deadline := time.Now().Add(retry)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = c.Err
	s.Suffix = fmt.Sprintf(" Waiting for %s...", session.BaseURL())
	defer s.Stop()

	for {
		status, err := session.Status(ctx)
		if err == nil {
			s.Stop()
			return render.WriteYAML(c.Out, status)
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			s.Stop()
			c.Logger.Critical(err, "No response from %q", session.BaseURL())
			return fmt.Errorf("no response from %q: %w", session.BaseURL(), err)
		}
		c.Logger.Warn("No response from %q, trying for %s more", session.BaseURL(), remaining.Round(time.Second))
		s.Start()

		wait := interval
		if remaining < wait {
			wait = remaining
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// runInfoModels lists every supported model.
func runInfoModels(c *cli.Context) error {
	t := cli.NewTable(c.Out, "Model", "Lookup", "Endpoint")
	for _, res := range resources.Default().All() {
		t.AppendRow(table.Row{res.Alias, res.Lookup, res.Path()})
	}
	t.Render()
	return nil
}

// runInfoModel describes one model.
func runInfoModel(c *cli.Context, name string) error {
	res, ok := resources.Default().Get(name)
	if !ok {
		return unsupportedModel(name)
	}

	endpoint := "/api/" + netbox.EndpointPath(res.Locator)
	if c.Config.URL != "" {
		endpoint = strings.TrimRight(c.Config.URL, "/") + endpoint
	}

	fmt.Fprintf(c.Out, "\nModel: %s\nLookup: %s\nView Name: %s\nAPI Endpoint: %s\n\n",
		res.Alias, res.Lookup, view.Default().ViewName(res.Locator), endpoint)
	return nil
}

// runInfoVersions prints the client and server versions, and with detailed
// the nbcli directory and NBCLI_* environment.
func runInfoVersions(ctx context.Context, c *cli.Context, detailed bool) error {
	session, err := c.OpenSession()
	if err != nil {
		return err
	}
	status, err := session.Status(ctx)
	if err != nil {
		return err
	}
	serverVersion, _ := status.Field("netbox-version")

	fmt.Fprintf(c.Out, "\nnbcli version: %s\nNetBox version: %s\nGo version: %s\n\n",
		GetVersion(), view.Stringify(serverVersion), runtime.Version())

	if !detailed {
		return nil
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "nbcli dir: %s\n", dir)
	if c.Config.Path != "" {
		fmt.Fprintf(c.Out, "config file: %s\n", c.Config.Path)
	}
	fmt.Fprintln(c.Out)

	vars := config.EnvVars()
	if len(vars) == 0 {
		return nil
	}
	fmt.Fprintln(c.Out, "nbcli environment variables:")
	t := cli.NewTable(c.Out, "Variable", "Value")
	for _, v := range vars {
		value := v.Value
		if v.Name == config.EnvToken && value != "" {
			value = "<redacted>"
		}
		t.AppendRow(table.Row{v.Name, nbstrings.Truncate(value, nbstrings.DefaultMaxLen)})
	}
	t.Render()
	return nil
}
