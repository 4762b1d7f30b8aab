package cmd

import (
	"context"
	"fmt"

	"nbcli/internal/cli"
	"nbcli/internal/netbox"

	"github.com/spf13/cobra"
)

type filterOptions struct {
	all   bool
	limit int
}

// newFilterCmd creates the command that lists objects matching a query.
func newFilterCmd() *cobra.Command {
	var opts filterOptions
	return cli.NewCommand(cli.Spec{
		Use:   "filter <model> [lookup...] [key=value...]",
		Short: "List objects matching a query",
		Long: `List every object of the given model matching the query.

Lookup values are matched against the model's lookup field and key=value
pairs are passed to the API as filters. Without either, --all is required
to list every object.`,
		Example: `  nbcli filter device site=nyc status=active
  nbcli filter prefix vrf=prod --view json
  nbcli filter vlan --all --limit 20 --nh`,
		Args:     cobra.MinimumNArgs(1),
		WithView: true,
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().BoolVar(&opts.all, "all", false, "List every object when no filter is given")
			cmd.Flags().IntVar(&opts.limit, "limit", 0, "Show at most this many objects (0 for no limit)")
		},
		Run: func(ctx context.Context, c *cli.Context) error {
			return runFilter(ctx, c, opts)
		},
	})
}

func runFilter(ctx context.Context, c *cli.Context, opts filterOptions) error {
	if opts.limit < 0 {
		return cli.Usagef("--limit must not be negative")
	}
	res, query, err := modelQuery(c, -1)
	if err != nil {
		return err
	}
	if len(query) == 0 && !opts.all {
		return cli.Usagef("filter needs lookup values, key=value filters or --all")
	}

	c.Logger.Info("Listing %s with %q", res.Locator, describeQuery(query))
	records, err := c.Session.Filter(ctx, res.Locator, query)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		if len(query) == 0 {
			return fmt.Errorf("no %s objects exist: %w", res.Alias, netbox.ErrNotFound)
		}
		return fmt.Errorf("no %s objects match %s: %w", res.Alias, describeQuery(query), netbox.ErrNotFound)
	}
	if opts.limit > 0 && len(records) > opts.limit {
		c.Logger.Info("Showing %d of %d objects", opts.limit, len(records))
		records = records[:opts.limit]
	}
	return c.Print(netbox.Resources(records))
}
