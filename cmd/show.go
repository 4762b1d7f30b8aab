package cmd

import (
	"context"
	"errors"
	"fmt"

	"nbcli/internal/cli"
	"nbcli/internal/netbox"

	"github.com/spf13/cobra"
)

// newShowCmd creates the command that displays exactly one object.
func newShowCmd() *cobra.Command {
	return cli.NewCommand(cli.Spec{
		Use:   "show <model> [lookup] [key=value...]",
		Short: "Show a single object",
		Long: `Show a single object of the given model.

The optional lookup value is matched against the model's lookup field
(see 'nbcli info --models'). key=value pairs are passed to the API as
filters; repeating a key matches any of the values. The query must match
exactly one object.`,
		Example: `  nbcli show device edge01
  nbcli show ip 10.0.0.1/24 --view detail
  nbcli show device site=nyc rack=r1 --cols name,status`,
		Args:     cobra.MinimumNArgs(1),
		WithView: true,
		Run:      runShow,
	})
}

func runShow(ctx context.Context, c *cli.Context) error {
	res, query, err := modelQuery(c, 1)
	if err != nil {
		return err
	}
	if len(query) == 0 {
		return cli.Usagef("show needs a lookup value or key=value filters")
	}

	c.Logger.Info("Fetching %s with %s", res.Locator, describeQuery(query))
	record, err := c.Session.Get(ctx, res.Locator, query)
	switch {
	case errors.Is(err, netbox.ErrNotFound), errors.Is(err, netbox.ErrMultipleResults):
		return fmt.Errorf("%s %s: %w", res.Alias, describeQuery(query), err)
	case err != nil:
		return err
	}
	return c.Print(record)
}
