package cmd

import (
	"context"
	"fmt"
	"os"

	"nbcli/internal/cli"
	"nbcli/internal/config"

	"github.com/spf13/cobra"
)

// newInitCmd creates the command that writes a template configuration file.
func newInitCmd() *cobra.Command {
	var force bool
	return cli.NewCommand(cli.Spec{
		Use:   "init",
		Short: "Create the nbcli user configuration",
		Long: `Write a template configuration file to ~/.nbcli/user_config.yml, or to
the file given with --config. An existing file is kept unless --force is set.`,
		Args:      cobra.NoArgs,
		NoConfig:  true,
		NoSession: true,
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
		},
		Run: func(_ context.Context, c *cli.Context) error {
			path := c.ConfigPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			_, statErr := os.Stat(path)
			exists := statErr == nil
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			if exists {
				fmt.Fprintln(c.Err, cli.FormatWarning(fmt.Sprintf("Overwrote existing configuration at %s", path)))
			}
			c.Logger.Info("Wrote configuration template to %s", path)
			fmt.Fprintln(c.Out, cli.FormatSuccess(fmt.Sprintf("Configuration written to %s", path)))
			fmt.Fprintln(c.Out, "Edit the url and token settings before running other commands.")
			return nil
		},
	})
}
