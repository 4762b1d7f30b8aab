package cmd

import (
	"fmt"
	"os"
	"strings"

	"nbcli/internal/cli"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a failed command: API errors, empty results,
	// records that cannot be displayed.
	ExitCodeError = 1
	// ExitCodeUsage indicates invalid arguments or configuration.
	ExitCodeUsage = 2
)

// rootCmd represents the base command for the nbcli application.
var rootCmd = &cobra.Command{
	Use:   "nbcli",
	Short: "Query a NetBox server from the command line",
	Long: `nbcli queries the NetBox REST API and renders the results as aligned
tables, field/value details, JSON or YAML.

Models are addressed by alias (device, ip, prefix, ...); run
'nbcli info --models' for the full list. Positional key=value pairs are
passed to the API as filters.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	// Errors are printed by Execute together with their suggestions.
	SilenceErrors: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "nbcli version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.DescribeError(err))
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	if cli.IsUsageError(err) {
		return ExitCodeUsage
	}
	// cobra reports unknown commands and flag group conflicts as plain errors.
	msg := err.Error()
	if strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "if any flags in the group") {
		return ExitCodeUsage
	}
	return ExitCodeError
}

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
}
