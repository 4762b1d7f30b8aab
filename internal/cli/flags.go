package cli

import (
	"nbcli/internal/render"
	"nbcli/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*render.ViewKind)(nil)

// CommonFlags holds the flags every nbcli command accepts.
type CommonFlags struct {
	// ConfigPath points at an alternative configuration file.
	ConfigPath string
	// Verbose counts -v occurrences.
	Verbose int
	// Quiet counts -q occurrences.
	Quiet int
}

// RegisterCommonFlags registers the flags shared by all commands:
//   - --config/-c: Configuration file (default ~/.nbcli/user_config.yml)
//   - --verbose/-v: Raise log verbosity, repeatable
//   - --quiet/-q: Lower log verbosity, repeatable
//
// --verbose and --quiet cannot be combined.
func RegisterCommonFlags(cmd *cobra.Command, flags *CommonFlags) {
	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "Configuration file (default ~/.nbcli/user_config.yml)")
	cmd.Flags().CountVarP(&flags.Verbose, "verbose", "v", "Show more log output (-v info, -vv debug)")
	cmd.Flags().CountVarP(&flags.Quiet, "quiet", "q", "Show less log output (-q error, -qq critical, -qqq none)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// LogLevel maps the verbosity counters to a log level.
func (f *CommonFlags) LogLevel() logging.LogLevel {
	return logging.LevelFromVerbosity(f.Verbose, f.Quiet)
}

// ViewFlags holds the output flags of commands that render records.
type ViewFlags struct {
	// View selects the output path.
	View render.ViewKind
	// Cols overrides the displayed columns.
	Cols []string
	// NoHeader suppresses the table header.
	NoHeader bool
}

// RegisterViewFlags registers the output flags:
//   - --view: table (default), detail, json or yaml
//   - --cols: Comma separated columns to display instead of the view's own
//   - --nh/--no-header: Omit the header row
func RegisterViewFlags(cmd *cobra.Command, flags *ViewFlags) {
	flags.View = render.ViewTable
	cmd.Flags().Var(&flags.View, "view", "Output view (table, detail, json, yaml)")
	cmd.Flags().StringSliceVar(&flags.Cols, "cols", nil, "Columns to display, comma separated or repeated")
	cmd.Flags().BoolVar(&flags.NoHeader, "no-header", false, "Omit the header row")
	cmd.Flags().BoolVar(&flags.NoHeader, "nh", false, "Shorthand for --no-header")
}

// Options converts the flags into printer options.
func (f *ViewFlags) Options() render.Options {
	return render.Options{
		Kind:     f.View,
		Columns:  f.Cols,
		NoHeader: f.NoHeader,
	}
}
