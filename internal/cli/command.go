package cli

import (
	"context"
	"io"

	"nbcli/internal/config"
	"nbcli/internal/netbox"
	"nbcli/internal/render"
	"nbcli/pkg/logging"

	"github.com/spf13/cobra"
)

// SessionFactory opens the API session a command runs against.
var SessionFactory = func(cfg config.Config) (netbox.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return netbox.NewClient(netbox.Options{
		URL:                cfg.URL,
		Token:              cfg.Token,
		Timeout:            cfg.Timeout,
		InsecureSkipVerify: !cfg.SSLVerify,
	})
}

// Spec declares a command. NewCommand turns it into a cobra command that
// parses the common flags, builds a Context and calls Run.
type Spec struct {
	Use     string
	Short   string
	Long    string
	Example string
	Args    cobra.PositionalArgs

	// WithView registers --view, --cols and --nh and builds a Printer.
	WithView bool
	// NoSession skips opening the API session up front. Run can still call
	// Context.OpenSession.
	NoSession bool
	// NoConfig skips loading the configuration file; Context.Config holds the
	// defaults.
	NoConfig bool
	// Flags registers command specific flags.
	Flags func(cmd *cobra.Command)
	// Run is the command body.
	Run func(ctx context.Context, c *Context) error
}

// Context is everything a command body needs. Positional tokens and
// key=value pairs are available as Args and KWArgs.
type Context struct {
	KWArgsResult

	// Name is the command name, used as the logging subsystem.
	Name string
	// ConfigPath is the value of --config, empty for the default file.
	ConfigPath string

	Config  config.Config
	Session netbox.Session
	Logger  logging.Logger
	// Printer is nil unless the command was declared WithView.
	Printer *render.Printer
	Out     io.Writer
	Err     io.Writer
	Command *cobra.Command

	logLevel logging.LogLevel
	closeLog func() error
}

// Close releases the log file opened for the invocation and sends further
// records to Err.
func (c *Context) Close() error {
	if c.closeLog == nil {
		return nil
	}
	err := c.closeLog()
	c.closeLog = nil
	logging.Init(c.logLevel, c.Err)
	return err
}

// OpenSession returns the session, opening it on first use.
func (c *Context) OpenSession() (netbox.Session, error) {
	if c.Session != nil {
		return c.Session, nil
	}
	session, err := SessionFactory(c.Config)
	if err != nil {
		return nil, err
	}
	c.Session = session
	return session, nil
}

// Print renders result to Out.
func (c *Context) Print(result any) error {
	printer := c.Printer
	if printer == nil {
		printer = render.NewPrinter(nil, render.Options{})
	}
	return printer.Print(c.Out, result)
}

// NewCommand builds the cobra command described by spec.
func NewCommand(spec Spec) *cobra.Command {
	var common CommonFlags
	var viewFlags *ViewFlags

	cmd := &cobra.Command{
		Use:     spec.Use,
		Short:   spec.Short,
		Long:    spec.Long,
		Example: spec.Example,
	}
	if spec.Args != nil {
		cmd.Args = func(cmd *cobra.Command, args []string) error {
			if err := spec.Args(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		}
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	RegisterCommonFlags(cmd, &common)
	if spec.WithView {
		viewFlags = &ViewFlags{}
		RegisterViewFlags(cmd, viewFlags)
	}
	if spec.Flags != nil {
		spec.Flags(cmd)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := newContext(cmd, spec, &common, viewFlags, args)
		if err != nil {
			return err
		}
		defer func() {
			if err := c.Close(); err != nil {
				c.Logger.Warn("Failed to close log file: %v", err)
			}
		}()
		c.Logger.Debug("args=%q keywords=%q", c.Args, c.Keys())

		err = spec.Run(cmd.Context(), c)
		if err != nil && c.Session != nil {
			err = ClassifyConnectionError(err, c.Session.BaseURL())
		}
		return err
	}
	return cmd
}

// newContext loads the configuration, initializes logging and opens the
// session for one invocation.
func newContext(cmd *cobra.Command, spec Spec, common *CommonFlags, viewFlags *ViewFlags, args []string) (*Context, error) {
	level := common.LogLevel()
	logging.Init(level, cmd.ErrOrStderr())

	cfg := config.Default()
	if !spec.NoConfig {
		var err error
		if cfg, err = config.Load(common.ConfigPath); err != nil {
			return nil, err
		}
	}

	c := &Context{
		KWArgsResult: ParseKWArgs(args),
		Name:         cmd.Name(),
		ConfigPath:   common.ConfigPath,
		Config:       cfg,
		Logger:       logging.For(cmd.Name()),
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
		Command:      cmd,
		logLevel:     level,
	}
	if cfg.LogFile != "" {
		var out io.Writer
		out, c.closeLog = logging.Output(cfg.LogFile)
		logging.Init(level, out)
	}
	if viewFlags != nil {
		c.Printer = render.NewPrinter(nil, viewFlags.Options())
	}
	if !spec.NoSession {
		if _, err := c.OpenSession(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}
