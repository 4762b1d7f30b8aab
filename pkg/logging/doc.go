// Package logging provides the structured logger used by every nbcli command.
//
// The package wraps Go's standard slog package with a small, subsystem-oriented
// API. Each record carries a "subsystem" attribute naming the command or
// component that produced it.
//
// # Log Levels
//   - **Debug**: request tracing and parsed arguments
//   - **Info**: progress messages
//   - **Warn**: the default threshold
//   - **Error**: failed operations
//   - **Critical**: failures that end the current command
//   - **Silent**: suppresses everything
//
// The threshold is derived from the -v/-q counters with LevelFromVerbosity:
// every -q raises it by one level up to Silent, every -v lowers it down to
// Debug.
//
// # Usage
//
//	out, closeLog := logging.Output(cfg.LogFile)
//	defer closeLog()
//	logging.Init(logging.LevelFromVerbosity(verbose, quiet), out)
//
//	log := logging.For("show")
//	log.Debug("resolved model %s to %s", alias, locator)
//	log.Warn("No response from %q", baseURL)
//
// When a log file is configured, Output returns a size-rotated file writer
// instead of stderr so that rendered output on stdout is never interleaved
// with diagnostics.
package logging
