// Package cli provides the command plumbing shared by every nbcli command.
//
// # Argument Grammar
//
// ParseKWArgs splits the positional tokens of a command line into plain
// positionals and key=value pairs. A token is a pair when it contains "=" after
// its first character, and is split on that first "=". Repeating a key turns
// its value into an ordered list:
//
//	nbcli filter device site=nyc tag=core tag=edge
//	  Args:   []
//	  KWArgs: site="nyc", tag=["core", "edge"]
//
// # Command Lifecycle
//
// NewCommand turns a Spec into a cobra command. Every command accepts the
// common flags (-c/--config, -v, -q); commands declared WithView also accept
// --view, --cols and --nh. When the command runs, the lifecycle:
//
//  1. initializes logging from the -v/-q counters
//  2. loads the configuration and switches logging to log_file if set
//  3. parses the positional tokens with ParseKWArgs
//  4. opens the API session through SessionFactory unless NoSession is set
//  5. calls Spec.Run with the resulting Context
//
// Transport failures returned by the body are classified into
// ConnectionError values so DescribeError can print actionable suggestions.
//
// # Output
//
// Context.Print renders records through the render package. NewTable builds
// the go-pretty tables used for auxiliary listings such as the model list.
package cli
