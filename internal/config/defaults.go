package config

import "time"

const (
	// DefaultTimeout bounds API requests when no timeout is configured.
	DefaultTimeout = 30 * time.Second
	// DefaultStatusInterval is the pause between status polls.
	DefaultStatusInterval = 5 * time.Second
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SSLVerify:      true,
		Timeout:        DefaultTimeout,
		StatusInterval: DefaultStatusInterval,
	}
}
