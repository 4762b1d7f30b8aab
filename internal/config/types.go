package config

import "time"

// Config is the nbcli user configuration.
type Config struct {
	// URL is the server base URL.
	URL string `yaml:"url"`
	// Token is the API token.
	Token string `yaml:"token"`
	// SSLVerify enables TLS certificate verification.
	SSLVerify bool `yaml:"ssl_verify"`
	// Timeout bounds every API request.
	Timeout time.Duration `yaml:"timeout"`
	// StatusInterval is the pause between polls of `info --status`.
	StatusInterval time.Duration `yaml:"status_interval"`
	// LogFile sends log records to a rotated file instead of stderr.
	LogFile string `yaml:"log_file,omitempty"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}
