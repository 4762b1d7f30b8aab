// Package config loads the nbcli user configuration.
//
// Configuration lives in a single YAML file, by default
// ~/.nbcli/user_config.yml (the directory can be moved with NBCLI_DIR).
// A missing default file is not an error: built-in defaults apply and the
// NBCLI_* environment variables are layered on top, so a session can be
// configured from the environment alone.
//
// timeout and status_interval take Go durations ("30s", "500ms") or a bare
// number of seconds.
//
// Example file:
//
//	url: https://netbox.example.com
//	token: 0123456789abcdef0123456789abcdef01234567
//	ssl_verify: true
//	timeout: 30s
//	status_interval: 5s
//	log_file: /var/log/nbcli.log
package config
