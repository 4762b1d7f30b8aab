package cli

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"nbcli/internal/config"
	"nbcli/internal/netbox"
)

// UsageError reports arguments the command cannot act on.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// IsUsageError reports whether err is a usage or configuration problem.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	var cfgErr *config.ConfigurationError
	return errors.As(err, &usageErr) || errors.As(err, &cfgErr)
}

// ConnectionErrorType categorizes the type of connection error.
type ConnectionErrorType int

const (
	// ConnectionErrorUnknown indicates an unclassified connection error.
	ConnectionErrorUnknown ConnectionErrorType = iota
	// ConnectionErrorTLS indicates a TLS/certificate verification error.
	ConnectionErrorTLS
	// ConnectionErrorNetwork indicates a refused or unreachable connection.
	ConnectionErrorNetwork
	// ConnectionErrorTimeout indicates a connection timeout.
	ConnectionErrorTimeout
	// ConnectionErrorDNS indicates a DNS resolution failure.
	ConnectionErrorDNS
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorTLS:
		return "TLS certificate error"
	case ConnectionErrorNetwork:
		return "Network error"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	default:
		return "Connection error"
	}
}

// ConnectionError indicates the server could not be reached.
type ConnectionError struct {
	// Endpoint is the server base URL.
	Endpoint string
	// Type categorizes the connection error.
	Type ConnectionErrorType
	// Reason is the underlying error.
	Reason error
}

// Error returns the category, the endpoint and the cause.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s connecting to %s: %v", e.Type, e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// Suggestions returns hints for fixing the connection.
func (e *ConnectionError) Suggestions() []string {
	switch e.Type {
	case ConnectionErrorTLS:
		return []string{
			"Install the server's CA certificate",
			"Or set ssl_verify: false in the configuration file",
		}
	case ConnectionErrorDNS:
		return []string{"Check the host name in the url setting"}
	case ConnectionErrorTimeout:
		return []string{"Raise the timeout setting or " + config.EnvTimeout}
	case ConnectionErrorNetwork:
		return []string{"Check the server is running and the url setting is correct"}
	default:
		return nil
	}
}

// ClassifyConnectionError wraps transport failures in a ConnectionError.
// API errors and anything that is not a transport failure are returned
// unchanged.
func ClassifyConnectionError(err error, endpoint string) error {
	if err == nil {
		return nil
	}
	var apiErr *netbox.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	connErr := &ConnectionError{Endpoint: endpoint, Type: ConnectionErrorUnknown, Reason: err}
	var dnsErr *net.DNSError
	switch {
	case isTLSError(err):
		connErr.Type = ConnectionErrorTLS
	case errors.As(err, &dnsErr):
		connErr.Type = ConnectionErrorDNS
	case isTimeoutError(err):
		connErr.Type = ConnectionErrorTimeout
	case isNetworkError(err.Error()):
		connErr.Type = ConnectionErrorNetwork
	}
	return connErr
}

// isTLSError checks if the error is related to TLS/certificate issues.
func isTLSError(err error) bool {
	var certErr *x509.CertificateInvalidError
	var hostErr *x509.HostnameError
	var unknownAuthErr *x509.UnknownAuthorityError
	if errors.As(err, &certErr) || errors.As(err, &hostErr) || errors.As(err, &unknownAuthErr) {
		return true
	}

	errStr := err.Error()
	for _, keyword := range []string{"x509:", "certificate", "tls:", "TLS handshake"} {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// isTimeoutError checks if the error is a timeout.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isNetworkError checks if the error string indicates a network connectivity issue.
func isNetworkError(errStr string) bool {
	for _, keyword := range []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
	} {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// apiSuggestions returns hints for common API failures.
func apiSuggestions(err *netbox.APIError) []string {
	switch err.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return []string{"Check the token setting or " + config.EnvToken}
	case http.StatusNotFound:
		return []string{"Check the model name; run 'nbcli info --models' to list them"}
	default:
		return nil
	}
}
