package config

import (
	"fmt"
	"strings"
)

// ConfigurationError describes a configuration file or environment variable
// that could not be used.
type ConfigurationError struct {
	FilePath    string   // File or variable that caused the error
	Field       string   // Offending key, if known
	Message     string   // Human-readable error message
	Suggestions []string // Actionable suggestions to fix the error
	Err         error    // Underlying error, if any
}

// Error implements the error interface
func (ce *ConfigurationError) Error() string {
	msg := ce.Message
	if ce.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, ce.Err)
	}
	if ce.Field != "" {
		return fmt.Sprintf("%s: %s: %s", ce.FilePath, ce.Field, msg)
	}
	return fmt.Sprintf("%s: %s", ce.FilePath, msg)
}

// Unwrap returns the underlying error.
func (ce *ConfigurationError) Unwrap() error {
	return ce.Err
}

// DetailedError returns the error followed by its suggestions.
func (ce *ConfigurationError) DetailedError() string {
	parts := []string{ce.Error()}
	if len(ce.Suggestions) > 0 {
		parts = append(parts, "Suggestions:")
		for _, suggestion := range ce.Suggestions {
			parts = append(parts, fmt.Sprintf("  - %s", suggestion))
		}
	}
	return strings.Join(parts, "\n")
}
