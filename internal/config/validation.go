package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// validateServerURL checks that raw is an absolute http(s) URL.
func validateServerURL(errs *ValidationErrors, raw string) {
	if raw == "" {
		errs.Add("url", "server URL is not set")
		return
	}
	u, err := url.Parse(raw)
	if err != nil {
		errs.Add("url", "is not a valid URL", raw)
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		errs.Add("url", "scheme must be http or https", raw)
		return
	}
	if u.Host == "" {
		errs.Add("url", "has no host", raw)
	}
}

// Validate reports settings that make a session impossible. The result is a
// *ConfigurationError wrapping the ValidationErrors found.
func (c Config) Validate() error {
	var errs ValidationErrors
	validateServerURL(&errs, c.URL)
	if c.Timeout < 0 {
		errs.Add("timeout", "must not be negative", c.Timeout)
	}
	if c.StatusInterval < 0 {
		errs.Add("status_interval", "must not be negative", c.StatusInterval)
	}
	if !errs.HasErrors() {
		return nil
	}

	source := c.Path
	if source == "" {
		source = "environment"
	}
	cfgErr := &ConfigurationError{FilePath: source, Err: errs}
	if len(errs) == 1 {
		cfgErr.Field = errs[0].Field
		cfgErr.Message = errs[0].Message
		cfgErr.Err = nil
	} else {
		cfgErr.Message = "invalid configuration"
	}
	for _, e := range errs {
		if e.Field == "url" {
			cfgErr.Suggestions = []string{
				"Run 'nbcli init' and edit the generated file",
				"Or export " + EnvURL + " and " + EnvToken,
			}
			break
		}
	}
	return cfgErr
}
