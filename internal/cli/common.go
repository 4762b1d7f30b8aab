package cli

import (
	"errors"
	"fmt"
	"strings"

	"nbcli/internal/config"
	"nbcli/internal/netbox"

	"github.com/jedib0t/go-pretty/v6/text"
)

// FormatError formats an error message for CLI output
func FormatError(err error) string {
	return fmt.Sprintf("%s %v", text.FgRed.Sprint("Error:"), err)
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("%s %s", text.FgGreen.Sprint("✓"), msg)
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return fmt.Sprintf("%s %s", text.FgYellow.Sprint("⚠"), msg)
}

// DescribeError formats err together with any suggestions its type carries.
func DescribeError(err error) string {
	var suggestions []string
	var cfgErr *config.ConfigurationError
	var connErr *ConnectionError
	var apiErr *netbox.APIError
	switch {
	case errors.As(err, &cfgErr):
		suggestions = cfgErr.Suggestions
	case errors.As(err, &connErr):
		suggestions = connErr.Suggestions()
	case errors.As(err, &apiErr):
		suggestions = apiSuggestions(apiErr)
	}

	lines := []string{FormatError(err)}
	if len(suggestions) > 0 {
		lines = append(lines, "Suggestions:")
		for _, s := range suggestions {
			lines = append(lines, "  - "+s)
		}
	}
	return strings.Join(lines, "\n")
}
