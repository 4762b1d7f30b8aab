package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := Default()
		cfg.URL = "https://nb.example.com"
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		wantField   string
		wantMessage string
		wantSuggest bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing url", mutate: func(c *Config) { c.URL = "" }, wantField: "url", wantMessage: "server URL is not set", wantSuggest: true},
		{name: "bad scheme", mutate: func(c *Config) { c.URL = "ftp://nb" }, wantField: "url", wantMessage: "scheme must be http or https", wantSuggest: true},
		{name: "no host", mutate: func(c *Config) { c.URL = "https://" }, wantField: "url", wantMessage: "has no host", wantSuggest: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantField: "timeout", wantMessage: "must not be negative"},
		{name: "negative interval", mutate: func(c *Config) { c.StatusInterval = -time.Second }, wantField: "status_interval", wantMessage: "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Equal(t, tt.wantMessage, cfgErr.Message)
			assert.Equal(t, tt.wantSuggest, len(cfgErr.Suggestions) > 0)
		})
	}
}

func TestConfigValidate_CollectsAllErrors(t *testing.T) {
	cfg := Config{Path: "/etc/nbcli.yml", Timeout: -1, StatusInterval: -1}

	err := cfg.Validate()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "/etc/nbcli.yml", cfgErr.FilePath)
	assert.Empty(t, cfgErr.Field)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.Contains(t, err.Error(), "field 'url': server URL is not set")
	assert.Contains(t, err.Error(), "field 'timeout': must not be negative")
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("url", "is required")
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "field 'url': is required", errs.Error())

	errs.Add("", "something else", 42)
	assert.Equal(t, "validation failed: field 'url': is required; something else", errs.Error())
	assert.Equal(t, 42, errs[1].Value)
}
