package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"nbcli/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".nbcli"
	configFileName = "user_config.yml"

	// EnvPrefix is shared by every nbcli environment variable.
	EnvPrefix = "NBCLI_"

	EnvDir       = "NBCLI_DIR"
	EnvURL       = "NBCLI_URL"
	EnvToken     = "NBCLI_TOKEN"
	EnvSSLVerify = "NBCLI_SSL_VERIFY"
	EnvTimeout   = "NBCLI_TIMEOUT"
	EnvLogFile   = "NBCLI_LOGFILE"
)

// osUserHomeDir and lookupEnv are replaced in tests.
var (
	osUserHomeDir = os.UserHomeDir
	lookupEnv     = os.LookupEnv
	environ       = os.Environ
)

// Dir returns the nbcli directory: $NBCLI_DIR, or ~/.nbcli.
func Dir() (string, error) {
	if dir, ok := lookupEnv(EnvDir); ok && dir != "" {
		return dir, nil
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// DefaultPath returns the path of the default configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the configuration at path, or the default file when path is
// empty, then applies environment overrides. A missing default file yields
// the defaults; a missing explicit file is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeFile(data, &cfg); err != nil {
			return Config{}, &ConfigurationError{
				FilePath:    path,
				Message:     "malformed configuration",
				Err:         err,
				Suggestions: []string{"Check the file is valid YAML", "Run 'nbcli init --force' to write a fresh file"},
			}
		}
		cfg.Path = path
		logging.Debug("ConfigLoader", "Loaded configuration from %s", path)
	case errors.Is(err, os.ErrNotExist) && !explicit:
		logging.Debug("ConfigLoader", "No configuration found at %s, using defaults", path)
	default:
		return Config{}, &ConfigurationError{FilePath: path, Message: "cannot read configuration", Err: err}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// durationKeys are the file settings that also accept bare seconds.
var durationKeys = map[string]bool{"timeout": true, "status_interval": true}

// decodeFile unmarshals data over cfg. Duration settings written as plain
// numbers are read as seconds, like the environment overrides.
func decodeFile(data []byte, cfg *Config) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			v := root.Content[i+1]
			if !durationKeys[root.Content[i].Value] || v.Kind != yaml.ScalarNode {
				continue
			}
			if tag := v.ShortTag(); tag == "!!int" || tag == "!!float" {
				v.Value += "s"
				v.Tag = "!!str"
			}
		}
	}
	return root.Decode(cfg)
}

// applyEnv overlays NBCLI_* variables on cfg.
func applyEnv(cfg *Config) error {
	if v, ok := lookupEnv(EnvURL); ok {
		cfg.URL = v
	}
	if v, ok := lookupEnv(EnvToken); ok {
		cfg.Token = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookupEnv(EnvSSLVerify); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigurationError{FilePath: EnvSSLVerify, Message: "expected a boolean", Err: err}
		}
		cfg.SSLVerify = b
	}
	if v, ok := lookupEnv(EnvTimeout); ok {
		d, err := parseDuration(v)
		if err != nil {
			return &ConfigurationError{FilePath: EnvTimeout, Message: "expected a duration such as 30s", Err: err}
		}
		cfg.Timeout = d
	}
	return nil
}

// parseDuration accepts Go durations and bare seconds.
func parseDuration(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// EnvVar is one NBCLI_* variable from the process environment.
type EnvVar struct {
	Name  string
	Value string
}

// EnvVars returns every NBCLI_* variable, sorted by name.
func EnvVars() []EnvVar {
	var vars []EnvVar
	for _, kv := range environ() {
		name, value, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			vars = append(vars, EnvVar{Name: name, Value: value})
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}

// configTemplateHeader is written above a generated configuration file.
const configTemplateHeader = `# nbcli user configuration.
# Values can be overridden with NBCLI_URL, NBCLI_TOKEN, NBCLI_SSL_VERIFY,
# NBCLI_TIMEOUT and NBCLI_LOGFILE.
`

// WriteDefault writes a template configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return &ConfigurationError{
			FilePath:    path,
			Message:     "configuration already exists",
			Suggestions: []string{"Use --force to overwrite it"},
		}
	}

	cfg := Default()
	cfg.URL = "https://netbox.example.com"
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(configTemplateHeader), data...), 0o600)
}
