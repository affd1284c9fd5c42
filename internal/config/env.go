package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by Load.
const (
	EnvEnvironment    = "ENVIRONMENT"
	EnvFeatureToggleX = "FEATURE_TOGGLE_X"
	EnvAppVersion     = "APP_VERSION"
	EnvPort           = "PORT"
	EnvHost           = "HOST"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogOutput      = "LOG_OUTPUT"
	EnvLogSkipPaths   = "LOG_SKIP_PATHS"
)

// applyEnv overlays environment variables onto c. A variable that is set, even to an empty
// string, wins over the file and the defaults; PORT and the logging variables are the
// exception and ignore empty values.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEnvironment); ok {
		c.Environment = v
	}
	if v, ok := lookup(EnvFeatureToggleX); ok {
		c.FeatureToggleX = ParseToggle(v)
	}
	if v, ok := lookup(EnvAppVersion); ok {
		c.Version = v
	}
	if v, ok := lookup(EnvHost); ok && v != "" {
		c.Host = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidPort, EnvPort, v)
		}
		c.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = LogLevel(strings.ToLower(v))
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = LogFormat(strings.ToLower(v))
	}
	if v, ok := lookup(EnvLogOutput); ok && v != "" {
		c.Log.Output = v
	}
	if v, ok := lookup(EnvLogSkipPaths); ok && v != "" {
		c.Log.SkipPaths = splitList(v)
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
