package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	gotoml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML layout. Pointer fields distinguish "absent" from a zero value.
type fileConfig struct {
	Environment    *string `toml:"environment"`
	FeatureToggleX *bool   `toml:"feature_toggle_x"`
	Version        *string `toml:"version"`
	Port           *int    `toml:"port"`
	Host           *string `toml:"host"`
	Log            struct {
		Level     string   `toml:"level"`
		Format    string   `toml:"format"`
		Output    string   `toml:"output"`
		SkipPaths []string `toml:"skip_paths"`
	} `toml:"log"`
	Timeouts struct {
		Read  string `toml:"read"`
		Write string `toml:"write"`
		Idle  string `toml:"idle"`
		Drain string `toml:"drain"`
	} `toml:"timeouts"`
	Headers map[string]string `toml:"headers"`
}

// applyFile reads the TOML file at path and overlays its values onto c
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	if err := c.applyTOML(data); err != nil {
		return err
	}
	c.source = path
	return nil
}

func (c *Config) applyTOML(data []byte) error {
	var fc fileConfig
	if err := gotoml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: %w", ErrParseToml, err)
	}

	if fc.Environment != nil {
		c.Environment = *fc.Environment
	}
	if fc.FeatureToggleX != nil {
		c.FeatureToggleX = *fc.FeatureToggleX
	}
	if fc.Version != nil {
		c.Version = *fc.Version
	}
	if fc.Port != nil {
		c.Port = *fc.Port
	}
	if fc.Host != nil {
		c.Host = *fc.Host
	}
	if fc.Log.Level != "" {
		c.Log.Level = LogLevel(strings.ToLower(fc.Log.Level))
	}
	if fc.Log.Format != "" {
		c.Log.Format = LogFormat(strings.ToLower(fc.Log.Format))
	}
	if fc.Log.Output != "" {
		c.Log.Output = fc.Log.Output
	}
	if fc.Log.SkipPaths != nil {
		c.Log.SkipPaths = fc.Log.SkipPaths
	}

	for name, value := range fc.Headers {
		c.ResponseHeaders[name] = value
	}

	durations := []struct {
		name   string
		raw    string
		target *time.Duration
	}{
		{"read", fc.Timeouts.Read, &c.Timeouts.Read},
		{"write", fc.Timeouts.Write, &c.Timeouts.Write},
		{"idle", fc.Timeouts.Idle, &c.Timeouts.Idle},
		{"drain", fc.Timeouts.Drain, &c.Timeouts.Drain},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%w: %s timeout %q: %w", ErrInvalidTimeout, d.name, d.raw, err)
		}
		*d.target = parsed
	}

	return nil
}
