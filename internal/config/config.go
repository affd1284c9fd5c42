// Package config loads the process-wide, read-only configuration for slotlab.
//
// Values are resolved once at startup in three layers: built-in defaults, an optional TOML
// file, then environment variables. The resulting Config is never mutated afterwards.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default values, used when neither the config file nor the environment provide one.
const (
	DefaultEnvironment  = "unknown"
	DefaultVersion      = "1.0.0"
	DefaultPort         = 8000
	DefaultHost         = "0.0.0.0"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultDrainTimeout = 10 * time.Second
)

// Deployment slot names reported by DeploymentSlot.
const (
	SlotStaging    = "staging"
	SlotProduction = "production"
)

// Config holds everything the service needs to answer requests and bind its listener.
type Config struct {
	Environment    string
	FeatureToggleX bool
	Version        string
	Port           int
	Host           string
	Log            LogConfig
	Timeouts       Timeouts

	// ResponseHeaders are set on every response
	ResponseHeaders map[string]string

	// source is the TOML file path, when one was loaded
	source string
}

// LogConfig contains logging-related configuration options
type LogConfig struct {
	Level  LogLevel
	Format LogFormat
	Output string

	// SkipPaths are request paths the request logger stays quiet about, e.g. platform health probes
	SkipPaths []string
}

// Timeouts contains the HTTP server timeouts
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
	Drain time.Duration
}

// Option configures how Load resolves values.
type Option func(*loader)

type loader struct {
	filePath string
	lookup   func(string) (string, bool)
}

// WithFile layers a TOML file between the defaults and the environment.
func WithFile(path string) Option {
	return func(l *loader) {
		l.filePath = path
	}
}

// WithLookup replaces os.LookupEnv, mostly useful for tests.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(l *loader) {
		if lookup != nil {
			l.lookup = lookup
		}
	}
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() *Config {
	return &Config{
		Environment:    DefaultEnvironment,
		FeatureToggleX: false,
		Version:        DefaultVersion,
		Port:           DefaultPort,
		Host:           DefaultHost,
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			Output: "stderr",
		},
		Timeouts: Timeouts{
			Read:  DefaultReadTimeout,
			Write: DefaultWriteTimeout,
			Idle:  DefaultIdleTimeout,
			Drain: DefaultDrainTimeout,
		},
		ResponseHeaders: map[string]string{
			"X-Content-Type-Options": "nosniff",
			"Cache-Control":          "no-store",
		},
	}
}

// Load resolves the configuration and validates it.
func Load(opts ...Option) (*Config, error) {
	l := &loader{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}

	cfg := Defaults()

	if l.filePath != "" {
		if err := cfg.applyFile(l.filePath); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(l.lookup); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}

	return cfg, nil
}

// ParseToggle reports whether raw is "true", ignoring case. Every other value is false.
func ParseToggle(raw string) bool {
	return strings.EqualFold(raw, "true")
}

// SlotFor derives the deployment slot from an environment name.
func SlotFor(environment string) string {
	if strings.Contains(strings.ToLower(environment), SlotStaging) {
		return SlotStaging
	}
	return SlotProduction
}

// DeploymentSlot returns "staging" when the environment name contains "staging", else "production".
func (c *Config) DeploymentSlot() string {
	return SlotFor(c.Environment)
}

// ListenAddr returns the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Source returns the path of the TOML file used to build this config, or "" if none.
func (c *Config) Source() string {
	return c.source
}
