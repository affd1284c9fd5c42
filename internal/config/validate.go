package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the ranges and enumerations of the resolved configuration
func (c *Config) Validate() error {
	errz := []error{}

	if c.Port < 1 || c.Port > 65535 {
		errz = append(errz, fmt.Errorf("%w: %d is outside 1-65535", ErrInvalidPort, c.Port))
	}

	if c.Host == "" {
		errz = append(errz, fmt.Errorf("%w: host cannot be empty", ErrInvalidHost))
	}

	if !c.Log.Level.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level))
	}

	if !c.Log.Format.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format))
	}

	timeouts := []struct {
		name  string
		value int64
	}{
		{"read", int64(c.Timeouts.Read)},
		{"write", int64(c.Timeouts.Write)},
		{"idle", int64(c.Timeouts.Idle)},
		{"drain", int64(c.Timeouts.Drain)},
	}
	for _, to := range timeouts {
		if to.value < 0 {
			errz = append(errz, fmt.Errorf("%w: %s timeout cannot be negative", ErrInvalidTimeout, to.name))
		}
	}

	for _, p := range c.Log.SkipPaths {
		if !strings.HasPrefix(p, "/") {
			errz = append(errz, fmt.Errorf("%w: %q must start with /", ErrInvalidSkipPath, p))
		}
	}

	if err := ValidateHeaders(c.ResponseHeaders); err != nil {
		errz = append(errz, err)
	}

	return errors.Join(errz...)
}
