// Package service implements the environment-aware JSON endpoints.
//
// Every handler is a pure function of the startup configuration plus the cached hostname, so a
// single Service is shared by all request goroutines without locking.
package service

import (
	"errors"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/slotlab/internal/config"
)

// ErrNilConfig is returned by New when no configuration is supplied.
var ErrNilConfig = errors.New("service config cannot be nil")

// fallbackHostname is reported when the operating system cannot tell us our name.
const fallbackHostname = "localhost"

// Service answers the four read-only routes.
type Service struct {
	cfg      *config.Config
	hostname string
	logger   *slog.Logger
}

// New creates a Service for cfg. The hostname is resolved once here; it cannot change while
// the process runs.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	s := &Service{
		cfg:    cfg,
		logger: slog.Default().WithGroup("service"),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.hostname == "" {
		s.hostname = probeHostname(s.logger)
	}

	return s, nil
}

func probeHostname(logger *slog.Logger) string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		logger.Warn("Unable to resolve hostname, using fallback", "error", err, "fallback", fallbackHostname)
		return fallbackHostname
	}
	return name
}

// Hostname returns the hostname reported by the root route
func (s *Service) Hostname() string {
	return s.hostname
}

// String returns a short description used in logs
func (s *Service) String() string {
	return "Service[" + s.cfg.Environment + "]"
}
