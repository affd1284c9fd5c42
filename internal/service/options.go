package service

import (
	"log/slog"
)

// Option configures a Service.
type Option func(*Service)

// WithLogHandler sets a custom slog handler for the Service.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *Service) {
		if handler != nil {
			s.logger = slog.New(handler).WithGroup("service")
		}
	}
}

// WithLogger sets a logger for the Service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHostname overrides the hostname reported by the root route.
func WithHostname(hostname string) Option {
	return func(s *Service) {
		if hostname != "" {
			s.hostname = hostname
		}
	}
}
