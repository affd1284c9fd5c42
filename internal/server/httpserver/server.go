// Package httpserver runs the slotlab routes on go-supervisor's HTTP runner.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*Server)(nil)
	_ supervisor.Stateable = (*Server)(nil)
	_ supervisor.Readiness = (*Server)(nil)
)

// Timeouts contains timeout configuration for the HTTP server. Zero values keep the
// go-supervisor defaults.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
	Drain time.Duration
}

// runner abstracts the go-supervisor httpserver.Runner so tests can substitute it
type runner interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// Server owns a fixed set of routes bound to one address. Routes never change after
// construction, so there is no reload support.
type Server struct {
	id       string
	address  string
	routes   []httpserver.Route
	timeouts Timeouts
	logger   *slog.Logger
	runner   runner
}

// New creates a Server listening on address
func New(
	id, address string,
	routes []httpserver.Route,
	timeouts Timeouts,
	logger *slog.Logger,
) (*Server, error) {
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver").With("id", id)
	}

	s := &Server{
		id:       id,
		address:  address,
		routes:   routes,
		timeouts: timeouts,
		logger:   logger,
	}

	r, err := httpserver.NewRunner(httpserver.WithConfigCallback(s.buildConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	s.runner = r

	return s, nil
}

// buildConfig is the go-supervisor config callback
func (s *Server) buildConfig() (*httpserver.Config, error) {
	options := []httpserver.ConfigOption{}

	if s.timeouts.Read > 0 {
		options = append(options, httpserver.WithReadTimeout(s.timeouts.Read))
	}
	if s.timeouts.Write > 0 {
		options = append(options, httpserver.WithWriteTimeout(s.timeouts.Write))
	}
	if s.timeouts.Idle > 0 {
		options = append(options, httpserver.WithIdleTimeout(s.timeouts.Idle))
	}
	if s.timeouts.Drain > 0 {
		options = append(options, httpserver.WithDrainTimeout(s.timeouts.Drain))
	}

	cfg, err := httpserver.NewConfig(s.address, s.routes, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return cfg, nil
}

// String returns a unique identifier for this server
func (s *Server) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "address", s.address, "routes", len(s.routes))
	return s.runner.Run(ctx)
}

// Stop stops the HTTP server
func (s *Server) Stop() {
	s.logger.Info("Stopping HTTP server", "address", s.address)
	s.runner.Stop()
}

// GetState returns the current state of the server
func (s *Server) GetState() string {
	if s.runner == nil {
		return "unknown"
	}
	return s.runner.GetState()
}

// IsReady reports whether the listener has booted, so the supervisor can gate on it
func (s *Server) IsReady() bool {
	if s.runner == nil {
		return false
	}
	return s.runner.IsReady()
}

// GetStateChan returns a channel that emits state changes
func (s *Server) GetStateChan(ctx context.Context) <-chan string {
	if s.runner == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.runner.GetStateChan(ctx)
}

// Address returns the address this server listens on
func (s *Server) Address() string {
	return s.address
}
