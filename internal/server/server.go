// Package server assembles the slotlab HTTP service and runs it under a go-supervisor.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/atlanticdynamic/slotlab/internal/config"
	slothttp "github.com/atlanticdynamic/slotlab/internal/server/httpserver"
	"github.com/atlanticdynamic/slotlab/internal/server/middleware/headers"
	httpLogger "github.com/atlanticdynamic/slotlab/internal/server/middleware/logger"
	"github.com/atlanticdynamic/slotlab/internal/server/middleware/requestid"
	"github.com/atlanticdynamic/slotlab/internal/service"
)

const listenerID = "slotlab"

// NewHTTPServer builds the service, its middleware chain and the HTTP runnable for cfg
func NewHTTPServer(logger *slog.Logger, cfg *config.Config) (*slothttp.Server, error) {
	logHandler := logger.Handler()

	svc, err := service.New(cfg, service.WithLogger(logger.WithGroup("service")))
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	middlewares, err := buildMiddlewares(logHandler, cfg)
	if err != nil {
		return nil, err
	}

	routes, err := svc.Routes(middlewares...)
	if err != nil {
		return nil, fmt.Errorf("failed to build routes: %w", err)
	}

	srv, err := slothttp.New(
		listenerID,
		cfg.ListenAddr(),
		routes,
		slothttp.Timeouts{
			Read:  cfg.Timeouts.Read,
			Write: cfg.Timeouts.Write,
			Idle:  cfg.Timeouts.Idle,
			Drain: cfg.Timeouts.Drain,
		},
		logger.WithGroup("httpserver").With("id", listenerID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	logger.Info("Service configured",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"deployment_slot", cfg.DeploymentSlot(),
		"feature_x_enabled", cfg.FeatureToggleX,
		"hostname", svc.Hostname(),
	)
	return srv, nil
}

// buildMiddlewares returns the chain shared by every route, outermost first
func buildMiddlewares(logHandler slog.Handler, cfg *config.Config) ([]httpserver.HandlerFunc, error) {
	staticHeaders, err := headers.New(cfg.ResponseHeaders)
	if err != nil {
		return nil, fmt.Errorf("failed to create headers middleware: %w", err)
	}

	requestLogger := httpLogger.NewConsoleLogger(
		logHandler,
		httpLogger.WithRequestIDHeader(requestid.HeaderName),
		httpLogger.WithSkipPaths(cfg.Log.SkipPaths...),
	)

	return []httpserver.HandlerFunc{
		requestid.New(),
		requestLogger.Middleware(),
		staticHeaders,
	}, nil
}

// Run starts the slotlab server and blocks until ctx is canceled or the process receives a
// shutdown signal. Startup failures such as a port already in use are returned.
func Run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	srv, err := NewHTTPServer(logger, cfg)
	if err != nil {
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(srv),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
