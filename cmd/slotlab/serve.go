package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/slotlab/internal/config"
	"github.com/atlanticdynamic/slotlab/internal/logging"
	"github.com/atlanticdynamic/slotlab/internal/server"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// serveFlags returns fresh flag instances, since the root command and "serve" both carry them
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level (trace, debug, info, warn, error)",
			Sources: cli.EnvVars(config.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    flagLogFormat,
			Usage:   "Log format (text, json)",
			Sources: cli.EnvVars(config.EnvLogFormat),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the slotlab HTTP server",
		Flags:  serveFlags(),
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger, err := logging.SetupLogger(cfg.Log.Format.String(), cfg.Log.Level.String(), cfg.Log.Output)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to set up logging: %w", err), 1)
	}
	if src := cfg.Source(); src != "" {
		logger.Debug("Loaded config file", "path", src)
	}

	if err := server.Run(ctx, logger, cfg); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// loadConfig resolves the config from the optional file and the environment, then applies
// the logging flags on top.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var opts []config.Option
	if path := cmd.String(flagConfig); path != "" {
		opts = append(opts, config.WithFile(path))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	overridden := false
	if v := cmd.String(flagLogLevel); v != "" {
		cfg.Log.Level = config.LogLevel(strings.ToLower(v))
		overridden = true
	}
	if v := cmd.String(flagLogFormat); v != "" {
		cfg.Log.Format = config.LogFormat(strings.ToLower(v))
		overridden = true
	}
	if overridden {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrFailedToValidateConfig, err)
		}
	}
	return cfg, nil
}
