package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
)

// effectiveConfig is what "config --json" prints
type effectiveConfig struct {
	Environment    string `json:"environment"`
	FeatureToggleX bool   `json:"feature_toggle_x"`
	Version        string `json:"version"`
	DeploymentSlot string `json:"deployment_slot"`
	ListenAddr     string `json:"listen_addr"`
}

func configCmd() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"validate"},
		Usage:   "Load, validate and print the effective configuration",
		Flags: append(serveFlags(), &cli.BoolFlag{
			Name:  "json",
			Usage: "Print the values the HTTP payloads are built from as JSON",
		}),
		Action: configAction,
	}
}

func configAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}

	out := cmd.Root().Writer
	if !cmd.Bool("json") {
		_, err = fmt.Fprintln(out, cfg)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(effectiveConfig{
		Environment:    cfg.Environment,
		FeatureToggleX: cfg.FeatureToggleX,
		Version:        cfg.Version,
		DeploymentSlot: cfg.DeploymentSlot(),
		ListenAddr:     cfg.ListenAddr(),
	})
}
