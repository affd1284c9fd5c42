package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atlanticdynamic/slotlab/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("slotlab config (%s)", cfg.Version)))

	if cfg.source != "" {
		t.Child(fancy.InfoStyle.Render("file: " + cfg.source))
	}

	deployment := fancy.BranchNode("Deployment", fmt.Sprintf("(%s)", cfg.Environment))
	deployment.Child(fmt.Sprintf("Environment: %s", cfg.Environment))
	deployment.Child(fmt.Sprintf("Slot: %s", fancy.SlotText(cfg.DeploymentSlot())))
	deployment.Child(fmt.Sprintf("Version: %s", cfg.Version))
	deployment.Child(fmt.Sprintf("Feature X: %s", fancy.ToggleText(cfg.FeatureToggleX)))
	t.Child(deployment)

	listener := fancy.BranchNode("Listener", fancy.ComponentStyle.Render(cfg.ListenAddr()))
	listener.Child(fmt.Sprintf("Read timeout: %s", cfg.Timeouts.Read))
	listener.Child(fmt.Sprintf("Write timeout: %s", cfg.Timeouts.Write))
	listener.Child(fmt.Sprintf("Idle timeout: %s", cfg.Timeouts.Idle))
	listener.Child(fmt.Sprintf("Drain timeout: %s", cfg.Timeouts.Drain))
	t.Child(listener)

	logging := fancy.BranchNode("Logging", "")
	logging.Child(fmt.Sprintf("Level: %s", cfg.Log.Level))
	logging.Child(fmt.Sprintf("Format: %s", cfg.Log.Format))
	logging.Child(fmt.Sprintf("Output: %s", cfg.Log.Output))
	if len(cfg.Log.SkipPaths) > 0 {
		logging.Child(fmt.Sprintf("Skip paths: %s", strings.Join(cfg.Log.SkipPaths, ", ")))
	}
	t.Child(logging)

	if len(cfg.ResponseHeaders) > 0 {
		names := make([]string, 0, len(cfg.ResponseHeaders))
		for name := range cfg.ResponseHeaders {
			names = append(names, name)
		}
		sort.Strings(names)

		headers := fancy.BranchNode("Response headers", fmt.Sprintf("(%d)", len(names)))
		for _, name := range names {
			headers.Child(fmt.Sprintf("%s: %s", name, fancy.TruncateString(cfg.ResponseHeaders[name], 60)))
		}
		t.Child(headers)
	}

	return t.String()
}
