package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapLookup builds a lookup function backed by a map, standing in for os.LookupEnv
func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithLookup(mapLookup(nil)))
	require.NoError(t, err)

	assert.Equal(t, "unknown", cfg.Environment)
	assert.False(t, cfg.FeatureToggleX)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddr())
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.Equal(t, DefaultDrainTimeout, cfg.Timeouts.Drain)
	assert.Empty(t, cfg.Source())
}

func TestLoad_Environment(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithLookup(mapLookup(map[string]string{
		EnvEnvironment:    "staging",
		EnvFeatureToggleX: "true",
		EnvAppVersion:     "2.3.1",
		EnvPort:           "9090",
		EnvHost:           "127.0.0.1",
		EnvLogLevel:       "DEBUG",
		EnvLogFormat:      "json",
		EnvLogOutput:      "stdout",
	})))
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.True(t, cfg.FeatureToggleX)
	assert.Equal(t, "2.3.1", cfg.Version)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr())
	assert.Equal(t, LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, SlotStaging, cfg.DeploymentSlot())
}

func TestLoad_OSEnvironment(t *testing.T) {
	t.Setenv(EnvEnvironment, "production")
	t.Setenv(EnvFeatureToggleX, "TRUE")
	t.Setenv(EnvAppVersion, "4.0.0")
	t.Setenv(EnvPort, "8123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.FeatureToggleX)
	assert.Equal(t, "4.0.0", cfg.Version)
	assert.Equal(t, 8123, cfg.Port)
}

func TestLoad_EmptyValues(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithLookup(mapLookup(map[string]string{
		EnvEnvironment:    "",
		EnvFeatureToggleX: "",
		EnvPort:           "",
	})))
	require.NoError(t, err)

	assert.Empty(t, cfg.Environment, "a set but empty ENVIRONMENT is kept as-is")
	assert.False(t, cfg.FeatureToggleX)
	assert.Equal(t, DefaultPort, cfg.Port, "an empty PORT falls back to the default")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		port string
	}{
		{name: "not a number", port: "eighty"},
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
		{name: "too large", port: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load(WithLookup(mapLookup(map[string]string{EnvPort: tt.port})))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidPort)
		})
	}
}

func TestLoad_InvalidLogging(t *testing.T) {
	t.Parallel()

	_, err := Load(WithLookup(mapLookup(map[string]string{
		EnvLogLevel:  "verbose",
		EnvLogFormat: "xml",
	})))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailedToValidateConfig)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.ErrorIs(t, err, ErrInvalidLogFormat)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slotlab.toml")
	content := `
environment = "my-staging-slot"
feature_toggle_x = true
version = "3.0.0"
port = 8500

[log]
level = "warn"
format = "json"

[timeouts]
read = "5s"
drain = "2s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("file only", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(WithFile(path), WithLookup(mapLookup(nil)))
		require.NoError(t, err)

		assert.Equal(t, "my-staging-slot", cfg.Environment)
		assert.True(t, cfg.FeatureToggleX)
		assert.Equal(t, "3.0.0", cfg.Version)
		assert.Equal(t, 8500, cfg.Port)
		assert.Equal(t, LogLevelWarn, cfg.Log.Level)
		assert.Equal(t, LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, 5*time.Second, cfg.Timeouts.Read)
		assert.Equal(t, DefaultWriteTimeout, cfg.Timeouts.Write)
		assert.Equal(t, 2*time.Second, cfg.Timeouts.Drain)
		assert.Equal(t, path, cfg.Source())
		assert.Equal(t, SlotStaging, cfg.DeploymentSlot())
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(WithFile(path), WithLookup(mapLookup(map[string]string{
			EnvEnvironment:    "production",
			EnvFeatureToggleX: "nope",
			EnvPort:           "8001",
		})))
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.Environment)
		assert.False(t, cfg.FeatureToggleX)
		assert.Equal(t, "3.0.0", cfg.Version)
		assert.Equal(t, 8001, cfg.Port)
		assert.Equal(t, SlotProduction, cfg.DeploymentSlot())
	})
}

func TestLoad_FileErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(WithFile(filepath.Join(t.TempDir(), "missing.toml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFailedToLoadConfig)
	})

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("environment = [unterminated"), 0o644))

		_, err := Load(WithFile(path))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParseToml)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[timeouts]\nread = \"soon\"\n"), 0o644))

		_, err := Load(WithFile(path))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimeout)
	})
}

func TestParseToggle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"tRuE", true},
		{"false", false},
		{"", false},
		{"1", false},
		{"yes", false},
		{"on", false},
		{" true", false},
		{"true ", false},
		{"truthy", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseToggle(tt.raw))
		})
	}
}

func TestDeploymentSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		environment string
		expected    string
	}{
		{"staging", SlotStaging},
		{"Staging-2", SlotStaging},
		{"my-staging-slot", SlotStaging},
		{"STAGING", SlotStaging},
		{"production", SlotProduction},
		{"unknown", SlotProduction},
		{"", SlotProduction},
		{"stage", SlotProduction},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			t.Parallel()

			cfg := Defaults()
			cfg.Environment = tt.environment
			assert.Equal(t, tt.expected, cfg.DeploymentSlot())
			assert.Equal(t, tt.expected, SlotFor(tt.environment))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Defaults().Validate())
	})

	t.Run("warning alias accepted", func(t *testing.T) {
		t.Parallel()
		cfg := Defaults()
		cfg.Log.Level = "warning"
		require.NoError(t, cfg.Validate())
	})

	t.Run("collects every error", func(t *testing.T) {
		t.Parallel()
		cfg := Defaults()
		cfg.Port = 0
		cfg.Host = ""
		cfg.Timeouts.Idle = -time.Second

		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPort)
		assert.ErrorIs(t, err, ErrInvalidHost)
		assert.ErrorIs(t, err, ErrInvalidTimeout)
	})
}

func TestConfigString(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Environment = "staging"
	cfg.Version = "2.3.1"
	cfg.FeatureToggleX = true

	out := cfg.String()
	assert.Contains(t, out, "slotlab config (2.3.1)")
	assert.Contains(t, out, "Environment: staging")
	assert.Contains(t, out, "staging")
	assert.Contains(t, out, "enabled")
	assert.Contains(t, out, "0.0.0.0:8000")
	assert.Contains(t, out, "Level: info")
}

func TestLoad_ResponseHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("file headers merge with defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "headers.toml")
		content := "[headers]\n\"X-Slot-Name\" = \"blue\"\n\"Cache-Control\" = \"max-age=60\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(WithFile(path), WithLookup(mapLookup(nil)))
		require.NoError(t, err)

		assert.Equal(t, "blue", cfg.ResponseHeaders["X-Slot-Name"])
		assert.Equal(t, "max-age=60", cfg.ResponseHeaders["Cache-Control"])
		assert.Equal(t, "nosniff", cfg.ResponseHeaders["X-Content-Type-Options"])
		assert.Contains(t, cfg.String(), "X-Slot-Name: blue")
	})

	t.Run("invalid header name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "bad-headers.toml")
		content := "[headers]\n\"Bad Name\" = \"x\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := Load(WithFile(path), WithLookup(mapLookup(nil)))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidHeader)
	})
}

func TestLoad_FileLogCase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slotlab.toml")
	content := "[log]\nlevel = \"INFO\"\nformat = \"Json\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(WithFile(path), WithLookup(mapLookup(nil)))
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestLoad_SkipPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("defaults to none", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(WithLookup(mapLookup(nil)))
		require.NoError(t, err)
		assert.Empty(t, cfg.Log.SkipPaths)
	})

	t.Run("from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "skip.toml")
		content := "[log]\nskip_paths = [\"/health\"]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(WithFile(path), WithLookup(mapLookup(nil)))
		require.NoError(t, err)
		assert.Equal(t, []string{"/health"}, cfg.Log.SkipPaths)
		assert.Contains(t, cfg.String(), "Skip paths: /health")
	})

	t.Run("environment replaces file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "skip-env.toml")
		content := "[log]\nskip_paths = [\"/health\"]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(WithFile(path), WithLookup(mapLookup(map[string]string{
			EnvLogSkipPaths: " /health , ,/api/version",
		})))
		require.NoError(t, err)
		assert.Equal(t, []string{"/health", "/api/version"}, cfg.Log.SkipPaths)
	})

	t.Run("relative path rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Load(WithLookup(mapLookup(map[string]string{EnvLogSkipPaths: "health"})))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSkipPath)
	})
}

func TestValidateHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     map[string]string
		wantErr bool
	}{
		{name: "valid", set: map[string]string{"X-Slot": "staging"}},
		{name: "nil", set: nil},
		{name: "empty name", set: map[string]string{" ": "x"}, wantErr: true},
		{name: "space in name", set: map[string]string{"X Slot": "x"}, wantErr: true},
		{name: "newline in value", set: map[string]string{"X-Slot": "a\r\nb"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateHeaders(tt.set)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHeader)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("validate reports header errors", func(t *testing.T) {
		t.Parallel()

		cfg := Defaults()
		cfg.ResponseHeaders["X-Slot"] = "a\nb"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidHeader)
	})
}
