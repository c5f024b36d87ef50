package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"DIET_PLAN_HOST", "DIET_PLAN_PORT", "DIET_PLAN_DB_PATH", "DIET_PLAN_PLAN_DELAY", "DIET_PLAN_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8012, cfg.Server.Port)

	d, err := cfg.PlanDelay()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.DBPath = "/tmp/plan.db"
	cfg.Logging.Format = "console"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plan.db", loaded.Storage.DBPath)
	assert.Equal(t, "console", loaded.Logging.Format)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wizard:\n  plan_delay: 0s\nserver:\n  port: 9000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	d, err := cfg.PlanDelay()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DIET_PLAN_HOST", "127.0.0.1")
	t.Setenv("DIET_PLAN_PORT", "9100")
	t.Setenv("DIET_PLAN_DB_PATH", "/var/lib/plan.db")
	t.Setenv("DIET_PLAN_PLAN_DELAY", "2s")
	t.Setenv("DIET_PLAN_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "/var/lib/plan.db", cfg.Storage.DBPath)
	assert.Equal(t, "2s", cfg.Wizard.PlanDelay)
	assert.Equal(t, "debug", cfg.Logging.Level)

	t.Setenv("DIET_PLAN_PORT", "not-a-port")
	cfg = DefaultConfig()
	cfg.applyEnvOverrides()
	assert.Equal(t, 8012, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"port":   func(c *Config) { c.Server.Port = 0 },
		"db":     func(c *Config) { c.Storage.DBPath = "" },
		"delay":  func(c *Config) { c.Wizard.PlanDelay = "soon" },
		"neg":    func(c *Config) { c.Wizard.PlanDelay = "-1s" },
		"level":  func(c *Config) { c.Logging.Level = "trace" },
		"format": func(c *Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
