package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all diet-plan service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Wizard  WizardConfig  `yaml:"wizard"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// AllowedOrigins feeds the CORS handler for the rendering layer.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// WizardConfig configures the questionnaire engine.
type WizardConfig struct {
	// PlanDelay is the pause between reading commit and diet plan, e.g. "1500ms".
	PlanDelay string `yaml:"plan_delay"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8012,
			AllowedOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			DBPath: "/data/diet-plan.db",
		},
		Wizard: WizardConfig{
			PlanDelay: "1500ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML config over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DIET_PLAN_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("DIET_PLAN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("DIET_PLAN_DB_PATH"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("DIET_PLAN_PLAN_DELAY"); v != "" {
		c.Wizard.PlanDelay = v
	}
	if v := os.Getenv("DIET_PLAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// PlanDelay parses Wizard.PlanDelay.
func (c *Config) PlanDelay() (time.Duration, error) {
	if c.Wizard.PlanDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Wizard.PlanDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid wizard.plan_delay %q: %w", c.Wizard.PlanDelay, err)
	}
	return d, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	d, err := c.PlanDelay()
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("wizard.plan_delay must not be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown logging.format %q", c.Logging.Format)
	}
	return nil
}
