// Package config loads application configuration from a YAML file with
// environment-variable fallbacks for the values that change per deployment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\"")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Sweep     SweepConfig     `yaml:"sweep"`
	Version   string          `yaml:"version"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	IdleTimeout     Duration `yaml:"idle_timeout"`
	RequestTimeout  Duration `yaml:"request_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64    `yaml:"max_body_bytes"`
}

// RateLimitConfig holds the per-client request rate limit.
type RateLimitConfig struct {
	Limit  int      `yaml:"limit"`
	Window Duration `yaml:"window"`
}

// SweepConfig holds the link-integrity sweeper settings for the worker.
type SweepConfig struct {
	// Schedule is a cron expression. Empty means the default cadence.
	Schedule string `yaml:"schedule"`
	// MetricsAddr is the worker's metrics listen address.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			IdleTimeout:     Duration(60 * time.Second),
			RequestTimeout:  Duration(25 * time.Second),
			ShutdownTimeout: Duration(15 * time.Second),
			MaxBodyBytes:    1 << 20,
		},
		RateLimit: RateLimitConfig{
			Limit:  100,
			Window: Duration(time.Minute),
		},
		Sweep: SweepConfig{
			Schedule:    "0 */6 * * *",
			MetricsAddr: ":9091",
		},
		Version: "dev",
	}
}

// Load reads the configuration file at CONFIG_PATH (or the given path when
// non-empty), overlays it onto the defaults, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator, not request input
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("APP_VERSION"); v != "" {
		cfg.Version = v
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit.Limit = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RateLimit.Window = Duration(d)
		}
	}
	if v := os.Getenv("SWEEP_SCHEDULE"); v != "" {
		cfg.Sweep.Schedule = v
	}
	if v := os.Getenv("WORKER_METRICS_ADDR"); v != "" {
		cfg.Sweep.MetricsAddr = v
	}
}

func validate(cfg *AppConfig) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if cfg.RateLimit.Limit <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit window must be positive")
	}
	if cfg.Sweep.Schedule == "" {
		return fmt.Errorf("sweep schedule is required")
	}
	return nil
}
