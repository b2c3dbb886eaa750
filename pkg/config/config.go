// Package config loads Hyperion's process configuration from environment
// variables, optionally overlaid on top of a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every knob the CLI entrypoint needs to start the server.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	LogLevel    string `yaml:"log_level"`
	LogJSON     bool   `yaml:"log_json"`
	TempDir     string `yaml:"temp_dir"`
	MetricsAddr string `yaml:"metrics_addr"`

	MaxBackoffSeconds      int `yaml:"max_backoff_seconds"`
	DownloadTimeoutSeconds int `yaml:"download_timeout_seconds"`
}

// MaxBackoff returns MaxBackoffSeconds as a time.Duration.
func (c Config) MaxBackoff() time.Duration {
	return time.Duration(c.MaxBackoffSeconds) * time.Second
}

// DownloadTimeout returns DownloadTimeoutSeconds as a time.Duration.
func (c Config) DownloadTimeout() time.Duration {
	return time.Duration(c.DownloadTimeoutSeconds) * time.Second
}

// Addr returns "host:port" for the gRPC listener.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// defaults returns the configuration baseline before any file or env
// overlay is applied.
func defaults() Config {
	return Config{
		Host:                   "0.0.0.0",
		Port:                   2310,
		LogLevel:               "info",
		LogJSON:                false,
		TempDir:                os.TempDir(),
		MetricsAddr:            ":9310",
		MaxBackoffSeconds:      60,
		DownloadTimeoutSeconds: 30,
	}
}

// Load builds a Config starting from defaults, overlaying a YAML file
// named by HYPERION_CONFIG_FILE if set, then overlaying environment
// variables (env always wins over the file).
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("HYPERION_CONFIG_FILE"); path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	}

	overlayEnv(&cfg)

	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func overlayEnv(cfg *Config) {
	if v := os.Getenv("HYPERION_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("HYPERION_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("HYPERION_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HYPERION_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogJSON = b
		}
	}
	if v := os.Getenv("HYPERION_TEMP_DIR"); v != "" {
		cfg.TempDir = v
	}
	if v := os.Getenv("HYPERION_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("HYPERION_MAX_BACKOFF_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxBackoffSeconds = n
		}
	}
	if v := os.Getenv("HYPERION_DOWNLOAD_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DownloadTimeoutSeconds = n
		}
	}
}
