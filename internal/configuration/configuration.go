// Package configuration implements the layered application configuration: a
// YAML configuration file with defaults, overridden by an optional dotenv
// environment file.
package configuration

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAddress is the listen address used when none is configured.
	DefaultAddress = ":8080"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultShutdownTimeoutSecs is the graceful shutdown window in seconds.
	DefaultShutdownTimeoutSecs = 10
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Config is the principal structure holding the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig contains the host-facing server configuration.
type ServerConfig struct {
	Address             string `yaml:"address"`
	LogLevel            string `yaml:"log_level"`
	ShutdownTimeoutSecs int    `yaml:"shutdown_timeout_secs"`
}

// SlogLevel maps the configured log level onto a [slog.Level].
func (c *Config) SlogLevel() slog.Level {
	switch c.Server.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Handler is the principal implementation of the configuration layer.
type Handler struct {
	envReader genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(envReader genericConfigProvider) *Handler {
	return &Handler{
		envReader: envReader,
	}
}

// Load builds the application configuration. An empty configPath yields the
// defaults; envFiles are dotenv files whose keys override the file values
// (missing dotenv files are skipped, configuration is always optional).
func (c *Handler) Load(configPath string, envFiles ...string) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Address:             DefaultAddress,
			LogLevel:            DefaultLogLevel,
			ShutdownTimeoutSecs: DefaultShutdownTimeoutSecs,
		},
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("(config) failed to read file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("(config) failed to parse file: %w", err)
		}
	}

	c.applyEnvOverrides(config, envFiles...)
	c.applyDefaults(config)

	return config, nil
}

func (c *Handler) applyEnvOverrides(config *Config, envFiles ...string) {
	var existing []string

	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return
	}

	envMap, err := c.envReader.Read(existing...)
	if err != nil {
		slog.Warn("Failed to read environment overrides (were skipped).",
			"err", err,
			"files", existing,
		)

		return
	}

	if value := mapKeyToString(envMap, "FSPROBE_ADDRESS"); value != "" {
		config.Server.Address = value
	}
	if value := mapKeyToString(envMap, "FSPROBE_LOG_LEVEL"); value != "" {
		config.Server.LogLevel = value
	}
	if value := mapKeyToInt(envMap, "FSPROBE_SHUTDOWN_TIMEOUT_SECS"); value > 0 {
		config.Server.ShutdownTimeoutSecs = value
	}
}

func (c *Handler) applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = DefaultAddress
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = DefaultLogLevel
	}
	if config.Server.ShutdownTimeoutSecs <= 0 {
		config.Server.ShutdownTimeoutSecs = DefaultShutdownTimeoutSecs
	}
}

func mapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

func mapKeyToInt(envMap map[string]string, key string) int {
	value := mapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}
