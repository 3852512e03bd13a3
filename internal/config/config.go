// Package config provides configuration for the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidLogLevel is returned when LOG_LEVEL is not one of debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidPort is returned when PORT is not a number between 0 and 65535.
	ErrInvalidPort = errors.New("invalid port")
)

const (
	// AppEnvironmentDefault is the default application environment.
	AppEnvironmentDefault = "development"
	// AppEnvironmentProduction is the production application environment.
	AppEnvironmentProduction = "production"
	// HostDefault is the default host to listen on. Can be an IP address or hostname.
	HostDefault = "localhost"
	// PortDefault is the default port to listen on.
	PortDefault = "8080"

	// SeedDefault controls whether the quiz store starts with the sample quizzes.
	SeedDefault = true

	// ReadHeaderTimeoutDefault is the default time allowed to read request headers.
	ReadHeaderTimeoutDefault = 5 * time.Second
	// ShutdownTimeoutDefault is the default time allowed for a graceful shutdown.
	ShutdownTimeoutDefault = 5 * time.Second

	maxPort = 65535
)

// Config represents the application configuration.
type Config struct {
	AppEnvironment string `yaml:"app_env"`

	Host string `yaml:"host"`
	Port string `yaml:"port"`

	// LogLevel is empty until Parse fills in the default for the environment.
	LogLevel string `yaml:"log_level"`

	Seed bool `yaml:"seed"`

	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c.AppEnvironment == AppEnvironmentProduction
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

// Parse parses the optional CONFIG_FILE and environment variables into the config.
// Environment variables take precedence over values from the file.
func Parse(getenv func(string) string) (*Config, error) {
	c := Config{
		AppEnvironment:    AppEnvironmentDefault,
		Host:              HostDefault,
		Port:              PortDefault,
		Seed:              SeedDefault,
		ReadHeaderTimeout: ReadHeaderTimeoutDefault,
		ShutdownTimeout:   ShutdownTimeoutDefault,
	}

	if path := getenv("CONFIG_FILE"); path != "" {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Overwrite defaults with environment variables.
	if val := getenv("APP_ENV"); val != "" {
		c.AppEnvironment = val
	}
	if val := getenv("HOST"); val != "" {
		c.Host = val
	}
	if val := getenv("PORT"); val != "" {
		c.Port = val
	}
	if val := getenv("LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	// Strict validation for types
	if val := getenv("SEED"); val != "" {
		var err error
		c.Seed, err = strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED: %q, err: %w", val, err)
		}
	}

	if val := getenv("READ_HEADER_TIMEOUT"); val != "" {
		var err error
		c.ReadHeaderTimeout, err = time.ParseDuration(val)
		if err != nil {
			return nil, fmt.Errorf("invalid READ_HEADER_TIMEOUT: %q, err: %w", val, err)
		}
	}

	if val := getenv("SHUTDOWN_TIMEOUT"); val != "" {
		var err error
		c.ShutdownTimeout, err = time.ParseDuration(val)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %q, err: %w", val, err)
		}
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 0 || port > maxPort {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPort, c.Port)
	}

	if c.LogLevel == "" {
		c.LogLevel = "debug"
		if c.IsProduction() {
			c.LogLevel = "info"
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file %q: %w", path, err)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}
