package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Keys understood by Load. Each one is read from the environment variable of
// the same name in upper case, e.g. KeyPort from PORT.
const (
	KeyEnv             = "app_env"
	KeyHost            = "host"
	KeyPort            = "port"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyShutdownTimeout = "shutdown_timeout"
)

const (
	defaultEnv             = "dev"
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = "10s"
)

// Log formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config holds application configuration sourced from flags, environment
// variables and an optional dotenv file.
type Config struct {
	Env             string
	Host            string
	Port            string
	LogLevel        zerolog.Level
	LogFormat       string
	ShutdownTimeout time.Duration
}

// IsDev reports whether the app runs in the local development environment.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads configuration into a Config. Values bound to v (flags) win over
// the environment, which wins over envFile, which wins over defaults.
func Load(v *viper.Viper, envFile string) (Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load dotenv file %q: %w", envFile, err)
	}

	v.SetDefault(KeyEnv, defaultEnv)
	v.SetDefault(KeyHost, "")
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyShutdownTimeout, defaultShutdownTimeout)
	v.AutomaticEnv()

	cfg := Config{
		Env:  strings.ToLower(strings.TrimSpace(v.GetString(KeyEnv))),
		Host: strings.TrimSpace(v.GetString(KeyHost)),
		Port: strings.TrimSpace(v.GetString(KeyPort)),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(KeyLogLevel)))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", strings.ToUpper(KeyLogLevel), err)
	}
	cfg.LogLevel = level

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat)))
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = LogFormatJSON
		if cfg.IsDev() {
			cfg.LogFormat = LogFormatConsole
		}
	case LogFormatJSON, LogFormatConsole:
	default:
		return Config{}, fmt.Errorf("%s must be %q or %q, got %q",
			strings.ToUpper(KeyLogFormat), LogFormatJSON, LogFormatConsole, cfg.LogFormat)
	}

	timeout, err := time.ParseDuration(v.GetString(KeyShutdownTimeout))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", strings.ToUpper(KeyShutdownTimeout), err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %s", strings.ToUpper(KeyShutdownTimeout), timeout)
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}
