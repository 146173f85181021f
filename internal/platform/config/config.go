// Package config loads and validates the service configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultProfile is the profile used when APP_ENVIRONMENT is unset.
	DefaultProfile = "local"

	// DefaultServerPort is the port the HTTP server binds by default.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize caps request bodies at 1 MiB by default.
	DefaultMaxRequestSize = 1 << 20

	// DefaultLogFileMaxSizeMB is the rotation threshold for the log file.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is how many rotated log files are kept.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is how long rotated log files are kept.
	DefaultLogFileMaxAgeDays = 28
)

const (
	configDir = "configs"
	envPrefix = "APP_"
	keyDelim  = "."
)

// Config is the root of the service configuration tree.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig holds the log level, output format, and optional file sink.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig holds the rolling file sink settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"       validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"   validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"    validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig holds the OpenTelemetry exporter settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// ProfileFromEnv returns the configuration profile named by
// APP_ENVIRONMENT, or DefaultProfile when the variable is unset.
func ProfileFromEnv() string {
	if profile := os.Getenv(envPrefix + "ENVIRONMENT"); profile != "" {
		return profile
	}

	return DefaultProfile
}

// defaults returns the built-in values every profile starts from.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotes-api",
		"app.version":     "dev",
		"app.environment": DefaultProfile,

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quotes-api.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotes-api",
		"telemetry.sampling_rate": 1.0,
	}
}

// Load assembles the configuration for the given profile. Sources are
// layered from lowest to highest precedence: built-in defaults, then
// configs/base.yaml, then configs/{profile}.yaml, then APP_ environment
// variables. Missing files are skipped; unreadable ones are errors.
func Load(profile string) (*Config, error) {
	k := koanf.New(keyDelim)

	if err := k.Load(confmap.Provider(defaults(), keyDelim), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	paths := []string{filepath.Join(configDir, "base.yaml")}
	if profile != "" {
		paths = append(paths, filepath.Join(configDir, profile+".yaml"))
	}

	for _, path := range paths {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	lookup := envKeyLookup()
	mapper := func(name string) string {
		return lookup[name]
	}

	if err := k.Load(env.Provider(envPrefix, keyDelim, mapper), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyLookup maps APP_ variable names onto config keys, built from the
// default key set: server.read_timeout is reachable as
// APP_SERVER_READ_TIMEOUT. Underscores inside a key segment are
// indistinguishable from segment separators, so the known keys are the
// only way to resolve the mapping; variables matching no key map to the
// empty string, which the env provider skips.
func envKeyLookup() map[string]string {
	lookup := make(map[string]string)

	for key := range defaults() {
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(key, keyDelim, "_"))
		lookup[name] = key
	}

	return lookup
}

// loadFileIfExists layers a YAML file into k, treating a missing file as
// no-op. Read and parse failures are returned.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
