// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server      ServerConfig       `toml:"server"`
	Scan        ScanConfig         `toml:"scan"`
	Search      SearchConfig       `toml:"search"`
	Collections []CollectionConfig `toml:"collections"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type ScanConfig struct {
	// Interval between full catalog rescans. Zero means the default;
	// watch = true additionally picks up changes as they happen.
	Interval Duration `toml:"interval"`
	Watch    bool     `toml:"watch"`
}

// Duration lets TOML strings like "10m" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type SearchConfig struct {
	// IndexPath is where the full-text index lives. Empty means an
	// in-memory index rebuilt on every start.
	IndexPath string `toml:"index_path"`
}

// CollectionConfig describes one media collection. Type is "movies" or
// "shows". ID is optional; a stable one is derived from the name when
// omitted.
type CollectionConfig struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Type      string `toml:"type"`
	Directory string `toml:"directory"`
}

// Load reads and parses the configuration file. Unresolved ${VAR}
// references are reported through a ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3304
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Scan.Interval.Duration == 0 {
		cfg.Scan.Interval.Duration = 5 * time.Minute
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable
// values and reports the names that had no value.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return out, missing
}
