// Package config owns calcctl file formats: tool config, batch files,
// and player scenarios. All three are TOML.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultFormat    = "pretty"
	DefaultLogLevel  = "info"
	DefaultPrecision = -1
)

// Config holds calcctl tool settings.
type Config struct {
	Format    string
	LogLevel  string
	Precision int
}

type fileConfig struct {
	Format    string `toml:"format"`
	LogLevel  string `toml:"log_level"`
	Precision int    `toml:"precision"`
}

// Default returns the built-in tool settings.
func Default() Config {
	return Config{
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		Precision: DefaultPrecision,
	}
}

// Load reads a tool config, applying file values over defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("precision") {
		cfg.Precision = raw.Precision
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot honor.
func Validate(cfg Config) error {
	switch cfg.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("config: unsupported format %q (expected pretty|json)", cfg.Format)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled":
	default:
		return fmt.Errorf("config: unsupported log_level %q", cfg.LogLevel)
	}
	if cfg.Precision < -1 || cfg.Precision > 17 {
		return fmt.Errorf("config: precision %d out of range [-1, 17]", cfg.Precision)
	}
	return nil
}
