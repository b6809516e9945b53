// Package config loads the idgen server configuration from defaults, an
// optional YAML file, IDGEN_* environment variables and command-line
// overrides, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/leapmux/idgen/internal/logging"
	"github.com/leapmux/idgen/internal/validate"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "IDGEN_"

// Config holds the server's runtime configuration.
type Config struct {
	Addr             string        `koanf:"addr"`               // Listen address (e.g. ":4328")
	LogLevel         string        `koanf:"log_level"`          // debug, info, warn or error
	MaxBatch         int           `koanf:"max_batch"`          // Upper bound on n per request; 0 disables the cap
	CompressMinBytes int           `koanf:"compress_min_bytes"` // Smallest response body worth compressing
	Node             string        `koanf:"node"`               // Version 1 node, 12 hex digits
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`   // Drain period for in-flight requests
}

// Defaults returns the default value of every key.
func Defaults() map[string]any {
	return map[string]any{
		"addr":               ":4328",
		"log_level":          "info",
		"max_batch":          1_000_000,
		"compress_min_bytes": 1024,
		"node":               "01:02:03:04:05:06",
		"shutdown_timeout":   "10s",
	}
}

// Load builds a Config. path may be empty to skip the YAML file. overrides
// holds values set explicitly on the command line, keyed like the file.
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("load overrides: %w", err)
		}
	}

	c := &Config{}
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxBatch < 0 {
		return fmt.Errorf("max_batch must not be negative")
	}
	if c.CompressMinBytes < 0 {
		return fmt.Errorf("compress_min_bytes must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	if _, err := c.NodeID(); err != nil {
		return err
	}
	return nil
}

// NodeID returns the parsed version 1 node.
func (c *Config) NodeID() ([6]byte, error) {
	return validate.ParseNode("node", c.Node)
}
