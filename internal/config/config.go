// Package config loads markwp settings from an optional YAML file, then
// overlays environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/rgonek/markwp/converter"
	"github.com/rgonek/markwp/tokenstream"
)

// MaxInputSize limits config files to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInputTooLarge  = errors.New("config file exceeds maximum size")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Config holds CLI and server settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Server  ServerConfig  `yaml:"server"`
}

// ConvertConfig mirrors converter.Config.
type ConvertConfig struct {
	Pretty             bool   `yaml:"pretty"`
	Debug              bool   `yaml:"debug"`
	Tokenizer          string `yaml:"tokenizer"`
	DisableTypographer bool   `yaml:"disableTypographer"`
	DisableLinkify     bool   `yaml:"disableLinkify"`
}

// ServerConfig configures the HTTP tool server.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	// APIToken, when set, is required as a bearer token on /mcp.
	APIToken string `yaml:"apiToken"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Tokenizer: string(tokenstream.BackendGoldmark),
		},
		Server: ServerConfig{
			Port: "3000",
		},
	}
}

// Load reads the YAML file at path, if path is not empty, over the defaults
// and then applies environment overrides:
//
//	API_TOKEN         bearer token for the HTTP server
//	MARKWP_HOST       HTTP listen host
//	MARKWP_PORT       HTTP listen port
//	MARKWP_TOKENIZER  tokenizer backend
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Server.Host = envOrDefault("MARKWP_HOST", cfg.Server.Host)
	cfg.Server.Port = envOrDefault("MARKWP_PORT", cfg.Server.Port)
	cfg.Server.APIToken = envOrDefault("API_TOKEN", cfg.Server.APIToken)
	cfg.Convert.Tokenizer = envOrDefault("MARKWP_TOKENIZER", cfg.Convert.Tokenizer)
	if cfg.Convert.Tokenizer == "" {
		cfg.Convert.Tokenizer = string(tokenstream.BackendGoldmark)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if len(data) == 0 {
		return nil
	}

	if err := yaml.UnmarshalWithOptions(data, c, yaml.Strict()); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return nil
}

// Validate checks that config values are valid.
func (c *Config) Validate() error {
	if err := c.ConverterConfig().Validate(); err != nil {
		return err
	}
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid server port %q", c.Server.Port)
	}
	return nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// ConverterConfig returns the converter settings. The logger is left for
// the caller to set.
func (c *Config) ConverterConfig() converter.Config {
	return converter.Config{
		Pretty:             c.Convert.Pretty,
		Debug:              c.Convert.Debug,
		Tokenizer:          tokenstream.Backend(c.Convert.Tokenizer),
		DisableTypographer: c.Convert.DisableTypographer,
		DisableLinkify:     c.Convert.DisableLinkify,
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
