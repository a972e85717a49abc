package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is named explicitly.
const DefaultPath = "pixsteg.yaml"

// Config holds defaults for the command line flags.
type Config struct {
	LogLevel       string `yaml:"log_level"`
	Shift          int    `yaml:"shift"`
	MaxShift       int    `yaml:"max_shift"`
	FlattenWhite   bool   `yaml:"flatten_white"`
	PNGCompression string `yaml:"png_compression"`
	Workers        int    `yaml:"workers"`
	Access         Access `yaml:"access"`
}

// Access configures the passphrase gate run before hide and reveal.
type Access struct {
	Enabled bool   `yaml:"enabled"`
	KeyFile string `yaml:"key_file"`
	Token   string `yaml:"token"`
	Phrase  string `yaml:"phrase"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		Shift:          0,
		MaxShift:       30,
		FlattenWhite:   true,
		PNGCompression: "default",
		Workers:        0,
		Access: Access{
			KeyFile: "secret.key",
		},
	}
}

// LoadConfig reads the YAML file at configPath over the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", configPath, err)
	}

	return config, nil
}

// LoadOptional is LoadConfig, falling back to the defaults when configPath is
// the default path and does not exist.
func LoadOptional(configPath string) (*Config, error) {
	config, err := LoadConfig(configPath)
	if err != nil && configPath == DefaultPath && errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// SaveConfig writes config to configPath, readable only by the owner since it
// may carry the access token.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxShift < 0 || c.MaxShift > 255 {
		return fmt.Errorf("max_shift %d outside 0..255", c.MaxShift)
	}
	if c.Shift < 0 || c.Shift > c.MaxShift {
		return fmt.Errorf("shift %d outside 0..%d", c.Shift, c.MaxShift)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative workers: %d", c.Workers)
	}
	if c.Access.Enabled && (c.Access.KeyFile == "" || c.Access.Token == "") {
		return fmt.Errorf("access gate enabled without key_file and token")
	}
	return nil
}

// Vars exposes the config as kong interpolation variables.
func (c *Config) Vars() map[string]string {
	return map[string]string{
		"log_level":       c.LogLevel,
		"shift":           strconv.Itoa(c.Shift),
		"max_shift":       strconv.Itoa(c.MaxShift),
		"flatten_white":   strconv.FormatBool(c.FlattenWhite),
		"png_compression": c.PNGCompression,
		"workers":         strconv.Itoa(c.Workers),
	}
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
