// Package config loads calcli settings from defaults, an optional YAML file
// and CALCLI_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/calcli/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. CALCLI_DECIMALS.
const EnvPrefix = "CALCLI_"

// Config holds user-tunable settings.
type Config struct {
	Decimals     int    `yaml:"decimals" mapstructure:"decimals"`
	Notation     string `yaml:"notation" mapstructure:"notation"`
	Prompt       string `yaml:"prompt" mapstructure:"prompt"`
	Banner       bool   `yaml:"banner" mapstructure:"banner"`
	Color        bool   `yaml:"color" mapstructure:"color"`
	MetricsAddr  string `yaml:"metrics_addr" mapstructure:"metrics_addr"`
	MaxInputSize int    `yaml:"max_input_size" mapstructure:"max_input_size"`
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Decimals:     domain.DefaultDecimalPlaces,
		Notation:     domain.NotationNormal.String(),
		Prompt:       ">>> ",
		Banner:       true,
		Color:        true,
		MaxInputSize: 4096,
		LogLevel:     "debug",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/calcli/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calcli", "config.yaml")
}

// Load builds a Config from defaults, the file at path and the environment.
// A missing file is only an error when required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if err := LoadFile(&cfg, path, required); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.Environ()); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile overlays the YAML file at path onto cfg.
func LoadFile(cfg *Config, path string, required bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ApplyEnv overlays CALCLI_* variables from environ onto cfg.
// Values are strings; they are converted with weakly typed decoding,
// so CALCLI_BANNER=false and CALCLI_DECIMALS=5 work as expected.
func ApplyEnv(cfg *Config, environ []string) error {
	overrides := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		overrides[strings.ToLower(strings.TrimPrefix(key, EnvPrefix))] = value
	}
	if len(overrides) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(overrides); err != nil {
		return fmt.Errorf("invalid %s environment: %w", EnvPrefix+"*", err)
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Decimals < 0 || c.Decimals > domain.MaxDecimalPlaces {
		return fmt.Errorf("decimals must be between 0 and %d, got %d", domain.MaxDecimalPlaces, c.Decimals)
	}
	if _, err := domain.ParseNotation(c.Notation); err != nil {
		return err
	}
	if c.MaxInputSize <= 0 {
		return fmt.Errorf("max_input_size must be positive, got %d", c.MaxInputSize)
	}
	return nil
}

// DisplayFormat converts the notation and decimals settings.
func (c Config) DisplayFormat() (domain.DisplayFormat, error) {
	n, err := domain.ParseNotation(c.Notation)
	if err != nil {
		return domain.DisplayFormat{}, err
	}
	return domain.DisplayFormat{Notation: n, DecimalPlaces: c.Decimals}, nil
}
