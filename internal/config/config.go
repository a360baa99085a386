package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/rustcheat/internal/highlight"
	"github.com/harrison/rustcheat/internal/logger"
)

// Config represents rustcheat configuration options
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color selects when output is colored (auto, always, never)
	Color string `yaml:"color"`

	// Style is the chroma style used for syntax highlighting
	Style string `yaml:"style"`

	// SheetsDir is an optional directory of extra sheets listed after the bundled ones
	SheetsDir string `yaml:"sheets_dir"`

	// SheetsRecursive also loads sheets from subdirectories of SheetsDir
	SheetsRecursive bool `yaml:"sheets_recursive"`

	// Cache memoizes parsed sheets for the lifetime of the process
	Cache bool `yaml:"cache"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  logger.DefaultLevel,
		Color:     highlight.ColorAuto,
		Style:     highlight.DefaultStyle,
		SheetsDir: "",
		Cache:     true,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from zero values
	type yamlConfig struct {
		LogLevel  *string `yaml:"log_level"`
		Color     *string `yaml:"color"`
		Style     *string `yaml:"style"`
		SheetsDir *string `yaml:"sheets_dir"`
		Recursive *bool   `yaml:"sheets_recursive"`
		Cache     *bool   `yaml:"cache"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != nil && *yamlCfg.LogLevel != "" {
		cfg.LogLevel = *yamlCfg.LogLevel
	}
	if yamlCfg.Color != nil && *yamlCfg.Color != "" {
		cfg.Color = *yamlCfg.Color
	}
	if yamlCfg.Style != nil && *yamlCfg.Style != "" {
		cfg.Style = *yamlCfg.Style
	}
	if yamlCfg.SheetsDir != nil {
		cfg.SheetsDir = *yamlCfg.SheetsDir
	}
	if yamlCfg.Recursive != nil {
		cfg.SheetsRecursive = *yamlCfg.Recursive
	}
	if yamlCfg.Cache != nil {
		cfg.Cache = *yamlCfg.Cache
	}

	return cfg, nil
}

// LoadConfigFromHome loads config.yaml from the rustcheat home directory
func LoadConfigFromHome() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel, color, style, sheetsDir *string, recursive, cache *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if color != nil {
		c.Color = *color
	}
	if style != nil {
		c.Style = *style
	}
	if sheetsDir != nil {
		c.SheetsDir = *sheetsDir
	}
	if recursive != nil {
		c.SheetsRecursive = *recursive
	}
	if cache != nil {
		c.Cache = *cache
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	if !highlight.IsValidColorMode(c.Color) {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}
	if c.Style == "" {
		return fmt.Errorf("style cannot be empty")
	}
	if c.SheetsDir != "" {
		info, err := os.Stat(c.SheetsDir)
		if err != nil {
			return fmt.Errorf("sheets_dir %q is not accessible: %w", c.SheetsDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("sheets_dir %q is not a directory", c.SheetsDir)
		}
	}
	return nil
}
