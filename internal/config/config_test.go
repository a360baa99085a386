package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want %q", cfg.Color, "auto")
	}
	if cfg.Style != "solarized-dark" {
		t.Errorf("Style = %q, want %q", cfg.Style, "solarized-dark")
	}
	if cfg.SheetsDir != "" {
		t.Errorf("SheetsDir = %q, want empty", cfg.SheetsDir)
	}
	if !cfg.Cache {
		t.Error("Cache = false, want true")
	}
	if cfg.SheetsRecursive {
		t.Error("SheetsRecursive = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, `log_level: debug
color: never
style: monokai
sheets_dir: /tmp/sheets
sheets_recursive: true
cache: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	if cfg.Style != "monokai" {
		t.Errorf("Style = %q, want %q", cfg.Style, "monokai")
	}
	if cfg.SheetsDir != "/tmp/sheets" {
		t.Errorf("SheetsDir = %q, want %q", cfg.SheetsDir, "/tmp/sheets")
	}
	if !cfg.SheetsRecursive {
		t.Error("SheetsRecursive = false, want true")
	}
	if cfg.Cache {
		t.Error("Cache = true, want false")
	}
}

// TestLoadConfigPartialFile keeps defaults for keys the file omits
func TestLoadConfigPartialFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "color: always\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Color != "always" {
		t.Errorf("Color = %q, want %q", cfg.Color, "always")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "warn")
	}
	if !cfg.Cache {
		t.Error("Cache should keep its default when omitted")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if cfg.Style != "solarized-dark" {
		t.Errorf("expected defaults for missing file, got style %q", cfg.Style)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "log_level: [unclosed\n"))
	if err == nil {
		t.Fatal("LoadConfig() should fail for malformed YAML")
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	level := "trace"
	noCache := false
	recursive := true

	cfg.MergeWithFlags(&level, nil, nil, nil, &recursive, &noCache)

	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "trace")
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, nil flag should not override", cfg.Color)
	}
	if cfg.Cache {
		t.Error("Cache = true, want false from flag")
	}
	if !cfg.SheetsRecursive {
		t.Error("SheetsRecursive = false, want true from flag")
	}
}

func TestValidate(t *testing.T) {
	sheetsDir := t.TempDir()
	file := filepath.Join(sheetsDir, "basics.rs")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"valid sheets dir", func(c *Config) { c.SheetsDir = sheetsDir }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, true},
		{"empty style", func(c *Config) { c.Style = "" }, true},
		{"missing sheets dir", func(c *Config) { c.SheetsDir = filepath.Join(sheetsDir, "nope") }, true},
		{"sheets dir is file", func(c *Config) { c.SheetsDir = file }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetHome(t *testing.T) {
	t.Setenv(HomeEnv, "/opt/rustcheat")

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if home != "/opt/rustcheat" {
		t.Errorf("GetHome() = %q, want %q", home, "/opt/rustcheat")
	}

	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if path != filepath.Join("/opt/rustcheat", "config.yaml") {
		t.Errorf("DefaultConfigPath() = %q", path)
	}
}
