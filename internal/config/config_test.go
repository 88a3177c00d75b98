package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSet(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	cfg.Set("lastdir", "/tmp/lists")
	if cfg.Get("lastdir") != "/tmp/lists" {
		t.Errorf("Expected '/tmp/lists', got '%s'", cfg.Get("lastdir"))
	}
}

func TestGet(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	// Test getting a value that doesn't exist
	if cfg.Get("nonexistent") != "" {
		t.Errorf("Expected empty string for nonexistent key, got '%s'", cfg.Get("nonexistent"))
	}

	// Set and then get
	cfg.Set("test", "value")
	if cfg.Get("test") != "value" {
		t.Errorf("Expected 'value', got '%s'", cfg.Get("test"))
	}
}

func TestGetAllReturnsACopy(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	cfg.Set("original", "value")

	// Modify the returned map
	all := cfg.GetAll()
	all["original"] = "modified"

	// Verify the original config was not modified
	if cfg.Get("original") != "value" {
		t.Errorf("GetAll() should return a copy, not a reference")
	}
}

func TestNilSessionSettings(t *testing.T) {
	cfg := &Config{}
	// sessionSettings is nil

	// Set should initialize it
	cfg.Set("key", "value")
	if cfg.Get("key") != "value" {
		t.Errorf("Set should initialize nil sessionSettings")
	}

	// Get should handle nil gracefully
	cfg2 := &Config{}
	if cfg2.Get("key") != "" {
		t.Errorf("Get should return empty string for nil sessionSettings")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Delimiter != "newline" {
		t.Errorf("Expected default delimiter 'newline', got '%s'", cfg.Delimiter)
	}
	if cfg.CaseSensitive {
		t.Errorf("Expected case-insensitive default")
	}
	if !cfg.TrimSpaces {
		t.Errorf("Expected trim enabled by default")
	}
	if cfg.sessionSettings == nil {
		t.Errorf("defaultConfig should initialize sessionSettings")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `delimiter = "comma"
case_sensitive = true

[settings]
lastdir = "/data"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Delimiter != "comma" {
		t.Errorf("Expected delimiter 'comma', got '%s'", cfg.Delimiter)
	}
	if !cfg.CaseSensitive {
		t.Errorf("Expected case_sensitive true")
	}
	// trim_spaces is absent from the file, so the default survives
	if !cfg.TrimSpaces {
		t.Errorf("Expected trim_spaces to keep its default")
	}
	if cfg.Get("lastdir") != "/data" {
		t.Errorf("Expected setting 'lastdir' = '/data', got '%s'", cfg.Get("lastdir"))
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Delimiter != "newline" {
		t.Errorf("Expected defaults for missing file, got delimiter '%s'", cfg.Delimiter)
	}
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("delimiter = ["), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Errorf("Expected error for invalid TOML")
	}
}
