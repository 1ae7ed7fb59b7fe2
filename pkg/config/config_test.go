package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetConfigDir validates config directory access
func TestGetConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	configDir := GetConfigDir()
	if configDir == "" {
		t.Fatal("Config directory should not be empty")
	}

	// Verify directory exists
	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Config directory should exist: %v", err)
	}
}

// TestGetSessionPath validates the session file path
func TestGetSessionPath(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	sessionPath := GetSessionPath()
	if sessionPath == "" {
		t.Fatal("Session path should not be empty")
	}
	if !filepath.IsAbs(sessionPath) {
		t.Error("Session path should be absolute")
	}
	if filepath.Dir(sessionPath) != GetConfigDir() {
		t.Error("Session file should live in the config directory")
	}
}

// TestDefaults validates the baked-in configuration defaults
func TestDefaults(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if got := GetString("api.base_url"); got == "" {
		t.Error("api.base_url default missing")
	}
	if got := GetInt("api.retry_count"); got != 3 {
		t.Errorf("api.retry_count default = %d, want 3", got)
	}
	if got := GetInt("api.retry_wait"); got != 1 {
		t.Errorf("api.retry_wait default = %d, want 1", got)
	}
	if got := GetInt("notifications.poll_interval"); got != 30 {
		t.Errorf("notifications.poll_interval default = %d, want 30", got)
	}
	if got := GetInt("search.debounce_ms"); got != 300 {
		t.Errorf("search.debounce_ms default = %d, want 300", got)
	}
}

// TestOverride validates non-persisted overrides
func TestOverride(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")
	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	Override("api.base_url", "http://example.test:9999")
	if got := GetString("api.base_url"); got != "http://example.test:9999" {
		t.Errorf("Override not visible: %s", got)
	}

	// Nothing written to disk
	if _, err := os.Stat(configPath); err == nil {
		data, _ := os.ReadFile(configPath)
		if len(data) > 0 {
			t.Error("Override should not persist to the config file")
		}
	}
}
