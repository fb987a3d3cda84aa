package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://localhost:5000/api" {
			t.Errorf("expected base URL http://localhost:5000/api, got %s", config.API.BaseURL)
		}

		if config.API.TimeoutSeconds != 30 {
			t.Errorf("expected timeout 30, got %d", config.API.TimeoutSeconds)
		}

		if config.Database.Path != "lectern.db" {
			t.Errorf("expected database path lectern.db, got %s", config.Database.Path)
		}

		if config.Upload.Preset != "e-learning" {
			t.Errorf("expected upload preset e-learning, got %s", config.Upload.Preset)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://dashboard.example.com/api"
timeout_seconds = 10
rate_limit = 2.5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[upload]
url = "https://img.example.com/upload"
preset = "custom_preset"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "https://dashboard.example.com/api" {
			t.Errorf("expected custom base URL, got %s", config.API.BaseURL)
		}

		if config.API.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %f", config.API.RateLimit)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Upload.Preset != "custom_preset" {
			t.Errorf("expected upload preset custom_preset, got %s", config.Upload.Preset)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadConfig malformed TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}
