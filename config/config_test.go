package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := AppConfig{Name: "app"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := AppConfig{Name: "app", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})

	t.Run("logging defaults are applied", func(t *testing.T) {
		cfg := AppConfig{Name: "app"}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "info" {
			t.Errorf("expected logging level 'info', got %q", cfg.Logging.Level)
		}
	})
}

func TestAppConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", AppConfig{Name: "app", Environment: "development"}, false, ""},
		{"valid staging", AppConfig{Name: "app", Environment: "staging"}, false, ""},
		{"valid production", AppConfig{Name: "app", Environment: "production"}, false, ""},
		{"missing name", AppConfig{Environment: "production"}, true, "config.name is required"},
		{"invalid environment", AppConfig{Name: "app", Environment: "invalid"}, true, "config.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: test-app
environment: staging
version: "1.0.0"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	var cfg AppConfig
	if err := LoadConfig("test-app", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "test-app" {
		t.Errorf("expected name 'test-app', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %q", cfg.Version)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("environment: development\n"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv("ENVIRONMENT", "production")
	defer os.Unsetenv("ENVIRONMENT")

	var cfg AppConfig
	if err := LoadConfig("test-app", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected env override to win, got %q", cfg.Environment)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg AppConfig
	// No file anywhere: should not error, just leave zero values.
	if err := LoadConfig("nonexistent-app", &cfg, WithConfigFile(""), WithFileSystem(&fakeFS{})); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("STREAM_AWAIT_TIMEOUT")
	want := map[string]bool{
		"stream_await_timeout": false,
		"stream.await.timeout": false,
		"stream.await_timeout": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected variant %q, got %v", k, variants)
		}
	}
}

// fakeFS reports no files present.
type fakeFS struct{}

func (f *fakeFS) Exists(string) bool   { return false }
func (f *fakeFS) LoadEnv(string) error { return nil }
