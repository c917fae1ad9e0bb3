package logger

import (
	"os"
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "my-service" {
		t.Errorf("expected service 'my-service', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "svc")
	if l == nil {
		t.Fatal("expected fallback logger for invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "warn")
	defer os.Unsetenv("LOG_LEVEL")
	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %q", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	bad := Config{Level: "loud", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	badFmt := Config{Level: "info", Format: "xml"}
	if err := badFmt.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields map: %v", m)
	}
}

func TestRegistry_GetUnregistered(t *testing.T) {
	l := Get("never-registered")
	if l == nil {
		t.Fatal("expected fallback component logger")
	}
}

func TestRegistry_Register(t *testing.T) {
	custom := NewDefault("custom")
	Register("custom-component", custom)
	if got := Get("custom-component"); got != custom {
		t.Error("expected registered logger to be returned")
	}
}
