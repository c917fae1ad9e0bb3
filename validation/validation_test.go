package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/streamkit/errors"
)

type sampleConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Workers int    `mapstructure:"workers" validate:"gte=1"`
	Mode    string `mapstructure:"mode" validate:"oneof=eager lazy"`
}

func TestValidate_Success(t *testing.T) {
	cfg := sampleConfig{Name: "mat", Workers: 2, Mode: "lazy"}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := sampleConfig{Workers: 1, Mode: "eager"}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("expected field name in message, got %q", err.Error())
	}
}

func TestValidate_OneOf(t *testing.T) {
	cfg := sampleConfig{Name: "mat", Workers: 1, Mode: "sideways"}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for mode")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("expected oneof message, got %q", err.Error())
	}
}

func TestValidator_Collects(t *testing.T) {
	v := New()
	v.Check(true, "ok_field", "never added")
	v.Check(false, "interval", "must be positive")
	v.AddError("seed", "is required")

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors()))
	}
	err := v.Validate()
	if err == nil {
		t.Fatal("expected AppError")
	}
	if !strings.Contains(err.Error(), "interval") || !strings.Contains(err.Error(), "seed") {
		t.Errorf("expected both fields in message, got %q", err.Error())
	}
}

func TestValidator_Empty(t *testing.T) {
	v := New()
	if v.Validate() != nil {
		t.Error("expected nil for empty validator")
	}
}
