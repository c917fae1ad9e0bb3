// Package validation provides input validation utilities for streamkit configs.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used by the config structs' Validate methods.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    DefaultAwaitTimeout time.Duration `validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(interval > 0, "interval", "must be positive")
//	err := v.Validate()
package validation
