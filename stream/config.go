package stream

import (
	"time"

	"github.com/kbukum/streamkit/validation"
)

// Config holds materializer settings, typically loaded through the config
// package and passed in via WithConfig.
type Config struct {
	Name         string        `mapstructure:"name" validate:"required"`
	AwaitTimeout time.Duration `mapstructure:"await_timeout" validate:"min=0"`
	Tracing      bool          `mapstructure:"tracing"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "streamkit"
	}
	if c.AwaitTimeout == 0 {
		c.AwaitTimeout = DefaultAwaitTimeout
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
