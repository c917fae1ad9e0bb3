package bootstrap

import (
	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/stream"
)

// Config is the interface constraint for application configuration types.
// Any struct that embeds config.AppConfig (value embedding) automatically
// satisfies this interface via promoted methods.
type Config interface {
	GetAppConfig() *config.AppConfig
	ApplyDefaults()
	Validate() error
}

// AppConfig is a ready-made configuration for stream processing applications:
// the base application fields plus a materializer section. Load it with
// config.LoadConfig, or embed it in a larger struct.
type AppConfig struct {
	config.AppConfig `yaml:",inline" mapstructure:",squash"`

	Stream stream.Config `yaml:"stream" mapstructure:"stream"`
}

// ApplyDefaults applies defaults to both sections.
func (c *AppConfig) ApplyDefaults() {
	c.AppConfig.ApplyDefaults()
	if c.Stream.Name == "" {
		c.Stream.Name = c.Name
	}
	c.Stream.ApplyDefaults()
}

// Validate validates both sections.
func (c *AppConfig) Validate() error {
	if err := c.AppConfig.Validate(); err != nil {
		return err
	}
	return c.Stream.Validate()
}
