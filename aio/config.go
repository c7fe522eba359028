package aio

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the environment-driven client settings. Values are taken from
// environment variables with the prefix "AIO_".
// Example: AIO_USERNAME=alice AIO_KEY=aio_xxxx AIO_TIMEOUT=10s .
type Config struct {
	Username string        `envconfig:"USERNAME"`
	Key      string        `envconfig:"KEY"`
	URL      string        `envconfig:"URL"     default:"https://io.adafruit.com/api"`
	Version  string        `envconfig:"VERSION" default:"v2"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug    bool          `envconfig:"DEBUG"`
}

// LoadConfig populates Config from environment variables (prefix AIO_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("AIO", &c)
}

// NewFromEnv builds a Client from AIO_* environment variables. Explicit
// options are applied after the environment-derived ones and win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	envOpts := []Option{
		WithBaseURL(cfg.URL),
		WithAPIVersion(cfg.Version),
		WithDebugLogging(cfg.Debug),
	}
	if cfg.Timeout > 0 {
		envOpts = append(envOpts, withTimeout(cfg.Timeout))
	}
	return New(cfg.Username, cfg.Key, append(envOpts, opts...)...)
}

// withTimeout adjusts the default transport's timeout. Unexported: callers
// with special timeout needs inject their own *http.Client instead.
func withTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.http.Timeout = d
		return nil
	}
}
