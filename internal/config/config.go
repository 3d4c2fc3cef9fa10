// Package config holds runtime settings for the portal sync engine and CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - BaseURL: root URL of the academic-records service.
//   - DatabasePath: path of the local sqlite store.
//   - HTTPTimeout: connect/read/write timeout applied to every network call.
type Config struct {
	BaseURL      string        `env:"PORTAL_BASE_URL"`
	DatabasePath string        `env:"PORTAL_DB"`
	HTTPTimeout  time.Duration `env:"PORTAL_HTTP_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://portal.example.edu/services/"
	c.DatabasePath = "portal.db"
	c.HTTPTimeout = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
