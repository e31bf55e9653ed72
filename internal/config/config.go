// Package config handles configuration for the TraceSnap CLI, including
// defaults, JSON overlay, environment overlay and command-line flags.
package config

// Config holds runtime settings for the TraceSnap CLI.
//
// Fields:
//   - DatabaseDSN: path or DSN of the local SQLite database holding the
//     durable key/value store.
type Config struct {
	DatabaseDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "tracesnap.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
