package config

import "os"

// parseEnv overlays Config with values from environment variables. A .env
// file, if present, is loaded into the environment by main before LoadConfig
// runs, so development setups can keep settings out of the shell profile.
//
// Recognized variables:
//
//	TRACESNAP_DATABASE_DSN — path or DSN of the local database
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("TRACESNAP_DATABASE_DSN"); ok && v != "" {
		cfg.DatabaseDSN = v
	}
}
