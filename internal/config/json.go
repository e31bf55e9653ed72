package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tracesnap/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file whose path is
// given via the -c or -config flags. If no path is given, nothing is loaded.
// Read or unmarshal errors panic; intended usage is defaults -> parseJson ->
// parseEnv -> parseFlags, where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
