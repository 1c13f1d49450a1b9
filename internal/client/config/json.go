package config

import (
	"encoding/json"
	"os"

	"github.com/abylaikhan/uniadvisor/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards so absent keys keep their
// earlier-layer values.
type jsonConfig struct {
	ServerURL     *string `json:"server_url"`
	SessionDBPath *string `json:"session_db_path"`
	LogPath       *string `json:"log_path"`
	Debug         *bool   `json:"debug"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag, no JSON. Read or unmarshal errors panic; the config
// file was explicitly requested, so silently ignoring it would be worse.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
	if jc.LogPath != nil {
		cfg.LogPath = *jc.LogPath
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
