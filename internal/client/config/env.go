package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over .env entries, which godotenv guarantees by never overwriting.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("UNIADVISOR_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("UNIADVISOR_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("UNIADVISOR_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("UNIADVISOR_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
