// Package config holds runtime settings for the uniadvisor CLI.
package config

// Config holds runtime settings for the terminal client.
//
// Fields:
//   - ServerURL: base URL of the platform backend, no trailing slash.
//   - SessionDBPath: sqlite file persisting the login session.
//   - LogPath: file receiving structured logs ("" discards them so the
//     interactive terminal stays clean).
//   - Debug: lowers the log level to debug.
type Config struct {
	ServerURL     string
	SessionDBPath string
	LogPath       string
	Debug         bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.SessionDBPath = "uniadvisor.db"
	c.LogPath = ""
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables (including a
// .env file when present), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
