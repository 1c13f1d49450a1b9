package config

import (
	"flag"
	"os"

	"github.com/abylaikhan/uniadvisor/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the backend server
//	-db string  path of the session database file
//	-log string path of the log file
//	-debug      enable debug logging
//
// Args are filtered through flagx.FilterArgs so the -c/-config flags owned
// by the JSON layer do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-db", "-log", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "base URL of the backend server")
	fs.StringVar(&cfg.SessionDBPath, "db", cfg.SessionDBPath, "path of the session database file")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "path of the log file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
