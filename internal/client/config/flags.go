package config

import (
	"flag"
	"os"
	"time"

	"github.com/fieldassets/fieldassets/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote API (default from Config)
//	-d string   path of the local database file (default from Config)
//	-p int      sync pacing in milliseconds (default from Config)
//	-t int      HTTP timeout in seconds (default from Config)
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components (the JSON config file flag in particular).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the remote API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	pacing := fs.Int("p", int(cfg.FetchPacing.Milliseconds()), "sync pacing (in milliseconds)")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.FetchPacing = time.Duration(*pacing) * time.Millisecond
	cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
}
