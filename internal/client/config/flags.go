package config

import (
	"flag"
	"time"

	"github.com/todoterm/todoterm/internal/flagx"
)

// parseFlags overlays selected Config fields with command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the Todo service API
//	-t int      request timeout in seconds
//	-d string   path to the local session database
//	-l string   log level
//
// Args are filtered to the flags handled here, so flags owned by other
// components (or the test runner) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("todoterm", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Todo service API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
