package config

import (
	"flag"

	"github.com/dmitrijs2005/signin/internal/flagx"
)

// parseFlags overlays cfg with -a, -p, -d and -l from args. Other flags are
// filtered out first so the JSON layer's -c does not trip the parser.
// Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-p", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the authentication API")
	fs.StringVar(&cfg.LoginPath, "p", cfg.LoginPath, "login endpoint path")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
