package config

import "os"

// Config holds runtime settings for the sign-in CLI.
type Config struct {
	ServerURL    string
	LoginPath    string
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with defaults suitable for a local API.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.LoginPath = "/api/auth/login"
	c.DatabasePath = "session.db"
	c.LogLevel = "info"
}

// LoginURL joins ServerURL and LoginPath.
func (c *Config) LoginURL() string {
	base := c.ServerURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	path := c.LoginPath
	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	return base + path
}

// LoadConfig constructs a Config from defaults, the optional JSON file and
// the process command line, in that order.
func LoadConfig() *Config {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
