package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/signin/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// an absent key apart from an empty one.
type JsonConfig struct {
	ServerURL    *string `json:"server_url"`
	LoginPath    *string `json:"login_path"`
	DatabasePath *string `json:"database_path"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.ServerURL, jc.ServerURL)
	overlay(&cfg.LoginPath, jc.LoginPath)
	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.LogLevel, jc.LogLevel)
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
