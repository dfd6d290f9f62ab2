// Package config loads runtime configuration for the sign-in CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the authentication API
//	-p string   path of the login endpoint
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "login_path": "/api/auth/login",
//	  "database_path": "session.db",
//	  "log_level": "info"
//	}
//
// Keys missing from the JSON file keep the value of the previous layer.
package config
