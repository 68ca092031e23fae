// Package config loads runtime configuration for the CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables: AUTH_SERVER_URL, AUTH_CLIENT_DB.
//  3. Command-line flags (see parseFlags), which override earlier values.
package config

import "os"

// Config holds runtime settings for the CLI client.
//
// Fields:
//   - ServerURL: base URL of the auth server.
//   - DatabasePath: path of the local sqlite file holding the session token.
type Config struct {
	ServerURL    string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.DatabasePath = "session.db"
}

func parseEnv(c *Config) {
	if v := os.Getenv("AUTH_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("AUTH_CLIENT_DB"); v != "" {
		c.DatabasePath = v
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays environment
// variables and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
