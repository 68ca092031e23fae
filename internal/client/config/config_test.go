package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.ServerURL)
	assert.Equal(t, "session.db", c.DatabasePath)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("AUTH_SERVER_URL", "http://auth.example:9999")
	t.Setenv("AUTH_CLIENT_DB", "/tmp/custom.db")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://auth.example:9999", c.ServerURL)
	assert.Equal(t, "/tmp/custom.db", c.DatabasePath)
}

func TestParseFlags(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseFlagArgs(&c, []string{"-a", "http://flagged:8081", "-f", "flag.db"})

	assert.Equal(t, "http://flagged:8081", c.ServerURL)
	assert.Equal(t, "flag.db", c.DatabasePath)
}

func TestFilterArgs_DropsUnknownFlags(t *testing.T) {
	got := filterArgs(
		[]string{"-test.v", "-a", "http://x:1", "-unknown=zzz", "-f=local.db"},
		[]string{"-a", "-f"},
	)
	assert.Equal(t, []string{"-a", "http://x:1", "-f=local.db"}, got)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.NotEmpty(t, cfg.ServerURL)
	assert.NotEmpty(t, cfg.DatabasePath)
}
