package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.GatewayAddr)
	assert.Equal(t, "mantis-field.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.CallTimeout)
	assert.Equal(t, PhotoBackendGateway, c.PhotoBackend)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.GatewayAddr)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}
