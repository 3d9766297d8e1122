package config_test

import (
	"testing"

	"github.com/medrano/clinic-registry/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "text", cfg.App.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLINIC_APP_LOG_LEVEL", "debug")
	t.Setenv("CLINIC_APP_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "json", cfg.App.LogFormat)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("CLINIC_APP_LOG_LEVEL", "loud")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
