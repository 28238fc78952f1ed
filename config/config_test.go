package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.WarningsAsErrors)
	assert.Empty(t, cfg.RuleFiles)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("ERCHECK_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	viper.Reset()
	t.Setenv("ERCHECK_LOG_LEVEL", "silly")

	_, err := LoadConfig()
	assert.Error(t, err)
}
