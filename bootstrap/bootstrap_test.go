package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	logger, sugar, err := InitLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NotNil(t, sugar)
	sugar.Debug("logger initialized")
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	_, _, err := InitLogger("verbose")
	assert.Error(t, err)
}
