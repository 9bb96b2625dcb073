package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "INFO", "Warn"} {
		LogLevel = level
		assert.NoError(t, ValidateLogLevel(), "level %s", level)
	}

	LogLevel = "verbose"
	assert.Error(t, ValidateLogLevel())
}

func TestIsLogLevelDebugOrBelow(t *testing.T) {
	LogLevel = "debug"
	assert.True(t, IsLogLevelDebugOrBelow())
	LogLevel = "info"
	assert.False(t, IsLogLevelDebugOrBelow())
}
