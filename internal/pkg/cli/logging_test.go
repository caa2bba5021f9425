package cli

import (
	"log/slog"
	"testing"

	"github.com/MatusOllah/slogcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLoggerFromConfig(t *testing.T) {
	t.Run("text-no-color", func(t *testing.T) {
		logger, err := CreateLoggerFromConfig(LogConfig{Level: "info", Format: "text-no-color"})
		require.NoError(t, err)

		_, ok := logger.Handler().(*slog.TextHandler)
		assert.True(t, ok)
	})

	t.Run("text-color", func(t *testing.T) {
		logger, err := CreateLoggerFromConfig(LogConfig{Level: "debug", Format: "text-color"})
		require.NoError(t, err)

		_, ok := logger.Handler().(*slogcolor.Handler)
		assert.True(t, ok)
	})

	t.Run("json", func(t *testing.T) {
		logger, err := CreateLoggerFromConfig(LogConfig{Level: "warn", Format: "json"})
		require.NoError(t, err)

		_, ok := logger.Handler().(*slog.JSONHandler)
		assert.True(t, ok)
	})

	t.Run("normalizes input", func(t *testing.T) {
		logger, err := CreateLoggerFromConfig(LogConfig{Level: " ERROR ", Format: " Json "})
		require.NoError(t, err)

		_, ok := logger.Handler().(*slog.JSONHandler)
		assert.True(t, ok)
	})

	t.Run("quiet keeps handler type", func(t *testing.T) {
		logger, err := CreateLoggerFromConfig(LogConfig{Level: "info", Format: "json", Quiet: true})
		require.NoError(t, err)

		_, ok := logger.Handler().(*slog.JSONHandler)
		assert.True(t, ok)
	})
}

func TestCreateLoggerFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name          string
		config        LogConfig
		errorContains string
	}{
		{
			name:          "missing level",
			config:        LogConfig{Format: "json"},
			errorContains: "log level is required",
		},
		{
			name:          "unknown level",
			config:        LogConfig{Level: "trace", Format: "json"},
			errorContains: "unknown log level",
		},
		{
			name:          "missing format",
			config:        LogConfig{Level: "info"},
			errorContains: "log format is required",
		},
		{
			name:          "unknown format",
			config:        LogConfig{Level: "info", Format: "logfmt"},
			errorContains: "unknown log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := CreateLoggerFromConfig(tt.config)
			require.Error(t, err)
			assert.Nil(t, logger)
			assert.ErrorContains(t, err, tt.errorContains)
		})
	}
}
