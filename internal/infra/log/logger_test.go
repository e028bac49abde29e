package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"gatehouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "gatehouse"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("guard", "web"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "gatehouse", entry["service"])
	assert.Equal(t, "web", entry["guard"])
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := newLogger(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
