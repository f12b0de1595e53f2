package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"", InfoLevel, false},
		{"INFO", InfoLevel, false},
		{"warning", WarnLevel, false},
		{" error ", ErrorLevel, false},
		{"verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileLoggerWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewFileLogger(InfoLevel, &buf)

	log.Info("Launcher", "opening simulation", map[string]interface{}{"name": "Math — Probability"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Launcher", entry["component"])
	assert.Equal(t, "opening simulation", entry["message"])
	assert.Equal(t, "Math — Probability", entry["name"])
}

func TestFileLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewFileLogger(WarnLevel, &buf)

	log.Debug("Controller", "dropped", nil)
	log.Info("Controller", "dropped", nil)
	assert.Zero(t, buf.Len())

	log.Error("Controller", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestFileLoggerLevelsCarryComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewFileLogger(DebugLevel, &buf)
	fields := map[string]interface{}{"simulation": "Math — Probability"}

	log.Debug("Controller", "selected", fields)
	log.Warning("Controller", "odd", fields)
	log.Error("Controller", errors.New("boom"), fields)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	for i, level := range []string{"debug", "warn", "error"} {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(lines[i], &entry))
		assert.Equal(t, level, entry["level"])
		assert.Equal(t, "Controller", entry["component"])
		assert.Equal(t, "Math — Probability", entry["simulation"])
	}
}
