package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, levelFor(tt.input), "level %q", tt.input)
	}
}

func TestNew_JSONFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "bridge.log")

	log, err := New(&Config{
		Level:      "info",
		Format:     "json",
		Output:     logFile,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	require.NoError(t, err)

	log.Info("employer registered")
	log.Debug("suppressed at info level")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "employer registered", entry["msg"])
	assert.NotEmpty(t, entry["time"])
	assert.NotEmpty(t, entry["caller"])
}

func TestNew_UnwritableOutputFallsBack(t *testing.T) {
	log, err := New(&Config{
		Level:      "info",
		Format:     "json",
		Output:     filepath.Join(t.TempDir(), "missing", "nested", "bridge.log"),
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("still usable")
}
