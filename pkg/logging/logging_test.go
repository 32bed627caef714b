package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ssargent/ghosthex/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.Logging{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("payload decoded", zap.Int("count", 3))
	require.NoError(t, logger.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "payload decoded", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.Logging{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("starting", zap.String("mode", "serve"))
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), "starting")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNewWithWriter_InvalidLevel(t *testing.T) {
	_, err := NewWithWriter(config.Logging{Level: "loud"}, zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ghosthex.log")

	logger, err := New(config.Logging{Level: "info", Format: "json", File: path, MaxBackups: 1})
	require.NoError(t, err)

	logger.Info("drop stored", zap.String("id", "2Bx"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"drop stored"`)
}

func TestNew_FileDirectoryBlocked(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := New(config.Logging{Level: "info", File: filepath.Join(blocker, "ghosthex.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")
}
