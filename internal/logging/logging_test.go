package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leggiero/spotmap/internal/logging"
)

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := logging.New(&buf, "warn", "")
	defer closer.Close()

	logger.Info("dropped")
	logger.Warn("kept", "id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line expected")
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 7, entry["id"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := logging.New(&buf, "chatty", "")
	defer closer.Close()

	logger.Debug("dropped")
	logger.Info("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_TeesIntoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")
	var buf bytes.Buffer

	logger, closer := logging.New(&buf, "info", path)
	logger.Info("location created", "id", 1)
	require.NoError(t, closer.Close())

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(onDisk))
	assert.Contains(t, string(onDisk), "location created")
}
