package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden id=%d", 1)
	log.Warn("shown id=%d", 2)
	log.Error("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden id=1")
	assert.Contains(t, out, "shown id=2")
	assert.Contains(t, out, "failed: boom")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestLogger_UnknownLevel(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}

func TestLogger_FileOutput(t *testing.T) {
	path := t.TempDir() + "/service.log"

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("written to file")
	require.NoError(t, log.Close())
	assert.NoError(t, log.Close())
}
