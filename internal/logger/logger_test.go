package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerInfo(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "demoplay.log")
	t.Setenv(envLogFile, logfile)

	var logger = Logger{}
	require.NoError(t, logger.Start())

	logger.Info("async")
	logger.Info("hello")
	logger.Error("world", "err", errors.New("boom"))

	require.NoError(t, logger.Stop())

	bytes, err := os.ReadFile(logfile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(bytes)), "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[2], "boom")
}

func TestLoggerDisabledWithoutEnv(t *testing.T) {
	t.Setenv(envLogFile, "")

	var logger = Logger{}
	require.NoError(t, logger.Start())
	logger.Info("dropped")
	assert.False(t, logger.isEnabled)
	assert.NoError(t, logger.Stop())
}

func TestLoggerStripsEscapes(t *testing.T) {
	var buf bytes.Buffer
	var logger = Logger{}
	logger.StartWriter(&buf)

	logger.Info("typed \x1b[36mls\x1b[0m", "cmd", "\x1b[32m~/src $ \x1b[0mls")

	out := buf.String()
	assert.NotContains(t, out, "\x1b")
	assert.Contains(t, out, "typed ls")
	assert.Contains(t, out, "~/src $ ls")
}
