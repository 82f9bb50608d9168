package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	t.Setenv("DEMOPLAY_CONF", filepath.Join(t.TempDir(), "missing.yaml"))

	conf := GetConfig()
	assert.Equal(t, Default(), conf)

	min, max := conf.TypingDelay()
	assert.Equal(t, 35*time.Millisecond, min)
	assert.Equal(t, 85*time.Millisecond, max)
	assert.Equal(t, time.Second, conf.StartPause())
}

func TestReadConfigOverrides(t *testing.T) {
	file := filepath.Join(t.TempDir(), "demoplay.yaml")
	data := `
theme: monokai
tabwidth: 2
typing:
  min_delay_ms: 10
blacklist: [node_modules]
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))
	t.Setenv("DEMOPLAY_CONF", file)

	conf := GetConfig()
	assert.Equal(t, "monokai", conf.Theme)
	assert.Equal(t, 2, conf.TabWidth)
	assert.Equal(t, 10, conf.Typing.MinDelayMs)
	assert.Equal(t, 85, conf.Typing.MaxDelayMs)
	assert.Equal(t, []string{".git", "target", "node_modules"}, conf.Blacklist)
	assert.Equal(t, 1000, conf.StartPauseMs)
}

func TestParseInvalidYaml(t *testing.T) {
	conf, err := Parse([]byte("theme: [unterminated"))
	assert.Error(t, err)
	assert.Equal(t, Default(), conf)
}

func TestParseClampsDelayRange(t *testing.T) {
	conf, err := Parse([]byte("typing:\n  min_delay_ms: 120\n"))
	require.NoError(t, err)
	assert.Equal(t, 120, conf.Typing.MinDelayMs)
	assert.Equal(t, 120, conf.Typing.MaxDelayMs)
}
