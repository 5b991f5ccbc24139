package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlist(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	plist, err := renderPlist("/srv/morning")
	require.NoError(t, err)

	assert.Contains(t, plist, "<string>com.morning.bot</string>")
	assert.Contains(t, plist, "<string>/usr/local/bin/morning</string>\n\t\t<string>run</string>")
	assert.Contains(t, plist, "<string>/srv/morning</string>")
	assert.Contains(t, plist, filepath.Join(home, "Library", "Logs", "morning-stdout.log"))
	assert.Contains(t, plist, filepath.Join(home, "Library", "Logs", "morning-stderr.log"))
}

func TestResolveWorkDir(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config")

	assert.Equal(t, dir, resolveWorkDir(configFile), "missing config falls back to its directory")

	require.NoError(t, os.WriteFile(configFile, []byte("WEATHER_DATA_PATH=/etc/morning/weather.json\n"), 0o600))
	assert.Equal(t, dir, resolveWorkDir(configFile))

	require.NoError(t, os.WriteFile(configFile, []byte("HEADERS_PATH=./headers.yaml\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, resolveWorkDir(configFile))
}
