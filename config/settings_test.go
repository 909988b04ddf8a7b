package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probes.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsEmptyPathReturnsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, 10*time.Second, s.RequestTimeout())
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `
env_file: ./frontend/.env
timeout: 2500ms
strict_validation: true
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "./frontend/.env", s.EnvFile)
	assert.Equal(t, 2500*time.Millisecond, s.RequestTimeout())
	assert.True(t, s.StrictValidation)
	assert.Equal(t, DefaultURLKey, s.URLKey)
	assert.Equal(t, DefaultAPISuffix, s.APISuffix)
	assert.Equal(t, DefaultOrigin, s.Origin)
	assert.Equal(t, DefaultDetailLimit, s.DetailLimit)
}

func TestLoadSettingsDetailLimit(t *testing.T) {
	s, err := LoadSettings(writeSettings(t, "detail_limit: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.DetailLimit)

	s, err = LoadSettings(writeSettings(t, "detail_limit: 50\n"))
	require.NoError(t, err)
	assert.Equal(t, 50, s.DetailLimit)

	s, err = LoadSettings(writeSettings(t, "origin: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOrigin, s.Origin)
	assert.Equal(t, DefaultDetailLimit, s.DetailLimit)
}

func TestLoadSettingsErrors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":          "timeout: [",
		"bad timeout":       "timeout: soon",
		"zero timeout":      "timeout: 0s",
		"negative detail":   "detail_limit: -1",
		"wrong field types": "detail_limit: lots",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}
