package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, []string{"sanketh", "nikhil", "karthik", "shiva"}, cfg.AllowedUsers)
	assert.Equal(t, "rooftop", cfg.Password)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, 24*time.Hour, cfg.WateringInterval)
	assert.Equal(t, 48*time.Hour, cfg.FertilizingInterval)
	assert.NotEmpty(t, cfg.LogPath)
	assert.NotEmpty(t, cfg.SecretsDir)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "rooftop")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	content := `
[auth]
users = ["rose", "fern"]
password = "greenhouse"

[gemini]
model = "gemini-2.0-flash"

[reminders]
watering = "12h"
fertilizing = "72h"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, []string{"rose", "fern"}, cfg.AllowedUsers)
	assert.Equal(t, "greenhouse", cfg.Password)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 12*time.Hour, cfg.WateringInterval)
	assert.Equal(t, 72*time.Hour, cfg.FertilizingInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROOFTOP_REMINDERS_WATERING", "6h")
	t.Setenv("ROOFTOP_GEMINI_MODEL", "gemini-2.5-pro")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 6*time.Hour, cfg.WateringInterval)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
}

func TestLoadRejectsNonPositiveIntervals(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "rooftop")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[reminders]\nwatering = \"0s\"\n"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
}
