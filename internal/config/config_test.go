package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var c Config
	c.App.Port = 38471
	c.Backend.BaseURL = "https://api.example.com"
	c.Backend.TimeoutSeconds = 10
	c.Feed.PageSize = 6
	c.Toast.DurationMS = 3000
	c.Toast.TickMS = 30
	return c
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, SaveAtomic(path, validConfig()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 38471, got.App.Port)
	assert.Equal(t, "https://api.example.com", got.Backend.BaseURL)
	assert.Equal(t, 30, got.Toast.TickMS)
}

func TestValidateRejectsBadValues(t *testing.T) {
	c := validConfig()
	c.App.Port = 0
	assert.Error(t, Validate(c))

	c = validConfig()
	c.Backend.BaseURL = "not a url"
	assert.Error(t, Validate(c))

	c = validConfig()
	c.Backend.BaseURL = ""
	assert.Error(t, Validate(c))

	c = validConfig()
	c.Toast.TickMS = 5000 // exceeds duration
	assert.Error(t, Validate(c))

	assert.NoError(t, Validate(validConfig()))
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, SaveAtomic(path, validConfig()))

	second := validConfig()
	second.App.Port = 40000
	require.NoError(t, SaveAtomic(path, second))

	_, err := os.Stat(path + ".bak")
	assert.NoError(t, err, "previous config survives as .bak")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40000, got.App.Port)
}

func TestSaveAtomicRefusesInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	bad := validConfig()
	bad.App.Port = -1
	assert.Error(t, SaveAtomic(path, bad))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing is written for an invalid config")
}

func TestEnsureUserConfigCopiesDefaultOnce(t *testing.T) {
	dataDir := t.TempDir()
	defaultPath := filepath.Join(t.TempDir(), "default.yml")
	require.NoError(t, os.WriteFile(defaultPath, []byte("app:\n  port: 1234\n"), 0o644))

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	// user edits survive; the default is not re-copied
	require.NoError(t, os.WriteFile(userPath, []byte("app:\n  port: 9999\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	got, err := Load(again)
	require.NoError(t, err)
	assert.Equal(t, 9999, got.App.Port)
}

func TestDurationHelpersDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, 15*time.Second, c.BackendTimeout())
	assert.Equal(t, 3*time.Second, c.ToastDuration())
	assert.Equal(t, 30*time.Millisecond, c.ToastTick())
	assert.Equal(t, 6, c.FeedPageSize())
}
