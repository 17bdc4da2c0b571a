package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Engine.BaseURL)
	assert.True(t, cfg.Engine.RequireAccelerator)
	assert.Equal(t, 50, cfg.Storage.HistoryLimit)
	assert.Equal(t, "uk", cfg.UI.Language)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Engine.Model, cfg.Engine.Model)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Engine.Model = "mistral-7b-q4"
	cfg.Engine.Timeout = "90s"
	cfg.Storage.HistoryLimit = 10
	cfg.UI.Language = "da"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mistral-7b-q4", loaded.Engine.Model)
	assert.Equal(t, 90*time.Second, loaded.GetTimeout())
	assert.Equal(t, 10, loaded.Storage.HistoryLimit)
	assert.Equal(t, "da", loaded.UI.Language)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  model: custom-model\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-model", cfg.Engine.Model)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Engine.BaseURL)
	assert.Equal(t, 50, cfg.Storage.HistoryLimit)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ABD_ENGINE_URL", "http://10.0.0.2:9090")
	t.Setenv("ABD_ENGINE_MODEL", "qwen2.5-3b")
	t.Setenv("ABD_DATA_DIR", "/tmp/abd-test")
	t.Setenv("ABD_UI_LANGUAGE", "en")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:9090", cfg.Engine.BaseURL)
	assert.Equal(t, "qwen2.5-3b", cfg.Engine.Model)
	assert.Equal(t, "/tmp/abd-test", cfg.Storage.DataDir)
	assert.Equal(t, "en", cfg.UI.Language)
}

func TestDurationGettersFallBackOnGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Timeout = "sideways"
	cfg.Engine.PollInterval = "-1s"
	cfg.Storage.AutosaveDelay = ""

	assert.Equal(t, 2*time.Minute, cfg.GetTimeout())
	assert.Equal(t, 300*time.Millisecond, cfg.GetPollInterval())
	assert.Equal(t, 600*time.Millisecond, cfg.GetAutosaveDelay())
}

func TestLogFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = "/data"
	assert.Equal(t, filepath.Join("/data", "abd.log"), cfg.LogFile())

	cfg.Logging.File = "/var/log/abd.log"
	assert.Equal(t, "/var/log/abd.log", cfg.LogFile())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.BaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Storage.HistoryLimit = 0
	assert.Error(t, cfg.Validate())
}
