package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewService()

	cfg := Default()
	cfg.API.PageSize = 24
	cfg.UI.ShowInscriptions = false

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 24, loaded.API.PageSize)
	assert.Equal(t, DefaultBaseURL, loaded.API.BaseURL)
	assert.False(t, loaded.UI.ShowInscriptions)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}

func TestLoadNormalizesHandEditedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
version = 1

[api]
base_url = ""
page_size = 10000
timeout_seconds = -3
`), 0644))

	svc := NewService()
	cfg, err := svc.LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultPageSize, cfg.API.PageSize)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[api"), 0644))

	svc := NewService()
	_, err := svc.LoadFromPath(path)

	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultPageSize, cfg.API.PageSize)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.True(t, cfg.UI.ShowInscriptions)
}
