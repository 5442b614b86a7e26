package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termpaint/pkg/config"
)

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path,
		[]byte("color = \"never\"\ntheme = \"/tmp/my-theme.yaml\"\n"), 0644))

	cfg, err := config.LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "/tmp/my-theme.yaml", cfg.Theme)
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"x.yaml\"\n"), 0644))

	cfg, err := config.LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color, "unset keys keep their defaults")
	assert.Equal(t, "x.yaml", cfg.Theme)
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = [broken"), 0644))

	_, err := config.LoadFrom(path)
	assert.Error(t, err)
}
