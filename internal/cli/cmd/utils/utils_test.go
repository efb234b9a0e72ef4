package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matjam/slidepager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	t.Setenv("HOME", "/home/pat")

	assert.Equal(t, "", CanonicalPath(""))
	assert.Equal(t, "/home/pat", CanonicalPath("~"))
	assert.Equal(t, "/home/pat/Pictures/a.png", CanonicalPath("~/Pictures/a.png"))
	assert.Equal(t, "/tmp/~/a.png", CanonicalPath("/tmp/~/a.png"))
	assert.Equal(t, "rel.png", CanonicalPath("rel.png"))
}

func TestInstallDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := InstallDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "slidepager", "slidepager.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, slidepager.DefaultConfig, string(data))

	require.NoError(t, os.WriteFile(path, []byte("width = 1"), 0o644))
	_, err = InstallDefaultConfig()
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.Equal(t, "width = 1", string(data))
}
