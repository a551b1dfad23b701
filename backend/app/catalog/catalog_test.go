package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("// payload"), 0o644))
}

func TestNew_ScansDirectory(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "screenshot.js")
	writeModule(t, dir, "cookies.js")
	writeModule(t, dir, ".hidden.js")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0o755))

	c, err := New(dir)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, []string{"cookies", "screenshot"}, c.Names())
	assert.True(t, c.Has("screenshot"))
	assert.False(t, c.Has("keylogger"))
	assert.False(t, c.Has(".hidden"))
}

func TestNew_MissingDirStartsEmpty(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	defer c.Close()
	assert.Empty(t, c.Names())
}

func TestReload_PicksUpNewModules(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "screenshot.js")

	c, err := New(dir)
	require.NoError(t, err)
	defer c.Close()
	require.False(t, c.Has("keylogger"))

	writeModule(t, dir, "keylogger.js")
	require.NoError(t, c.reload())
	assert.True(t, c.Has("keylogger"))
}
