package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_HonorsEnvironment(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "crumbtrail"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(base, "data", "crumbtrail"), dirs.DataHome)
	assert.Equal(t, filepath.Join(base, "state", "crumbtrail"), dirs.StateHome)

	dbFile, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "crumbtrail", "crumbtrail.sqlite"), dbFile)

	cfgFile, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "crumbtrail", "config.toml"), cfgFile)

	require.NoError(t, EnsureDirectories())
	assert.DirExists(t, dirs.ConfigHome)
	assert.DirExists(t, dirs.DataHome)
	assert.DirExists(t, dirs.StateHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
	assert.Equal(t, filepath.Join(".dev", "crumbtrail"), filepath.Join(filepath.Base(filepath.Dir(dirs.ConfigHome)), "crumbtrail"))
}

func TestGetManDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "man", "man1"), dir)

	schema, err := GetSchemaFile()
	require.NoError(t, err)
	assert.Equal(t, "config.schema.json", filepath.Base(schema))
}
