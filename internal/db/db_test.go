package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "chores")

	database, err := New(dir)
	require.NoError(t, err)
	defer database.Close()

	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), database.Path())
}

func TestSettings(t *testing.T) {
	database, err := New(t.TempDir())
	require.NoError(t, err)
	defer database.Close()

	t.Run("missing key reads as empty", func(t *testing.T) {
		v, err := database.GetSetting("nope")
		assert.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("set then overwrite", func(t *testing.T) {
		require.NoError(t, database.SetSetting("choreTasks", "[]"))
		require.NoError(t, database.SetSetting("choreTasks", `[{"id":"a"}]`))

		v, err := database.GetSetting("choreTasks")
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"a"}]`, v)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, database.SetSetting("last_housemate", "Bob"))
		require.NoError(t, database.DeleteSetting("last_housemate"))

		v, err := database.GetSetting("last_housemate")
		assert.NoError(t, err)
		assert.Equal(t, "", v)
	})
}

func TestSettingsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, first.SetSetting("choreTasks", "[]"))
	require.NoError(t, first.Close())

	second, err := New(dir)
	require.NoError(t, err)
	defer second.Close()

	v, err := second.GetSetting("choreTasks")
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestDefaultDataDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "chores"), dir)
}
