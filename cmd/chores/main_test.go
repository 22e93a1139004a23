package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/chores/internal/db"
	"github.com/tgienger/chores/internal/models"
	"github.com/tgienger/chores/internal/store"
)

func TestPrintTasks(t *testing.T) {
	due := models.NewDate(2025, time.February, 15)
	tasks := []models.Task{
		{ID: "1", Title: "Clean kitchen", Assignee: "Alice", DueDate: &due},
		{ID: "2", Title: "Take out trash", Assignee: "Bob", Completed: true},
		{ID: "3", Title: "Vacuum", Assignee: "Alice"},
	}

	t.Run("all", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTasks(&buf, tasks, "", false))

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 3)
		assert.Contains(t, string(lines[0]), "Clean kitchen")
		assert.Contains(t, string(lines[0]), "2025-02-15")
		assert.Contains(t, string(lines[1]), "[x]")
		assert.Contains(t, string(lines[2]), "Vacuum")
	})

	t.Run("filtered", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTasks(&buf, tasks, "Bob", true))
		assert.Equal(t, "No chores.\n", buf.String())
	})
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	database, err := db.New(dir)
	require.NoError(t, err)
	_, err = store.New(database).Add(models.Draft{Title: "Water plants", Assignee: "Charlie"})
	require.NoError(t, err)
	require.NoError(t, database.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"list",
		"--config", filepath.Join(dir, "absent.yaml"),
		"--data-dir", dir,
	})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		configFlag, dataDirFlag = "", ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Water plants")
	assert.Contains(t, out.String(), "Charlie")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chores", "config.yaml")
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		configFlag, forceFlag = "", false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), path)

	_, err := os.Stat(path)
	require.NoError(t, err)

	// Refuses to clobber without --force
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"config", "init", "--config", path, "--force"})
	assert.NoError(t, rootCmd.Execute())
}
