package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/chores/internal/config"
	"github.com/tgienger/chores/internal/db"
	"github.com/tgienger/chores/internal/models"
	"github.com/tgienger/chores/internal/store"
	"github.com/tgienger/chores/internal/ui/views"
)

func newTestApp(t *testing.T) (*App, *db.DB) {
	t.Helper()
	database, err := db.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewApp(store.New(database), database, config.DefaultConfig()), database
}

func TestAppStartsOnRoster(t *testing.T) {
	app, _ := newTestApp(t)

	app.Init()
	assert.Equal(t, ViewRoster, app.CurrentView())
}

func TestAppRemembersHousemate(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   View
	}{
		{"housemate on roster", "Bob", ViewTasks},
		{"everyone", "*", ViewTasks},
		{"housemate left the roster", "Dana", ViewRoster},
		{"nothing stored", "", ViewRoster},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, database := newTestApp(t)
			require.NoError(t, database.SetSetting(LastHousemateKey, tt.stored))

			app.Init()
			assert.Equal(t, tt.want, app.CurrentView())
		})
	}
}

func TestAppNavigation(t *testing.T) {
	app, database := newTestApp(t)
	app.Init()

	app.Update(views.SelectedHousemate{Name: "Alice"})
	assert.Equal(t, ViewTasks, app.CurrentView())
	v, err := database.GetSetting(LastHousemateKey)
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)

	app.Update(views.BackToRoster{})
	assert.Equal(t, ViewRoster, app.CurrentView())
	v, err = database.GetSetting(LastHousemateKey)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	app.Update(views.SelectedHousemate{Name: ""})
	v, err = database.GetSetting(LastHousemateKey)
	require.NoError(t, err)
	assert.Equal(t, "*", v)
}

func TestAppSharesTasksWithStore(t *testing.T) {
	app, database := newTestApp(t)
	app.Init()
	app.Update(views.SelectedHousemate{Name: ""})

	// Tasks added through the store show up after a restart of the app
	_, err := app.store.Add(models.Draft{Title: "Water plants", Assignee: "Charlie"})
	require.NoError(t, err)

	restarted := NewApp(store.New(database), database, config.DefaultConfig())
	assert.Equal(t, 1, restarted.store.Len())
}
