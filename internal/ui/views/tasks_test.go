package views

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/chores/internal/models"
	"github.com/tgienger/chores/internal/store"
)

type mapSlot map[string]string

func (m mapSlot) GetSetting(key string) (string, error) { return m[key], nil }
func (m mapSlot) SetSetting(key, value string) error    { m[key] = value; return nil }

var roster = []models.Housemate{
	{ID: "user1", Name: "Alice"},
	{ID: "user2", Name: "Bob"},
	{ID: "user3", Name: "Charlie"},
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func fixedToday() models.Date {
	return models.NewDate(2025, time.February, 12)
}

// newTestView returns a loaded task list over a fresh in-memory store
func newTestView(t *testing.T, assignee string, seed ...models.Draft) (*TaskListView, *store.Store) {
	t.Helper()
	st := store.New(mapSlot{})
	for _, d := range seed {
		_, err := st.Add(d)
		require.NoError(t, err)
	}
	v := NewTaskListView(st, roster, assignee, false)
	v.today = fixedToday
	v.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	v.Update(v.Init()())
	return v, st
}

func send(v *TaskListView, msgs ...tea.Msg) {
	for _, m := range msgs {
		v.Update(m)
	}
}

func TestAddTaskThroughForm(t *testing.T) {
	v, st := newTestView(t, "")

	send(v, runes("n"))
	require.True(t, v.editing)

	send(v,
		runes("Clean kitchen"), tab,
		runes("wipe counters"), tab,
		runes("2025-02-15"), tab,
		right, // Alice
		ctrlS,
	)

	assert.False(t, v.editing)
	assert.Empty(t, v.formErr)

	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Clean kitchen", tasks[0].Title)
	assert.Equal(t, "wipe counters", tasks[0].Description)
	assert.Equal(t, "2025-02-15", tasks[0].DueDate.String())
	assert.Equal(t, "Alice", tasks[0].Assignee)
	assert.False(t, tasks[0].Completed)
	assert.Len(t, v.tasks, 1)
}

func TestFormStaysOpenOnValidationError(t *testing.T) {
	t.Run("blank title", func(t *testing.T) {
		v, st := newTestView(t, "")
		send(v, runes("n"), runes("   "), ctrlS)

		assert.True(t, v.editing)
		assert.Contains(t, v.formErr, "title")
		assert.Zero(t, st.Len())
	})

	t.Run("no assignee", func(t *testing.T) {
		v, st := newTestView(t, "")
		send(v, runes("n"), runes("Vacuum"), ctrlS)

		assert.True(t, v.editing)
		assert.Contains(t, v.formErr, "assignee")
		assert.Zero(t, st.Len())
	})

	t.Run("past due date", func(t *testing.T) {
		v, st := newTestView(t, "Bob")
		send(v, runes("n"), runes("Vacuum"), tab, tab, runes("2025-02-11"), ctrlS)

		assert.True(t, v.editing)
		assert.Contains(t, v.formErr, "past")
		assert.Zero(t, st.Len())
	})

	t.Run("malformed due date", func(t *testing.T) {
		v, st := newTestView(t, "Bob")
		send(v, runes("n"), runes("Vacuum"), tab, tab, runes("soon"), ctrlS)

		assert.True(t, v.editing)
		assert.Contains(t, v.formErr, "YYYY-MM-DD")
		assert.Zero(t, st.Len())
	})
}

func TestFormKeepsTypedText(t *testing.T) {
	v, st := newTestView(t, "Bob")
	send(v, runes("n"), runes(" Vacuum "), tab, runes("  under the sofa"), ctrlS)

	require.False(t, v.editing)
	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, " Vacuum ", tasks[0].Title)
	assert.Equal(t, "  under the sofa", tasks[0].Description)
}

func TestFormAcceptsDueToday(t *testing.T) {
	v, st := newTestView(t, "Bob")
	send(v, runes("n"), runes("Vacuum"), tab, tab, runes(fixedToday().String()), ctrlS)

	require.False(t, v.editing)
	assert.Empty(t, v.formErr)
	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "2025-02-12", tasks[0].DueDate.String())
}

func TestNewTaskPreselectsFilteredHousemate(t *testing.T) {
	v, st := newTestView(t, "Bob")
	send(v, runes("n"), runes("Take out trash"), ctrlS)

	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Bob", tasks[0].Assignee)
	assert.Nil(t, tasks[0].DueDate)
}

func TestEditKeepsExistingPastDate(t *testing.T) {
	old := models.NewDate(2020, time.January, 5)
	v, st := newTestView(t, "", models.Draft{Title: "Defrost freezer", DueDate: &old, Assignee: "Charlie"})
	id := st.Tasks()[0].ID

	send(v, runes("e"))
	require.True(t, v.editing)
	assert.Equal(t, "Defrost freezer", v.editTitle.Value())
	assert.Equal(t, "2020-01-05", v.editDue.Value())

	send(v, runes("!"), ctrlS)

	assert.False(t, v.editing)
	got, err := st.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Defrost freezer!", got.Title)
	assert.Equal(t, "2020-01-05", got.DueDate.String())
	assert.Equal(t, "Charlie", got.Assignee)
}

func TestEditChangesAssignee(t *testing.T) {
	v, st := newTestView(t, "", models.Draft{Title: "Mow lawn", Assignee: "Alice"})

	send(v, runes("e"), tab, tab, tab, right, ctrlS)

	assert.Equal(t, "Bob", st.Tasks()[0].Assignee)
}

func TestEscCancelsForm(t *testing.T) {
	v, st := newTestView(t, "")
	send(v, runes("n"), runes("Groceries"), esc)

	assert.False(t, v.editing)
	assert.Zero(t, st.Len())
}

func TestToggleFromList(t *testing.T) {
	v, st := newTestView(t, "", models.Draft{Title: "Dishes", Assignee: "Alice"})

	send(v, space)
	assert.True(t, st.Tasks()[0].Completed)
	assert.True(t, v.tasks[0].Completed)

	send(v, space)
	assert.False(t, st.Tasks()[0].Completed)
}

func TestDeleteFromDetailsClearsSelection(t *testing.T) {
	v, st := newTestView(t, "",
		models.Draft{Title: "Dishes", Assignee: "Alice"},
		models.Draft{Title: "Laundry", Assignee: "Bob"},
	)

	send(v, runes("j"), enter)
	require.True(t, v.viewingTask)
	laundry := v.viewingID

	send(v, runes("d"))
	require.True(t, v.confirmingDelete)
	send(v, runes("y"))

	assert.False(t, v.confirmingDelete)
	assert.False(t, v.viewingTask)
	assert.Empty(t, v.viewingID)
	_, err := st.Get(laundry)
	assert.ErrorIs(t, err, store.ErrNotFound)
	require.Len(t, v.tasks, 1)
	assert.Equal(t, 0, v.cursor)
}

func TestDeleteCanBeDeclined(t *testing.T) {
	v, st := newTestView(t, "", models.Draft{Title: "Dishes", Assignee: "Alice"})

	send(v, runes("d"), runes("n"))

	assert.False(t, v.confirmingDelete)
	assert.Equal(t, 1, st.Len())
}

func TestStaleTaskIsNoOp(t *testing.T) {
	v, st := newTestView(t, "", models.Draft{Title: "Dishes", Assignee: "Alice"})
	// Removed behind the view's back
	require.NoError(t, st.Remove(v.tasks[0].ID))

	send(v, space)

	assert.Zero(t, st.Len())
	assert.Empty(t, v.tasks)
}

func TestFilters(t *testing.T) {
	v, st := newTestView(t, "Bob",
		models.Draft{Title: "Clean kitchen", Assignee: "Alex"},
		models.Draft{Title: "Take out trash", Assignee: "Bob"},
		models.Draft{Title: "Vacuum living room", Assignee: "Bob"},
		models.Draft{Title: "Clean bathroom", Assignee: "Bob"},
	)
	titles := func() []string {
		var out []string
		for _, t := range v.tasks {
			out = append(out, t.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Take out trash", "Vacuum living room", "Clean bathroom"}, titles())

	_, err := st.ToggleCompleted(v.tasks[0].ID)
	require.NoError(t, err)
	send(v, runes("c"))
	assert.True(t, v.hideCompleted)
	assert.Equal(t, []string{"Vacuum living room", "Clean bathroom"}, titles())

	send(v, runes("/"), runes("clean"), enter)
	assert.Equal(t, FocusTaskList, v.focus)
	assert.Equal(t, []string{"Clean bathroom"}, titles())
}

func TestBackAndQuit(t *testing.T) {
	v, _ := newTestView(t, "")

	_, cmd := v.Update(esc)
	require.NotNil(t, cmd)
	assert.Equal(t, BackToRoster{}, cmd())

	_, cmd = v.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRenders(t *testing.T) {
	due := models.NewDate(2025, time.February, 1)
	v, _ := newTestView(t, "", models.Draft{Title: "Clean kitchen", DueDate: &due, Assignee: "Alice"})

	out := v.View()
	assert.Contains(t, out, "Clean kitchen")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "overdue")

	send(v, enter)
	out = v.View()
	assert.Contains(t, out, "Assigned to")
	assert.Contains(t, out, "No description")
}

func TestEmptyListMessage(t *testing.T) {
	v, _ := newTestView(t, "")
	assert.Contains(t, v.View(), "No tasks yet")
}
