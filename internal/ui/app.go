package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/chores/internal/config"
	"github.com/tgienger/chores/internal/log"
	"github.com/tgienger/chores/internal/store"
	"github.com/tgienger/chores/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewRoster View = iota
	ViewTasks
)

// LastHousemateKey remembers which task list was open. everyoneValue marks the
// unfiltered list; an empty value means the roster screen.
const (
	LastHousemateKey = "last_housemate"
	everyoneValue    = "*"
)

type App struct {
	store       *store.Store
	settings    store.Slot
	cfg         *config.Config
	currentView View
	rosterList  *views.RosterView
	taskList    *views.TaskListView
	width       int
	height      int
}

// Creates a new application
func NewApp(st *store.Store, settings store.Slot, cfg *config.Config) *App {
	return &App{
		store:       st,
		settings:    settings,
		cfg:         cfg,
		currentView: ViewRoster,
		rosterList:  views.NewRosterView(st, cfg.Housemates),
	}
}

func (a *App) Init() tea.Cmd {
	// Reopen the last task list if its housemate is still on the roster
	last, err := a.settings.GetSetting(LastHousemateKey)
	if err != nil {
		log.WarningLog.Printf("failed to read %s: %v", LastHousemateKey, err)
	}
	switch {
	case last == everyoneValue:
		return a.openTasks("")
	case last != "" && a.onRoster(last):
		return a.openTasks(last)
	}

	return a.rosterList.Init()
}

func (a *App) onRoster(name string) bool {
	for _, h := range a.cfg.Housemates {
		if h.Name == name {
			return true
		}
	}
	return false
}

func (a *App) openTasks(assignee string) tea.Cmd {
	a.currentView = ViewTasks
	a.taskList = views.NewTaskListView(a.store, a.cfg.Housemates, assignee, a.cfg.HideCompleted)

	last := assignee
	if last == "" {
		last = everyoneValue
	}
	a.saveSetting(last)

	// Initialize task list with window size
	return tea.Batch(
		a.taskList.Init(),
		func() tea.Msg {
			return tea.WindowSizeMsg{Width: a.width, Height: a.height}
		},
	)
}

func (a *App) saveSetting(value string) {
	if err := a.settings.SetSetting(LastHousemateKey, value); err != nil {
		log.WarningLog.Printf("failed to save %s: %v", LastHousemateKey, err)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Always update roster size since it persists
		a.rosterList.Update(msg)

	case views.SelectedHousemate:
		return a, a.openTasks(msg.Name)

	case views.BackToRoster:
		a.currentView = ViewRoster
		a.saveSetting("")
		return a, tea.Batch(
			a.rosterList.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewRoster:
		_, cmd = a.rosterList.Update(msg)
	case ViewTasks:
		_, cmd = a.taskList.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewTasks:
		if a.taskList != nil {
			return a.taskList.View()
		}
	}
	return a.rosterList.View()
}

// CurrentView reports which screen is showing
func (a *App) CurrentView() View {
	return a.currentView
}
