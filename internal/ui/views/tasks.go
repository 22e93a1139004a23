package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/chores/internal/log"
	"github.com/tgienger/chores/internal/models"
	"github.com/tgienger/chores/internal/store"
	"github.com/tgienger/chores/internal/ui/keys"
	"github.com/tgienger/chores/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusSearchInput FocusArea = iota
	FocusTaskList
)

// Edit form fields, in tab order
const (
	fieldTitle = iota
	fieldDesc
	fieldDue
	fieldAssignee
	fieldSave
	fieldCount
)

// TaskListView shows the chores, optionally narrowed to one housemate
type TaskListView struct {
	store    *store.Store
	roster   []models.Housemate
	assignee string // "" = everyone
	tasks    []models.Task
	styles   *styles.Styles
	keys     keys.KeyMap
	today    func() models.Date

	width  int
	height int

	// UI state
	focus         FocusArea
	cursor        int
	scrollY       int
	searchInput   textinput.Model
	hideCompleted bool

	// Task creation/editing
	editing      bool
	editingID    string // "" when creating
	editTitle    textinput.Model
	editDesc     textarea.Model
	editDue      textinput.Model
	editAssignee int // index into roster, -1 = none selected
	editFocusIdx int
	editOrigDue  *models.Date
	formErr      string

	// Task details (read-only)
	viewingTask bool
	viewingID   string

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string

	// Help popup (shown with ? at narrow widths)
	showHelpPopup bool
}

// NewTaskListView creates a new task list view. An empty assignee shows everyone's tasks.
func NewTaskListView(st *store.Store, roster []models.Housemate, assignee string, hideCompleted bool) *TaskListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 100

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 1000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	editDue := textinput.New()
	editDue.Placeholder = "YYYY-MM-DD (optional)"
	editDue.CharLimit = 10

	return &TaskListView{
		store:         st,
		roster:        roster,
		assignee:      assignee,
		styles:        s,
		keys:          keys.DefaultKeyMap(),
		today:         models.Today,
		focus:         FocusTaskList,
		searchInput:   search,
		hideCompleted: hideCompleted,
		editTitle:     editTitle,
		editDesc:      editDesc,
		editDue:       editDue,
		editAssignee:  -1,
	}
}

// BackToRoster signals to go back to the housemate list
type BackToRoster struct{}

type tasksLoadedMsg struct {
	tasks []models.Task
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return v.loadTasks
}

func (v *TaskListView) loadTasks() tea.Msg {
	return tasksLoadedMsg{tasks: v.store.Tasks()}
}

// refresh re-reads the store after a mutation
func (v *TaskListView) refresh() {
	v.setTasks(v.store.Tasks())
}

// setTasks applies the view's filters, keeping the store's insertion order
func (v *TaskListView) setTasks(all []models.Task) {
	search := strings.ToLower(strings.TrimSpace(v.searchInput.Value()))

	v.tasks = v.tasks[:0]
	for _, t := range all {
		if v.assignee != "" && t.Assignee != v.assignee {
			continue
		}
		if v.hideCompleted && t.Completed {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		v.tasks = append(v.tasks, t)
	}

	if v.cursor >= len(v.tasks) {
		v.cursor = max(0, len(v.tasks)-1)
	}
	v.ensureVisible()
}

// selectTask moves the cursor onto id if it is visible
func (v *TaskListView) selectTask(id string) {
	for i, t := range v.tasks {
		if t.ID == id {
			v.cursor = i
			v.ensureVisible()
			return
		}
	}
}

func (v *TaskListView) current() (models.Task, bool) {
	if v.cursor < 0 || v.cursor >= len(v.tasks) {
		return models.Task{}, false
	}
	return v.tasks[v.cursor], true
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editDesc.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case tasksLoadedMsg:
		v.setTasks(msg.tasks)
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.editing {
			return v.updateEditing(msg)
		}

		if v.viewingTask {
			return v.updateViewingTask(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Don't process hotkeys while typing a search
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
			v.searchInput.Blur()
			v.focus = FocusTaskList
			return v, nil
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			v.cursor = 0
			v.scrollY = 0
			v.refresh()
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToRoster{} }

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if t, ok := v.current(); ok {
			v.viewingTask = true
			v.viewingID = t.ID
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if t, ok := v.current(); ok {
			v.toggleTask(t.ID)
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if t, ok := v.current(); ok {
			v.startEditTask(t)
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startNewTask()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if t, ok := v.current(); ok {
			v.confirmDelete(t)
		}
		return v, nil

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.ShowCompleted):
		v.hideCompleted = !v.hideCompleted
		v.cursor = 0
		v.scrollY = 0
		v.refresh()
		return v, nil

	case msg.String() == "?":
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) toggleTask(id string) {
	if _, err := v.store.ToggleCompleted(id); err != nil {
		// A stale id is a no-op; the refresh below drops it from view
		log.WarningLog.Printf("toggle %s: %v", id, err)
	}
	v.refresh()
	v.selectTask(id)
}

func (v *TaskListView) confirmDelete(t models.Task) {
	v.confirmingDelete = true
	v.deleteTargetID = t.ID
	v.deleteTargetName = t.Title
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := v.store.Remove(v.deleteTargetID); err != nil {
			log.WarningLog.Printf("remove %s: %v", v.deleteTargetID, err)
		}
		// Clear the selection if it pointed at the removed task
		if v.viewingID == v.deleteTargetID {
			v.viewingTask = false
			v.viewingID = ""
		}
		v.confirmingDelete = false
		v.deleteTargetID = ""
		v.deleteTargetName = ""
		v.refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateViewingTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, err := v.store.Get(v.viewingID)
	if err != nil {
		v.viewingTask = false
		v.viewingID = ""
		v.refresh()
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.viewingTask = false
		v.viewingID = ""
		return v, nil
	case key.Matches(msg, v.keys.Edit):
		v.viewingTask = false
		v.viewingID = ""
		v.startEditTask(task)
		return v, textinput.Blink
	case key.Matches(msg, v.keys.Toggle):
		v.toggleTask(task.ID)
		return v, nil
	case key.Matches(msg, v.keys.Delete):
		v.confirmDelete(task)
		return v, nil
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		v.formErr = ""
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveTask()

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % fieldCount
		v.updateEditFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + fieldCount - 1) % fieldCount
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.editFocusIdx {
		case fieldTitle, fieldDue, fieldAssignee:
			v.editFocusIdx++
			v.updateEditFocus()
			return v, nil
		case fieldSave:
			return v, v.saveTask()
		}
		// Enter in the description is a newline
	}

	if v.editFocusIdx == fieldAssignee {
		switch msg.String() {
		case "up", "k", "left", "h", "shift+left":
			v.cycleAssignee(-1)
		case "down", "j", "right", "l", " ":
			v.cycleAssignee(1)
		}
		return v, nil
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case fieldTitle:
		v.editTitle, cmd = v.editTitle.Update(msg)
	case fieldDesc:
		v.editDesc, cmd = v.editDesc.Update(msg)
	case fieldDue:
		v.editDue, cmd = v.editDue.Update(msg)
	}
	return v, cmd
}

func (v *TaskListView) cycleAssignee(dir int) {
	n := len(v.roster)
	if n == 0 {
		return
	}
	if v.editAssignee < 0 {
		if dir > 0 {
			v.editAssignee = 0
		} else {
			v.editAssignee = n - 1
		}
		return
	}
	v.editAssignee = (v.editAssignee + dir + n) % n
}

func (v *TaskListView) ensureVisible() {
	visibleItems := v.visibleItems()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

// visibleItems is how many two-line task items (plus margin) fit on screen
func (v *TaskListView) visibleItems() int {
	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	return max(availableHeight/3, 1)
}

func (v *TaskListView) startNewTask() {
	v.editing = true
	v.editingID = ""
	v.editFocusIdx = fieldTitle
	v.editOrigDue = nil
	v.formErr = ""
	v.editTitle.Reset()
	v.editDesc.Reset()
	v.editDue.Reset()
	// Preselect the housemate whose list we're looking at
	v.editAssignee = v.rosterIndex(v.assignee)
	v.updateEditFocus()
}

func (v *TaskListView) startEditTask(task models.Task) {
	v.editing = true
	v.editingID = task.ID
	v.editFocusIdx = fieldTitle
	v.editOrigDue = task.DueDate.Clone()
	v.formErr = ""
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	if task.DueDate != nil {
		v.editDue.SetValue(task.DueDate.String())
	} else {
		v.editDue.Reset()
	}
	v.editAssignee = v.rosterIndex(task.Assignee)
	v.updateEditFocus()
}

// rosterIndex returns the roster position of name, or -1
func (v *TaskListView) rosterIndex(name string) int {
	for i, h := range v.roster {
		if h.Name == name && name != "" {
			return i
		}
	}
	return -1
}

func (v *TaskListView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()
	v.editDue.Blur()

	switch v.editFocusIdx {
	case fieldTitle:
		v.editTitle.Focus()
	case fieldDesc:
		v.editDesc.Focus()
	case fieldDue:
		v.editDue.Focus()
	}
}

// formDraft reads the form as typed. Date problems are reported here; blank
// title and missing assignee are left for the store to reject.
func (v *TaskListView) formDraft() (models.Draft, error) {
	d := models.Draft{
		Title:       v.editTitle.Value(),
		Description: v.editDesc.Value(),
	}
	if v.editAssignee >= 0 && v.editAssignee < len(v.roster) {
		d.Assignee = v.roster[v.editAssignee].Name
	} else if v.editingID != "" {
		// Keep an assignee that has since left the roster
		if t, err := v.store.Get(v.editingID); err == nil {
			d.Assignee = t.Assignee
		}
	}

	if raw := strings.TrimSpace(v.editDue.Value()); raw != "" {
		due, err := models.ParseDate(raw)
		if err != nil {
			return d, errors.New("due date must be YYYY-MM-DD")
		}
		// Past days can't be picked, but today can, and an existing date may be kept as is
		if due.Before(v.today()) && !v.editOrigDue.Equal(&due) {
			return d, errors.New("due date is in the past")
		}
		d.DueDate = &due
	}
	return d, nil
}

// saveTask submits the form. On a validation error the form stays open.
func (v *TaskListView) saveTask() tea.Cmd {
	draft, err := v.formDraft()
	if err != nil {
		v.formErr = err.Error()
		return nil
	}

	var saved models.Task
	if v.editingID == "" {
		saved, err = v.store.Add(draft)
	} else {
		saved, err = v.store.Edit(v.editingID, draft)
	}

	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		v.formErr = fmt.Sprintf("%s %s", verr.Field, verr.Reason)
		return nil
	case err != nil:
		// The task vanished while editing; drop the form
		log.WarningLog.Printf("save task %s: %v", v.editingID, err)
	}

	v.editing = false
	v.formErr = ""
	v.refresh()
	if err == nil {
		v.selectTask(saved.ID)
	}
	return nil
}

// View renders the view
func (v *TaskListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.editing {
		return v.renderEditForm()
	}

	if v.viewingTask {
		return v.renderTaskView()
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderTaskList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) title() string {
	if v.assignee == "" {
		return "Chore Tracker"
	}
	return v.assignee + "'s Chores"
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchBox := searchStyle.Width(clamp(contentWidth-8, 10, 30)).Render(v.searchInput.View())

	titleText := v.title()
	if v.hideCompleted {
		titleText += " (hiding done)"
	}

	return lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(titleText), searchBox)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles

	if len(v.tasks) == 0 {
		if v.store.Len() == 0 {
			return s.TitleMuted.Render("No tasks yet. Press 'n' to add one.")
		}
		return s.TitleMuted.Render("Nothing matches.")
	}

	var items []string
	endIdx := min(v.scrollY+v.visibleItems(), len(v.tasks))

	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderTaskItem(v.tasks[i], i == v.cursor && v.focus == FocusTaskList))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) renderTaskItem(task models.Task, selected bool) string {
	s := v.styles
	width := max(styles.ContentWidth(v.width)-4, 20)

	check := s.Checkbox.Render("[ ]")
	title := s.TaskTitle.Render(task.Title)
	if task.Completed {
		check = s.CheckboxDone.Render("[x]")
		title = s.TaskDone.Render(task.Title)
	}

	meta := s.TaskAssignee.Render(task.Assignee)
	if task.DueDate != nil {
		meta += "  " + v.renderDue(task)
	}

	rowStyle := s.ListItem.Width(width)
	if selected {
		rowStyle = s.ListSelected.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		rowStyle.Render(check+" "+title),
		rowStyle.Render("    "+meta),
	) + "\n"
}

func (v *TaskListView) renderDue(task models.Task) string {
	if task.DueDate == nil {
		return v.styles.TitleMuted.Render("No due date")
	}
	text := "due " + task.DueDate.Time().Format("Jan 2, 2006")
	if !task.Completed && task.DueDate.Before(v.today()) {
		return v.styles.TaskOverdue.Render(text + " (overdue)")
	}
	return v.styles.TaskDue.Render(text)
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "Add New Task"
	if v.editingID != "" {
		formTitle = "Edit Task"
	}

	fieldStyles := make([]lipgloss.Style, fieldCount)
	for i := range fieldStyles {
		fieldStyles[i] = s.Input
	}
	fieldStyles[fieldSave] = s.Button
	if v.editFocusIdx == fieldSave {
		fieldStyles[fieldSave] = s.ButtonFocused
	} else {
		fieldStyles[v.editFocusIdx] = s.InputFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	assignee := s.TitleMuted.Render("Select a housemate")
	if v.editAssignee >= 0 && v.editAssignee < len(v.roster) {
		assignee = "‹ " + v.roster[v.editAssignee].Name + " ›"
	}

	saveLabel := " Add Task "
	if v.editingID != "" {
		saveLabel = " Save Changes "
	}

	rows := []string{
		s.Title.Render(formTitle),
		"",
		"Title:",
		fieldStyles[fieldTitle].Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Description:",
		fieldStyles[fieldDesc].Render(v.editDesc.View()),
		"",
		"Due Date:",
		fieldStyles[fieldDue].Width(inputWidth).Render(v.editDue.View()),
		"",
		"Assignee:",
		fieldStyles[fieldAssignee].Width(inputWidth).Render(assignee),
		"",
		fieldStyles[fieldSave].Render(saveLabel),
	}
	if v.formErr != "" {
		rows = append(rows, "", s.FormError.Render(v.formErr))
	}
	rows = append(rows, "", s.TitleMuted.Render("Tab: next • ←→: housemate • Ctrl+S: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}

	completedLabel := "hide done"
	if v.hideCompleted {
		completedLabel = "show done"
	}

	return v.styles.Help.Render(
		fmt.Sprintf("%s view • %s done • %s edit • %s new • %s del • %s search • %s %s • %s back • %s quit",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("space"),
			v.styles.HelpKey.Render("e"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("c"),
			completedLabel,
			v.styles.HelpKey.Render("esc"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *TaskListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	completedLabel := "hide completed"
	if v.hideCompleted {
		completedLabel = "show completed"
	}

	helpItems := []string{
		s.HelpKey.Render("↵") + "      view task",
		s.HelpKey.Render("space") + "  mark done / undone",
		s.HelpKey.Render("e") + "      edit task",
		s.HelpKey.Render("n") + "      new task",
		s.HelpKey.Render("d") + "      delete task",
		s.HelpKey.Render("/") + "      search",
		s.HelpKey.Render("c") + "      " + completedLabel,
		s.HelpKey.Render("esc") + "    back",
		s.HelpKey.Render("q") + "      quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("%q will be removed for everyone.", v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderTaskView() string {
	task, err := v.store.Get(v.viewingID)
	if err != nil {
		return ""
	}

	s := v.styles
	textWidth := clamp(styles.ContentWidth(v.width)-10, 20, 70)
	labelStyle := s.TitleMuted

	descText := task.Description
	if descText == "" {
		descText = s.TitleMuted.Render("No description")
	}

	status := s.TaskTitle.Render("Open")
	if task.Completed {
		status = s.CheckboxDone.Render("Done")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.MarginBottom(1).Render(task.Title),
		"",
		labelStyle.Render("Description"),
		lipgloss.NewStyle().Width(textWidth).Render(descText),
		"",
		labelStyle.Render("Due Date"),
		v.renderDue(task),
		"",
		labelStyle.Render("Assigned to"),
		s.TaskAssignee.Render(task.Assignee),
		"",
		labelStyle.Render("Status"),
		status,
		"",
		s.Help.Render(
			fmt.Sprintf("%s edit • %s done • %s delete • %s back",
				s.HelpKey.Render("e"),
				s.HelpKey.Render("space"),
				s.HelpKey.Render("d"),
				s.HelpKey.Render("esc"),
			),
		),
	)

	padded := lipgloss.NewStyle().Padding(1, 2).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}
