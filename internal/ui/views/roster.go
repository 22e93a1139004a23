package views

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/chores/internal/models"
	"github.com/tgienger/chores/internal/store"
	"github.com/tgienger/chores/internal/ui/keys"
	"github.com/tgienger/chores/internal/ui/styles"
)

// Everyone is the roster entry that shows all tasks
const Everyone = "Everyone"

type housemateItem struct {
	name string // "" for everyone
	open int
	done int
}

func (i housemateItem) Title() string {
	if i.name == "" {
		return Everyone
	}
	return i.name
}

func (i housemateItem) Description() string {
	return fmt.Sprintf("%d open · %d done", i.open, i.done)
}

func (i housemateItem) FilterValue() string { return i.Title() }

type housemateDelegate struct {
	styles *styles.Styles
	width  int
}

func (d housemateDelegate) Height() int                               { return 2 }
func (d housemateDelegate) Spacing() int                              { return 1 }
func (d housemateDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d housemateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	h, ok := item.(housemateItem)
	if !ok {
		return
	}

	selected := index == m.Index()
	width := max(d.width-4, 20)

	var titleStyle, descStyle lipgloss.Style
	if selected {
		titleStyle = d.styles.ListSelected.Width(width)
		descStyle = d.styles.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width)
	} else {
		titleStyle = d.styles.ListItem.Width(width)
		descStyle = d.styles.ListItem.Foreground(styles.Current.ForegroundDim).Width(width)
	}

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(h.Title()), descStyle.Render(h.Description()))
}

// RosterView lists the housemates with their chore counts
type RosterView struct {
	store    *store.Store
	roster   []models.Housemate
	list     list.Model
	delegate *housemateDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int
	loaded   bool

	// Help popup (shown with ? at narrow widths)
	showHelpPopup bool
}

// NewRosterView creates the roster screen
func NewRosterView(st *store.Store, roster []models.Housemate) *RosterView {
	s := styles.NewStyles()

	delegate := &housemateDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Housemates"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	return &RosterView{
		store:    st,
		roster:   roster,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
	}
}

// SelectedHousemate asks the app to open the task list for a housemate.
// An empty Name means everyone.
type SelectedHousemate struct {
	Name string
}

type rosterLoadedMsg struct {
	items []list.Item
}

func (v *RosterView) Init() tea.Cmd {
	return v.loadRoster
}

func (v *RosterView) loadRoster() tea.Msg {
	counts := make(map[string]*housemateItem, len(v.roster))
	everyone := &housemateItem{}
	for _, h := range v.roster {
		counts[h.Name] = &housemateItem{name: h.Name}
	}

	for _, t := range v.store.Tasks() {
		// Assignees dropped from the roster still count towards everyone
		for _, c := range []*housemateItem{everyone, counts[t.Assignee]} {
			if c == nil {
				continue
			}
			if t.Completed {
				c.done++
			} else {
				c.open++
			}
		}
	}

	items := make([]list.Item, 0, len(v.roster)+1)
	items = append(items, *everyone)
	for _, h := range v.roster {
		items = append(items, *counts[h.Name])
	}
	return rosterLoadedMsg{items: items}
}

func (v *RosterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case rosterLoadedMsg:
		v.list.SetItems(msg.items)
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		// Let the list own keys while its filter is being typed
		if v.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case msg.String() == "?":
			v.showHelpPopup = true
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			if item, ok := v.list.SelectedItem().(housemateItem); ok {
				return v, func() tea.Msg {
					return SelectedHousemate{Name: item.name}
				}
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the view
func (v *RosterView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	content := v.list.View() + "\n" + v.renderHelp()
	return styles.CenterView(content, v.width, v.height)
}

func (v *RosterView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}
	return v.styles.Help.Render(
		fmt.Sprintf("%s open • %s filter • %s quit",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *RosterView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↵") + "      open chores",
		s.HelpKey.Render("/") + "      filter housemates",
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
