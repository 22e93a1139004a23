package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette every view draws from
type Theme struct {
	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

// Current holds the active theme
var Current = TokyoNight

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds the lipgloss styles shared by the roster and task views
type Styles struct {
	// Headers
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Roster rows
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Search box
	FilterBar lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	// Chore rows
	TaskTitle    lipgloss.Style
	TaskDone     lipgloss.Style
	TaskAssignee lipgloss.Style
	TaskDue      lipgloss.Style
	TaskOverdue  lipgloss.Style
	Checkbox     lipgloss.Style
	CheckboxDone lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Form validation message
	FormError lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles builds Styles from Current
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		FilterBar: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(t.Foreground),

		TaskDone: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Strikethrough(true),

		TaskAssignee: lipgloss.NewStyle().
			Foreground(t.Secondary),

		TaskDue: lipgloss.NewStyle().
			Foreground(t.Accent),

		TaskOverdue: lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		CheckboxDone: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		FormError: lipgloss.NewStyle().
			Foreground(t.Error),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
	}
}
