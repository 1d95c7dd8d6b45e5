package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	Done          lipgloss.Color
	GroupLine     lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	Done:          lipgloss.Color("#636E72"), // Gray
	GroupLine:     lipgloss.Color("#636E72"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Form
	Form        lipgloss.Style
	FormFocused lipgloss.Style
	InputPrompt lipgloss.Style
	InputLabel  lipgloss.Style

	// Task list
	GroupHeaderLabel  lipgloss.Style
	GroupHeaderLine   lipgloss.Style
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskDone          lipgloss.Style
	CheckDone         lipgloss.Style
	CheckTodo         lipgloss.Style
	CursorSelected    lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Footer / help
	Footer   lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Misc
	Empty    lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),

		FormFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(6),

		GroupHeaderLabel: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		GroupHeaderLine: lipgloss.NewStyle().
			Foreground(Colors.GroupLine),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.Done).
			Strikethrough(true),

		CheckDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		CheckTodo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true).
			PaddingLeft(2),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
