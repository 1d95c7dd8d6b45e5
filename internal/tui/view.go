package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/usecase"
)

const (
	appTitle     = "My Todo List"
	emptyMessage = "No tasks yet. Add one!"
	minTextWidth = 10
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	parts := []string{
		m.viewHeader(),
		m.viewForm(),
	}
	if m.err != nil {
		parts = append(parts, m.viewError())
	}
	parts = append(parts, m.list.View())
	if m.mode == ModeConfirm {
		parts = append(parts, m.viewConfirm())
	}
	parts = append(parts, m.viewFooter())

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// syncList refreshes the list viewport and scrolls the cursor row into view.
func (m *Model) syncList() {
	if m.width == 0 {
		return
	}

	content, top, bottom := m.renderList()
	m.list.Width = m.contentWidth()
	m.list.Height = m.listHeight()
	m.list.SetContent(content)
	m.list.SetYOffset(m.list.YOffset)

	switch {
	case top < m.list.YOffset:
		m.list.SetYOffset(top)
	case bottom >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(bottom - m.list.Height + 1)
	}
}

// listHeight is the number of lines left for the list after the fixed parts.
func (m *Model) listHeight() int {
	fixed := m.styles.App.GetVerticalFrameSize() +
		lipgloss.Height(m.viewHeader()) +
		lipgloss.Height(m.viewForm()) +
		lipgloss.Height(m.viewFooter())
	if m.err != nil {
		fixed += lipgloss.Height(m.viewError())
	}
	if m.mode == ModeConfirm {
		fixed += lipgloss.Height(m.viewConfirm())
	}
	return max(m.height-fixed, 1)
}

func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render(appTitle)
	info := m.styles.HeaderInfo.Render(m.summary.String())
	return m.styles.Header.Render(title + "  " + info)
}

func (m *Model) viewError() string {
	msg := runewidth.Truncate("Error: "+m.err.Error(), m.contentWidth(), "…")
	return m.styles.ErrorMsg.Render(msg)
}

func (m *Model) viewForm() string {
	style := m.styles.Form
	if m.mode.IsInputMode() {
		style = m.styles.FormFocused
	}

	textLabel := m.styles.InputLabel.Render("Task")
	dateLabel := m.styles.InputLabel.Render("Date")
	if m.mode.IsInputMode() {
		switch m.field {
		case FieldText:
			textLabel = m.styles.InputPrompt.Width(6).Render("Task")
		case FieldDate:
			dateLabel = m.styles.InputPrompt.Width(6).Render("Date")
		}
	}

	body := textLabel + m.textInput.View() + "\n" + dateLabel + m.dateInput.View()
	return style.Render(body)
}

// renderList draws every row and returns the first and last line
// that must stay visible for the cursor row.
// The first row of a section keeps its header visible too.
func (m *Model) renderList() (content string, top, bottom int) {
	if len(m.rows) == 0 {
		return m.styles.Empty.Render(emptyMessage), 0, 0
	}

	var lines []string
	row := 0
	for i, section := range m.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		header := len(lines)
		lines = append(lines, m.viewSectionHeader(section))
		for j, task := range section.Tasks {
			selected := row == m.cursor
			if selected {
				top, bottom = len(lines), len(lines)
				if j == 0 {
					top = header
				}
			}
			lines = append(lines, m.viewTask(task, selected && !m.mode.IsInputMode()))
			row++
		}
	}
	return strings.Join(lines, "\n"), top, bottom
}

func (m *Model) viewSectionHeader(section usecase.TaskSection) string {
	label := m.styles.GroupHeaderLabel.Render(section.Label)
	lineLen := m.contentWidth() - lipgloss.Width(section.Label) - 1
	if lineLen < 0 {
		lineLen = 0
	}
	return label + " " + m.styles.GroupHeaderLine.Render(strings.Repeat("─", lineLen))
}

func (m *Model) viewTask(task domain.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.CursorSelected.Render("> ")
	}

	check := m.styles.CheckTodo.Render("[ ]")
	if task.Completed {
		check = m.styles.CheckDone.Render("[x]")
	}

	textWidth := max(m.contentWidth()-6, minTextWidth)
	text := runewidth.Truncate(task.Text, textWidth, "…")

	switch {
	case task.Completed:
		text = m.styles.TaskDone.Render(text)
	case selected:
		text = m.styles.TaskTitleSelected.Render(text)
	default:
		text = m.styles.TaskTitle.Render(text)
	}

	return cursor + check + " " + text
}

func (m *Model) viewConfirm() string {
	title := m.styles.DialogTitle.Render(fmt.Sprintf("Delete task #%d?", m.confirmTaskID))
	if task, ok := m.findRow(m.confirmTaskID); ok {
		title += "\n" + runewidth.Truncate(task.Text, max(m.contentWidth()-8, minTextWidth), "…")
	}
	prompt := m.styles.DialogPrompt.Render("[y] Yes  [n] No")
	return m.styles.Dialog.
		BorderForeground(Colors.Error).
		Render(title + "\n\n" + prompt)
}

func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("Keybindings")
	body := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("press ? or esc to close")
	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(title + "\n\n" + body + "\n\n" + hint)
}

func (m *Model) viewFooter() string {
	var view string
	if m.mode.IsInputMode() {
		view = m.help.View(formHelp{k: m.keys})
	} else {
		view = m.help.View(m.keys)
	}
	return "\n" + m.styles.Footer.Render(view)
}

// contentWidth is the usable width inside the app padding.
func (m *Model) contentWidth() int {
	return max(m.width-4, minTextWidth)
}

func (m *Model) findRow(id int64) (domain.Task, bool) {
	for _, t := range m.rows {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}
