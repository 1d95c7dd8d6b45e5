package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amanKp27/toDoList/internal/app"
	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices)
	sections []usecase.TaskSection
	rows     []domain.Task // Display order: sections flattened

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	list   viewport.Model // Scrolls the grouped rows within the window

	// Input state (large structs)
	textInput textinput.Model
	dateInput textinput.Model

	// Numeric state (smaller types last)
	summary       domain.Summary
	mode          Mode
	field         FormField
	confirmAction ConfirmAction
	confirmTaskID int64
	selectID      int64 // Task to put the cursor on after the next load
	width         int
	height        int
	cursor        int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Width = 40

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.Prompt = ""
	di.CharLimit = len(domain.DateLayout)
	di.Width = len(domain.DateLayout)
	di.SetValue(c.Store.Today().String())

	styles := DefaultStyles()
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	return &Model{
		container: c,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      h,
		list:      viewport.New(0, 0),
		textInput: ti,
		dateInput: di,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that reads the current list.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Sections: out.Sections, Summary: out.Summary}
	}
}

// addTask returns a command that adds a task from the form values.
func (m *Model) addTask(text, date string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Text: text,
			Date: date,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Added {
			return MsgAddIgnored{}
		}
		return MsgTaskAdded{Task: out.Task}
	}
}

// toggleTask returns a command that flips a task's completion flag.
func (m *Model) toggleTask(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: id})
		if err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{TaskID: id}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		if err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id}
	}
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return domain.Task{}, false
	}
	return m.rows[m.cursor], true
}

// setSections replaces the displayed list and keeps the cursor in range.
func (m *Model) setSections(sections []usecase.TaskSection) {
	m.sections = sections
	m.rows = m.rows[:0]
	for _, s := range sections {
		m.rows = append(m.rows, s.Tasks...)
	}

	if m.selectID != 0 {
		for i, t := range m.rows {
			if t.ID == m.selectID {
				m.cursor = i
				break
			}
		}
		m.selectID = 0
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// focusField focuses the current form field.
func (m *Model) focusField() tea.Cmd {
	m.textInput.Blur()
	m.dateInput.Blur()

	switch m.field {
	case FieldText:
		return m.textInput.Focus()
	case FieldDate:
		return m.dateInput.Focus()
	}
	return nil
}
