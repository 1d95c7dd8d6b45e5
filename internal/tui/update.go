package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.syncList()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textInput.Width = max(msg.Width-16, 10)
		return m, nil

	case MsgTasksLoaded:
		m.summary = msg.Summary
		m.setSections(msg.Sections)
		return m, nil

	case MsgTaskAdded:
		// Only the text draft is cleared; the date stays for the next entry.
		m.textInput.Reset()
		m.err = nil
		m.selectID = msg.Task.ID
		return m, m.loadTasks()

	case MsgAddIgnored:
		return m, nil

	case MsgTaskToggled:
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		if m.mode == ModeConfirm {
			m.mode = ModeNormal
			m.confirmAction = ConfirmNone
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInput
		m.field = FieldText
		return m, m.focusField()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleInputMode handles keys while the add form has focus.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		// Drafts are kept so the user can come back to them.
		m.mode = ModeNormal
		m.textInput.Blur()
		m.dateInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.field = m.field.Next()
		return m, m.focusField()

	case key.Matches(msg, m.keys.Submit):
		return m, m.addTask(m.textInput.Value(), m.dateInput.Value())
	}

	// Forward to current input field
	var cmd tea.Cmd
	switch m.field {
	case FieldText:
		m.textInput, cmd = m.textInput.Update(msg)
	case FieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return m, cmd
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			return m, m.deleteTask(m.confirmTaskID)
		}
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}
