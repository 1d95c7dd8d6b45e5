package tui

import (
	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded carries a fresh snapshot of the list.
type MsgTasksLoaded struct {
	Sections []usecase.TaskSection
	Summary  domain.Summary
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a task was created.
type MsgTaskAdded struct {
	Task domain.Task
}

func (MsgTaskAdded) sealed() {}

// MsgAddIgnored is sent when the submitted text was empty.
type MsgAddIgnored struct{}

func (MsgAddIgnored) sealed() {}

// MsgTaskToggled is sent after a toggle, found or not.
type MsgTaskToggled struct {
	TaskID int64
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent after a delete, found or not.
type MsgTaskDeleted struct {
	TaskID int64
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
