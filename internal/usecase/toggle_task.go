package usecase

import (
	"context"

	"github.com/amanKp27/toDoList/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID int64
}

// ToggleTaskOutput contains the task after toggling.
type ToggleTaskOutput struct {
	Task domain.Task
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	store *TaskStore
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(store *TaskStore) *ToggleTask {
	return &ToggleTask{store: store}
}

// Execute toggles the task.
// Returns ErrTaskNotFound when no task has the id; the list is left untouched.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	if !uc.store.Toggle(in.TaskID) {
		return nil, domain.ErrTaskNotFound
	}
	task, _ := uc.store.Find(in.TaskID)
	return &ToggleTaskOutput{Task: task}, nil
}
