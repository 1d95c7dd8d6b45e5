package usecase

import (
	"context"

	"github.com/amanKp27/toDoList/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int64 // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task domain.Task // The removed task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	store *TaskStore
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store *TaskStore) *DeleteTask {
	return &DeleteTask{store: store}
}

// Execute deletes a task with the given ID.
// Returns ErrTaskNotFound when no task has the id; the list is left untouched.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, ok := uc.store.Find(in.TaskID)
	if !ok || !uc.store.Delete(in.TaskID) {
		return nil, domain.ErrTaskNotFound
	}
	return &DeleteTaskOutput{Task: task}, nil
}
