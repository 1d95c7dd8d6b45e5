package usecase

import (
	"context"

	"github.com/amanKp27/toDoList/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Raw text; trimmed before use
	Date string // YYYY-MM-DD; empty means today
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  domain.Task // The created task (zero when Added is false)
	Added bool        // False when the text was empty
}

// AddTask is the use case for adding a task.
type AddTask struct {
	store *TaskStore
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store *TaskStore) *AddTask {
	return &AddTask{store: store}
}

// Execute adds a task.
// Empty text is not an error: the output reports Added=false and nothing changes.
// An unparsable date returns ErrInvalidDate.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	task, added := uc.store.Add(in.Text, date)
	return &AddTaskOutput{Task: task, Added: added}, nil
}
