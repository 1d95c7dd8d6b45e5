package usecase

import (
	"context"
	"time"

	"github.com/amanKp27/toDoList/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// TaskSection is one date bucket ready for display.
type TaskSection struct {
	Label string        `json:"label" yaml:"label"` // "Today", "Tomorrow", "Monday, Jan 5"
	Date  domain.Date   `json:"date" yaml:"date"`
	Tasks []domain.Task `json:"tasks" yaml:"tasks"`
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks    domain.TaskList // Stored order, newest first
	Sections []TaskSection   // Ascending by date
	Summary  domain.Summary
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	store *TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store *TaskStore) *ListTasks {
	return &ListTasks{store: store}
}

// Execute returns the list, its grouped view with labels, and the completion summary.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	now := uc.store.Now()
	return &ListTasksOutput{
		Tasks:    uc.store.Tasks(),
		Sections: BuildSections(uc.store.Grouped(), now),
		Summary:  uc.store.Summary(),
	}, nil
}

// BuildSections labels each bucket of view as seen at now.
func BuildSections(view domain.GroupedView, now time.Time) []TaskSection {
	sections := make([]TaskSection, 0, len(view.Dates))
	for _, date := range view.Dates {
		sections = append(sections, TaskSection{
			Label: domain.FormatDateLabel(date, now),
			Date:  date,
			Tasks: view.Bucket(date),
		})
	}
	return sections
}
