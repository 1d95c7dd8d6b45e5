// Package usecase contains the application use cases.
package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/amanKp27/toDoList/internal/domain"
)

// Log categories.
const (
	categoryTask    = "task"
	categoryStorage = "storage"
)

// TaskStore owns the task list for the lifetime of the process.
// Every mutation is applied in memory first and then written through the slot.
// Fields are ordered to minimize memory padding.
type TaskStore struct {
	slot   domain.Slot
	clock  domain.Clock
	logger domain.Logger
	ids    *domain.IDGenerator
	key    string
	tasks  domain.TaskList
	mu     sync.Mutex
}

// NewTaskStore restores the list stored under key.
// An empty, unreadable or malformed slot yields an empty list; the cause is logged.
func NewTaskStore(slot domain.Slot, key string, clock domain.Clock, logger domain.Logger) *TaskStore {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	s := &TaskStore{
		slot:   slot,
		clock:  clock,
		logger: logger,
		key:    key,
	}
	s.tasks = s.load()
	s.ids = domain.NewIDGenerator(s.tasks)
	return s
}

func (s *TaskStore) load() domain.TaskList {
	data, err := s.slot.Read(s.key)
	if err != nil {
		if errors.Is(err, domain.ErrSlotEmpty) {
			s.logger.Debug(categoryStorage, "no stored tasks", "key", s.key)
		} else {
			s.logger.Warn(categoryStorage, "read failed, starting empty", "key", s.key, "err", err)
		}
		return domain.TaskList{}
	}

	tasks, err := domain.DecodeTasks(data)
	if err != nil {
		s.logger.Warn(categoryStorage, "stored tasks unreadable, starting empty", "key", s.key, "err", err)
		return domain.TaskList{}
	}

	return s.dedupe(tasks)
}

// dedupe keeps the first task of each id.
func (s *TaskStore) dedupe(tasks domain.TaskList) domain.TaskList {
	seen := make(map[int64]struct{}, len(tasks))
	out := make(domain.TaskList, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			s.logger.Warn(categoryStorage, "dropping duplicate task id", "id", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

// persist writes the current list. Callers must hold s.mu.
// Failures are logged; memory stays authoritative.
func (s *TaskStore) persist() {
	data, err := domain.EncodeTasks(s.tasks)
	if err != nil {
		s.logger.Error(categoryStorage, "encode failed", "err", err)
		return
	}
	if err := s.slot.Write(s.key, data); err != nil {
		s.logger.Error(categoryStorage, "write failed", "key", s.key, "err", err)
	}
}

// Add creates a task and prepends it.
// Empty or whitespace-only text is ignored and reported as false.
// A zero date means today.
func (s *TaskStore) Add(text string, date domain.Date) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	task, err := domain.NewTask(0, text, date, domain.DateOf(now))
	if err != nil {
		return domain.Task{}, false
	}
	task.ID = s.ids.Next(now)

	s.tasks = s.tasks.Add(task)
	s.logger.Info(categoryTask, "added", "id", task.ID, "date", task.Date.String())
	s.persist()
	return task, true
}

// Toggle flips the completion flag of task id.
// Returns false, without writing, when no task has that id.
func (s *TaskStore) Toggle(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.tasks.Toggle(id)
	if !ok {
		s.logger.Debug(categoryTask, "toggle: not found", "id", id)
		return false
	}
	s.tasks = next
	s.logger.Info(categoryTask, "toggled", "id", id)
	s.persist()
	return true
}

// Delete removes task id.
// Returns false, without writing, when no task has that id.
func (s *TaskStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.tasks.Delete(id)
	if !ok {
		s.logger.Debug(categoryTask, "delete: not found", "id", id)
		return false
	}
	s.tasks = next
	s.logger.Info(categoryTask, "deleted", "id", id)
	s.persist()
	return true
}

// Tasks returns a copy of the list, newest first.
func (s *TaskStore) Tasks() domain.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Clone()
}

// Find returns the task with the given id.
func (s *TaskStore) Find(id int64) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Find(id)
}

// Grouped returns the current list bucketed by date.
func (s *TaskStore) Grouped() domain.GroupedView {
	return domain.GroupTasks(s.Tasks(), s.Today())
}

// Summary returns the live completion counts.
func (s *TaskStore) Summary() domain.Summary {
	return domain.Summarize(s.Tasks())
}

// Today returns the current calendar date of the store's clock.
func (s *TaskStore) Today() domain.Date {
	return domain.Today(s.clock)
}

// Now returns the current time of the store's clock.
func (s *TaskStore) Now() time.Time {
	return s.clock.Now()
}
