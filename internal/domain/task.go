// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task is a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	Text      string `json:"text" yaml:"text"`           // Description (trimmed, non-empty)
	Date      Date   `json:"date" yaml:"date"`           // Calendar day the task belongs to
	ID        int64  `json:"id" yaml:"id"`               // Creation-ordered unique ID
	Completed bool   `json:"completed" yaml:"completed"` // Completion flag
}

// NewTask builds a task from raw user input.
// Text is trimmed; empty text yields ErrEmptyText.
// A zero date defaults to today.
func NewTask(id int64, text string, date, today Date) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	if date.IsZero() {
		date = today
	}
	return Task{
		ID:   id,
		Text: text,
		Date: date,
	}, nil
}

// TaskList is the ordered list of tasks, newest first.
// All operations return a new slice and leave the receiver untouched.
type TaskList []Task

// Add returns a list with task prepended.
func (l TaskList) Add(task Task) TaskList {
	out := make(TaskList, 0, len(l)+1)
	out = append(out, task)
	return append(out, l...)
}

// Toggle returns a list with the completion flag of task id flipped.
// The second result is false when no task has that id; the list is then returned as is.
func (l TaskList) Toggle(id int64) (TaskList, bool) {
	idx := l.index(id)
	if idx < 0 {
		return l, false
	}
	out := l.Clone()
	out[idx].Completed = !out[idx].Completed
	return out, true
}

// Delete returns a list without task id.
// The second result is false when no task has that id; the list is then returned as is.
func (l TaskList) Delete(id int64) (TaskList, bool) {
	idx := l.index(id)
	if idx < 0 {
		return l, false
	}
	out := make(TaskList, 0, len(l)-1)
	out = append(out, l[:idx]...)
	return append(out, l[idx+1:]...), true
}

// Find returns the task with the given id.
func (l TaskList) Find(id int64) (Task, bool) {
	idx := l.index(id)
	if idx < 0 {
		return Task{}, false
	}
	return l[idx], true
}

// Clone returns a copy of the list.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return TaskList{}
	}
	out := make(TaskList, len(l))
	copy(out, l)
	return out
}

// MaxID returns the largest id in the list, or 0 for an empty list.
func (l TaskList) MaxID() int64 {
	var maxID int64
	for _, t := range l {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID
}

func (l TaskList) index(id int64) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// IDGenerator hands out creation-ordered task IDs.
// IDs are millisecond timestamps; when two tasks share a millisecond, or the
// clock steps backwards, the next ID is last+1 so IDs stay strictly increasing.
type IDGenerator struct {
	last int64
}

// NewIDGenerator returns a generator that never reissues an ID present in existing.
func NewIDGenerator(existing TaskList) *IDGenerator {
	return &IDGenerator{last: existing.MaxID()}
}

// Next returns a fresh ID for a task created at now.
func (g *IDGenerator) Next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
