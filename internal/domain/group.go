package domain

import (
	"fmt"
	"slices"
	"time"
)

// GroupedView is the display form of a task list: one bucket per calendar date.
type GroupedView struct {
	Groups map[Date][]Task // Tasks per date, ascending by ID
	Dates  []Date          // Distinct dates, strictly ascending
}

// GroupTasks partitions tasks by date.
// Tasks without a date fall into today's bucket.
// The result is derived from tasks alone and shares no memory with it.
func GroupTasks(tasks TaskList, today Date) GroupedView {
	view := GroupedView{
		Groups: make(map[Date][]Task),
		Dates:  []Date{},
	}

	for _, t := range tasks {
		date := t.Date
		if date.IsZero() {
			date = today
		}
		if _, ok := view.Groups[date]; !ok {
			view.Dates = append(view.Dates, date)
		}
		view.Groups[date] = append(view.Groups[date], t)
	}

	for date, bucket := range view.Groups {
		slices.SortFunc(bucket, func(a, b Task) int {
			return cmpInt64(a.ID, b.ID)
		})
		view.Groups[date] = bucket
	}
	slices.SortFunc(view.Dates, Date.Compare)

	return view
}

// Bucket returns the tasks of date, or nil when the date has none.
func (v GroupedView) Bucket(date Date) []Task {
	return v.Groups[date]
}

// FormatDateLabel returns the section heading for date as seen at now:
// "Today", "Tomorrow", or e.g. "Monday, Jan 5".
// Comparison uses now's location, so callers pass the viewer's local time.
func FormatDateLabel(date Date, now time.Time) string {
	today := DateOf(now)
	switch date {
	case today:
		return "Today"
	case today.AddDays(1):
		return "Tomorrow"
	}
	return date.Time(now.Location()).Format("Monday, Jan 2")
}

// Summary counts completed tasks.
type Summary struct {
	Completed int
	Total     int
}

// Summarize computes the completion counts of tasks.
func Summarize(tasks TaskList) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

// String renders the header line, e.g. "2 of 5 tasks completed".
func (s Summary) String() string {
	return fmt.Sprintf("%d of %d tasks completed", s.Completed, s.Total)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
