package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}

func TestGroupTasks_WorkedExample(t *testing.T) {
	today := NewDate(2024, time.January, 3)
	gen := NewIDGenerator(nil)
	now := time.UnixMilli(1_704_067_200_000)

	var list TaskList
	for _, in := range []struct {
		text string
		date Date
	}{
		{"Buy milk", jan5},
		{"Call Bob", jan5},
		{"Pay rent", jan1},
	} {
		task, err := NewTask(gen.Next(now), in.text, in.date, today)
		require.NoError(t, err)
		list = list.Add(task)
	}

	view := GroupTasks(list, today)

	assert.Equal(t, []Date{jan1, jan5}, view.Dates)
	assert.Equal(t, []string{"Buy milk", "Call Bob"}, texts(view.Bucket(jan5)))
	assert.Equal(t, []string{"Pay rent"}, texts(view.Bucket(jan1)))
}

func TestGroupTasks_Empty(t *testing.T) {
	view := GroupTasks(nil, jan1)
	assert.Empty(t, view.Groups)
	assert.NotNil(t, view.Dates)
	assert.Empty(t, view.Dates)
	assert.Equal(t, 0, countTasks(view))
}

func TestGroupTasks_MissingDateGoesToToday(t *testing.T) {
	today := NewDate(2024, time.February, 2)
	list := TaskList{
		{ID: 2, Text: "legacy"},
		{ID: 1, Text: "dated", Date: today},
	}

	view := GroupTasks(list, today)

	assert.Equal(t, []Date{today}, view.Dates)
	assert.Equal(t, []string{"dated", "legacy"}, texts(view.Bucket(today)))
}

func TestGroupTasks_PartitionsEveryTaskOnce(t *testing.T) {
	dates := []Date{
		NewDate(2024, time.March, 10),
		NewDate(2023, time.December, 31),
		NewDate(2024, time.January, 9),
		NewDate(2024, time.January, 10),
	}
	var list TaskList
	for i := 0; i < 40; i++ {
		list = list.Add(Task{ID: int64(1000 - i*7%97), Text: "t", Date: dates[i%len(dates)]})
	}
	// Deduplicate IDs the generator would never repeat.
	seen := map[int64]bool{}
	var unique TaskList
	for _, task := range list {
		if !seen[task.ID] {
			seen[task.ID] = true
			unique = append(unique, task)
		}
	}

	view := GroupTasks(unique, jan1)

	assert.Equal(t, len(unique), countTasks(view))
	for i := 1; i < len(view.Dates); i++ {
		assert.Equal(t, -1, view.Dates[i-1].Compare(view.Dates[i]), "dates must be strictly ascending")
	}
	got := map[int64]int{}
	for date, bucket := range view.Groups {
		for i, task := range bucket {
			assert.Equal(t, date, task.Date)
			got[task.ID]++
			if i > 0 {
				assert.Less(t, bucket[i-1].ID, task.ID)
			}
		}
	}
	for id := range seen {
		assert.Equal(t, 1, got[id], "task %d", id)
	}
}

func TestGroupTasks_ComparesCalendarNotString(t *testing.T) {
	early := NewDate(999, time.December, 31)
	late := NewDate(2024, time.January, 1)
	view := GroupTasks(TaskList{{ID: 1, Date: late}, {ID: 2, Date: early}}, jan1)
	assert.Equal(t, []Date{early, late}, view.Dates)
}

func TestGroupTasks_DoesNotReorderInput(t *testing.T) {
	list := TaskList{{ID: 3, Date: jan1}, {ID: 1, Date: jan1}, {ID: 2, Date: jan1}}
	_ = GroupTasks(list, jan1)
	assert.Equal(t, []int64{3, 1, 2}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func TestFormatDateLabel(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	now := time.Date(2026, time.January, 1, 23, 59, 0, 0, loc)

	tests := []struct {
		name string
		date Date
		want string
	}{
		{"today", NewDate(2026, time.January, 1), "Today"},
		{"tomorrow", NewDate(2026, time.January, 2), "Tomorrow"},
		{"yesterday", NewDate(2025, time.December, 31), "Wednesday, Dec 31"},
		{"later", NewDate(2026, time.January, 5), "Monday, Jan 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateLabel(tt.date, now))
		})
	}
}

func TestFormatDateLabel_FollowsNow(t *testing.T) {
	d := NewDate(2026, time.January, 2)
	assert.Equal(t, "Tomorrow", FormatDateLabel(d, time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Today", FormatDateLabel(d, time.Date(2026, time.January, 2, 0, 0, 1, 0, time.UTC)))
}

func TestSummarize(t *testing.T) {
	list := TaskList{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3, Completed: true},
	}

	s := Summarize(list)
	assert.Equal(t, Summary{Completed: 2, Total: 3}, s)
	assert.Equal(t, "2 of 3 tasks completed", s.String())
	assert.Equal(t, "0 of 0 tasks completed", Summarize(nil).String())
}

func countTasks(v GroupedView) int {
	n := 0
	for _, bucket := range v.Groups {
		n += len(bucket)
	}
	return n
}
