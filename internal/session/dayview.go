package session

import "github.com/sandeepkv93/daygrid/internal/model"

// Stats are the aggregate counters shown next to the day list.
// SelectedCompleted == 0 is the signal that disables clear-completed.
type Stats struct {
	Total             int
	Completed         int
	SelectedCompleted int
}

// VisibleTasks filters the list down to tasks due on the selected day,
// preserving store order (most-recent-first).
func VisibleTasks(tasks []model.Task, selectedDate string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.DueDate == selectedDate {
			out = append(out, t)
		}
	}
	return out
}

// ComputeStats derives the counters over the whole list and the selected day.
func ComputeStats(tasks []model.Task, selectedDate string) Stats {
	var stats Stats
	stats.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			if t.DueDate == selectedDate {
				stats.SelectedCompleted++
			}
		}
	}
	return stats
}
