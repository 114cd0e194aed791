package query

import "github.com/taskdeck/taskdeck/task"

// Statistics holds aggregate counts for display.
//
// All counts every non-deleted task, not every record: soft-deleted
// tasks are excluded from it and only show up in Deleted. Display
// surfaces rely on that convention, so keep it when presenting the
// numbers.
type Statistics struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Deleted   int `json:"deleted"`
}

// Stats computes aggregate counts over the given tasks.
func Stats(tasks []task.Task) Statistics {
	var stats Statistics
	for _, t := range tasks {
		if t.Deleted() {
			stats.Deleted++
			continue
		}
		stats.All++
		switch t.Status {
		case task.StatusActive:
			stats.Active++
		case task.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
