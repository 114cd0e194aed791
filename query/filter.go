// Package query provides pure functions over in-memory task collections:
// filtering, sorting, aggregate statistics, and deadline classification.
//
// Nothing in this package performs I/O. Callers load tasks through
// task.Service and hand the slice in; every function returns fresh
// slices and never mutates its input.
package query

import (
	"strings"

	internalstrings "github.com/taskdeck/taskdeck/internal/strings"
	"github.com/taskdeck/taskdeck/task"
)

// FilterAll matches every value of a filter dimension.
const FilterAll = "all"

// Filters selects a subset of tasks. All set conditions must hold
// (conjunctive). Zero values mean "not filtered", except Status: an unset
// or "all" status hides soft-deleted tasks, so deleted tasks only appear
// when requested by name.
type Filters struct {
	// Status filters by lifecycle state ("active", "completed",
	// "deleted", or "all").
	Status string

	// Priority filters by exact priority ("low", "medium", "high", or
	// "all").
	Priority string

	// Category filters by exact category label, case-sensitive.
	Category string

	// Search matches a case-insensitive substring against title or
	// description.
	Search string
}

// Filter returns the tasks matching all conditions in filters.
func Filter(tasks []task.Task, filters Filters) []task.Task {
	search := internalstrings.NormalizeLowerTrimSpace(filters.Search)

	var result []task.Task
	for _, t := range tasks {
		if filters.Status != "" && filters.Status != FilterAll {
			if string(t.Status) != filters.Status {
				continue
			}
		} else if t.Deleted() {
			// Deleted tasks are hidden unless asked for by status.
			continue
		}

		if filters.Priority != "" && filters.Priority != FilterAll {
			if string(t.Priority) != filters.Priority {
				continue
			}
		}

		if filters.Category != "" && filters.Category != FilterAll {
			if t.Category != filters.Category {
				continue
			}
		}

		if search != "" {
			title := strings.Contains(strings.ToLower(t.Title), search)
			description := t.Description != "" && strings.Contains(strings.ToLower(t.Description), search)
			if !title && !description {
				continue
			}
		}

		result = append(result, t)
	}

	return result
}
