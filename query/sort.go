package query

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taskdeck/taskdeck/task"
)

// SortOption selects an ordering for task lists.
type SortOption string

const (
	// SortCreatedDesc orders by creation time, newest first.
	SortCreatedDesc SortOption = "created_desc"

	// SortCreatedAsc orders by creation time, oldest first.
	SortCreatedAsc SortOption = "created_asc"

	// SortDeadlineAsc orders by deadline ascending; tasks without a
	// deadline sort last.
	SortDeadlineAsc SortOption = "deadline_asc"

	// SortDeadlineDesc orders by deadline descending; tasks without a
	// deadline still sort last.
	SortDeadlineDesc SortOption = "deadline_desc"

	// SortPriorityDesc orders high before medium before low.
	SortPriorityDesc SortOption = "priority_desc"

	// SortPriorityAsc orders low before medium before high.
	SortPriorityAsc SortOption = "priority_asc"

	// SortTitleAsc orders by title, locale-aware, A first.
	SortTitleAsc SortOption = "title_asc"

	// SortTitleDesc orders by title, locale-aware, Z first.
	SortTitleDesc SortOption = "title_desc"

	// SortCompletedDesc orders by completion time descending; tasks
	// without completed_at sort last.
	SortCompletedDesc SortOption = "completed_desc"

	// SortCompletedAsc orders by completion time ascending; tasks
	// without completed_at sort FIRST. This asymmetry with the deadline
	// sorts is long-standing observed behavior and is kept on purpose.
	SortCompletedAsc SortOption = "completed_asc"
)

// ValidSortOptions returns all recognized sort options.
func ValidSortOptions() []SortOption {
	return []SortOption{
		SortCreatedDesc, SortCreatedAsc,
		SortDeadlineAsc, SortDeadlineDesc,
		SortPriorityDesc, SortPriorityAsc,
		SortTitleAsc, SortTitleDesc,
		SortCompletedDesc, SortCompletedAsc,
	}
}

// IsValid returns true if the option is recognized.
func (o SortOption) IsValid() bool {
	for _, valid := range ValidSortOptions() {
		if o == valid {
			return true
		}
	}
	return false
}

// Sort returns a new slice ordered by the given option. The input is
// never mutated. Sorting is stable, and an unrecognized option returns
// the tasks in input order.
func Sort(tasks []task.Task, option SortOption) []task.Task {
	sorted := append([]task.Task(nil), tasks...)

	less := lessFunc(sorted, option)
	if less != nil {
		sort.SliceStable(sorted, less)
	}
	return sorted
}

func lessFunc(tasks []task.Task, option SortOption) func(i, j int) bool {
	switch option {
	case SortCreatedDesc:
		return func(i, j int) bool { return tasks[j].CreatedAt.Before(tasks[i].CreatedAt) }
	case SortCreatedAsc:
		return func(i, j int) bool { return tasks[i].CreatedAt.Before(tasks[j].CreatedAt) }
	case SortDeadlineAsc:
		return func(i, j int) bool {
			return compareNullable(tasks[i].Deadline, tasks[j].Deadline, false, false)
		}
	case SortDeadlineDesc:
		return func(i, j int) bool {
			return compareNullable(tasks[i].Deadline, tasks[j].Deadline, true, false)
		}
	case SortPriorityDesc:
		return func(i, j int) bool { return tasks[i].Priority.Rank() > tasks[j].Priority.Rank() }
	case SortPriorityAsc:
		return func(i, j int) bool { return tasks[i].Priority.Rank() < tasks[j].Priority.Rank() }
	case SortTitleAsc:
		collator := titleCollator()
		return func(i, j int) bool { return collator.CompareString(tasks[i].Title, tasks[j].Title) < 0 }
	case SortTitleDesc:
		collator := titleCollator()
		return func(i, j int) bool { return collator.CompareString(tasks[j].Title, tasks[i].Title) < 0 }
	case SortCompletedDesc:
		return func(i, j int) bool {
			return compareNullable(tasks[i].CompletedAt, tasks[j].CompletedAt, true, false)
		}
	case SortCompletedAsc:
		return func(i, j int) bool {
			return compareNullable(tasks[i].CompletedAt, tasks[j].CompletedAt, false, true)
		}
	default:
		return nil
	}
}

// compareNullable reports whether a sorts before b. Nil timestamps sort
// last by default, or first when nilFirst is set.
func compareNullable(a, b *time.Time, desc, nilFirst bool) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return nilFirst
	case b == nil:
		return !nilFirst
	case desc:
		return b.Before(*a)
	default:
		return a.Before(*b)
	}
}

// titleCollator returns a case-insensitive root-locale collator.
// Collators carry internal buffers, so each sort gets its own.
func titleCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}
