package query

import "time"

// DeadlineStatus classifies a deadline relative to the current date. It
// is derived at display time and never persisted.
type DeadlineStatus string

const (
	// DeadlineNone means the task has no deadline.
	DeadlineNone DeadlineStatus = ""

	// DeadlineOverdue means the deadline passed before today.
	DeadlineOverdue DeadlineStatus = "overdue"

	// DeadlineToday means the deadline falls on the current date.
	DeadlineToday DeadlineStatus = "today"

	// DeadlineTomorrow means the deadline falls on the next date.
	DeadlineTomorrow DeadlineStatus = "tomorrow"

	// DeadlineUpcoming means the deadline is further out.
	DeadlineUpcoming DeadlineStatus = "upcoming"
)

// ClassifyDeadline returns the deadline status for a task deadline at
// the given moment. Dates are compared in now's location.
func ClassifyDeadline(deadline *time.Time, now time.Time) DeadlineStatus {
	if deadline == nil {
		return DeadlineNone
	}

	due := deadline.In(now.Location())
	switch {
	case sameDate(due, now):
		return DeadlineToday
	case due.Before(now):
		return DeadlineOverdue
	case sameDate(due, now.AddDate(0, 0, 1)):
		return DeadlineTomorrow
	default:
		return DeadlineUpcoming
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
