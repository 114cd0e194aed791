// Package task implements the task model and lifecycle operations for
// taskdeck.
//
// Tasks are persisted in the "tasks" collection of a storage.Store. The
// public API mirrors the CLI commands:
//   - Create, Update, ToggleComplete, Delete, Restore for the lifecycle
//   - All, Get for reads
//
// Soft-deleted tasks stay in the collection with Status set to
// StatusDeleted until they are permanently deleted; querying and hiding
// them is the query package's concern.
package task

// Status represents the lifecycle state of a task.
type Status string

const (
	// StatusActive indicates the task is open and not yet completed.
	StatusActive Status = "active"

	// StatusCompleted indicates the task has been completed.
	StatusCompleted Status = "completed"

	// StatusDeleted indicates the task has been soft-deleted.
	StatusDeleted Status = "deleted"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusActive, StatusCompleted, StatusDeleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the lowest importance level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default importance level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the highest importance level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority (high=3, medium=2, low=1).
// Unknown priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
