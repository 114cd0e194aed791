package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrTaskDeleted is returned when toggling completion on a
	// soft-deleted task; restore it first.
	ErrTaskDeleted = errors.New("task is deleted")

	// ErrCompletedMissingCompletedAt is returned when a completed task has
	// no completed_at timestamp.
	ErrCompletedMissingCompletedAt = errors.New("completed task must have completed_at timestamp")

	// ErrNotCompletedHasCompletedAt is returned when a non-completed task
	// has a completed_at timestamp.
	ErrNotCompletedHasCompletedAt = errors.New("non-completed task cannot have completed_at timestamp")

	// ErrDeletedMissingDeletedAt is returned when a deleted task has no
	// deleted_at timestamp.
	ErrDeletedMissingDeletedAt = errors.New("deleted task must have deleted_at timestamp")

	// ErrNotDeletedHasDeletedAt is returned when a non-deleted task has a
	// deleted_at timestamp.
	ErrNotDeletedHasDeletedAt = errors.New("non-deleted task cannot have deleted_at timestamp")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	return nil
}

// Validate checks if a task struct is internally consistent:
// status==completed exactly when completed_at is set, and status==deleted
// exactly when deleted_at is set.
func Validate(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}

	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}

	if t.Status == StatusCompleted {
		if t.CompletedAt == nil {
			return ErrCompletedMissingCompletedAt
		}
	} else if t.CompletedAt != nil {
		return ErrNotCompletedHasCompletedAt
	}

	if t.Status == StatusDeleted {
		if t.DeletedAt == nil {
			return ErrDeletedMissingDeletedAt
		}
	} else if t.DeletedAt != nil {
		return ErrNotDeletedHasDeletedAt
	}

	return nil
}
