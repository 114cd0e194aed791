package task

import (
	"encoding/json"
	"time"
)

// Task represents a single tracked task.
type Task struct {
	// ID is the store-assigned numeric key (never reused after a
	// permanent delete).
	ID int64

	// Title is the short summary of the task.
	Title string

	// Description provides additional context about the task.
	Description string

	// CreatedAt is when the task was created.
	CreatedAt time.Time

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time

	// CompletedAt is when the task was completed (nil while active).
	CompletedAt *time.Time

	// Deadline is an optional target date, independent of lifecycle.
	Deadline *time.Time

	// Priority is the importance level.
	Priority Priority

	// Category is a free-text label. It is not a foreign key: deleting
	// a category record leaves this string in place.
	Category string

	// Status is the lifecycle state of the task.
	Status Status

	// DeletedAt is when the task was soft-deleted (nil if not deleted).
	DeletedAt *time.Time
}

// Deleted reports whether the task is soft-deleted. The persisted schema
// carries this as an is_deleted field, but in memory it is derived from
// Status so the two can never drift.
func (t Task) Deleted() bool {
	return t.Status == StatusDeleted
}

// Completed reports whether the task is completed.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// RecordID returns the storage key for the task.
func (t Task) RecordID() int64 { return t.ID }

// WithRecordID returns a copy of the task with the id set.
func (t Task) WithRecordID(id int64) Task {
	t.ID = id
	return t
}

// taskJSON is the persisted shape of a Task. It matches the original
// on-disk schema, including the denormalized is_deleted flag.
type taskJSON struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Deadline    *time.Time `json:"deadline"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Status      Status     `json:"status"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// MarshalJSON writes the task with is_deleted derived from Status.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
		Deadline:    t.Deadline,
		Priority:    t.Priority,
		Category:    t.Category,
		Status:      t.Status,
		IsDeleted:   t.Deleted(),
		DeletedAt:   t.DeletedAt,
	})
}

// UnmarshalJSON reads the persisted shape. Status is authoritative; a
// stored is_deleted flag that disagrees with it is ignored.
func (t *Task) UnmarshalJSON(data []byte) error {
	var stored taskJSON
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}
	*t = Task{
		ID:          stored.ID,
		Title:       stored.Title,
		Description: stored.Description,
		CreatedAt:   stored.CreatedAt,
		UpdatedAt:   stored.UpdatedAt,
		CompletedAt: stored.CompletedAt,
		Deadline:    stored.Deadline,
		Priority:    stored.Priority,
		Category:    stored.Category,
		Status:      stored.Status,
		DeletedAt:   stored.DeletedAt,
	}
	return nil
}
