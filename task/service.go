package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/storage"
)

// CollectionName is the storage collection holding tasks.
const CollectionName = "tasks"

// Service performs task lifecycle operations against a storage.Store.
// Each operation touches a single record; there are no multi-record
// transactions, and concurrent writers race with last-write-wins.
type Service struct {
	tasks *storage.Collection[Task]
}

// NewService returns a service backed by the given store.
func NewService(store *storage.Store) *Service {
	return &Service{tasks: storage.NewCollection[Task](store, CollectionName)}
}

// All returns every task, including soft-deleted ones, in id order.
func (s *Service) All() ([]Task, error) {
	tasks, err := s.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task with the given id. A missing id is not an error.
func (s *Service) Get(id int64) (Task, bool, error) {
	return s.tasks.Get(id)
}

// CreateOptions configures a new task.
type CreateOptions struct {
	// Description provides additional context. Trimmed before persisting.
	Description string

	// Deadline is an optional target date.
	Deadline *time.Time

	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// Category is an optional free-text label. Trimmed before persisting.
	Category string
}

// Create creates a new active task with the given title.
func (s *Service) Create(title string, opts CreateOptions) (Task, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}

	if opts.Priority == "" {
		opts.Priority = PriorityMedium
	}
	if err := ValidatePriority(opts.Priority); err != nil {
		return Task{}, err
	}

	now := time.Now()
	created, err := s.tasks.Add(Task{
		Title:       title,
		Description: strings.TrimSpace(opts.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
		Deadline:    opts.Deadline,
		Priority:    opts.Priority,
		Category:    strings.TrimSpace(opts.Category),
		Status:      StatusActive,
	})
	if err != nil {
		return Task{}, fmt.Errorf("write task: %w", err)
	}
	return created, nil
}

// Update replaces the stored record with t and refreshes updated_at.
// Callers own the read-modify-write cycle: the whole record is written
// back, not a partial patch.
func (s *Service) Update(t Task) (Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.UpdatedAt = time.Now()
	if err := Validate(&t); err != nil {
		return Task{}, err
	}

	if err := s.tasks.Put(t); err != nil {
		return Task{}, fmt.Errorf("write task: %w", err)
	}
	return t, nil
}

// ToggleComplete flips a task between active and completed, setting or
// clearing completed_at. Deleted tasks cannot be toggled.
func (s *Service) ToggleComplete(t Task) (Task, error) {
	if t.Deleted() {
		return Task{}, ErrTaskDeleted
	}

	now := time.Now()
	if t.Completed() {
		t.Status = StatusActive
		t.CompletedAt = nil
	} else {
		t.Status = StatusCompleted
		t.CompletedAt = &now
	}
	t.UpdatedAt = now

	if err := s.tasks.Put(t); err != nil {
		return Task{}, fmt.Errorf("write task: %w", err)
	}
	return t, nil
}

// Delete soft-deletes the task with the given id, or removes the record
// entirely when permanent is true. Both forms are no-ops when the id does
// not exist.
func (s *Service) Delete(id int64, permanent bool) error {
	if permanent {
		if err := s.tasks.Delete(id); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	}

	t, ok, err := s.tasks.Get(id)
	if err != nil {
		return fmt.Errorf("read task: %w", err)
	}
	if !ok {
		return nil
	}

	now := time.Now()
	t.Status = StatusDeleted
	t.DeletedAt = &now
	t.UpdatedAt = now
	// Delete overwrites status: a task is never both completed and deleted.
	t.CompletedAt = nil

	if err := s.tasks.Put(t); err != nil {
		return fmt.Errorf("write task: %w", err)
	}
	return nil
}

// Restore reverses a soft delete. It only acts when the task exists and
// is deleted; otherwise it reports ok=false without an error.
func (s *Service) Restore(id int64) (Task, bool, error) {
	t, ok, err := s.tasks.Get(id)
	if err != nil {
		return Task{}, false, fmt.Errorf("read task: %w", err)
	}
	if !ok || !t.Deleted() {
		return Task{}, false, nil
	}

	t.Status = StatusActive
	t.DeletedAt = nil
	t.UpdatedAt = time.Now()

	if err := s.tasks.Put(t); err != nil {
		return Task{}, false, fmt.Errorf("write task: %w", err)
	}
	return t, true, nil
}
