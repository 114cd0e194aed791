package query

import (
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/task"
)

func TestStats(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tasks := []task.Task{
		{ID: 1, Status: task.StatusActive},
		{ID: 2, Status: task.StatusActive},
		{ID: 3, Status: task.StatusActive},
		{ID: 4, Status: task.StatusCompleted, CompletedAt: &now},
		{ID: 5, Status: task.StatusDeleted, DeletedAt: &now},
	}

	stats := Stats(tasks)

	// All excludes the soft-deleted task even though the record exists.
	if stats.All != 4 {
		t.Errorf("expected all=4, got %d", stats.All)
	}
	if stats.Active != 3 {
		t.Errorf("expected active=3, got %d", stats.Active)
	}
	if stats.Completed != 1 {
		t.Errorf("expected completed=1, got %d", stats.Completed)
	}
	if stats.Deleted != 1 {
		t.Errorf("expected deleted=1, got %d", stats.Deleted)
	}
}

func TestStats_Empty(t *testing.T) {
	stats := Stats(nil)
	if stats != (Statistics{}) {
		t.Errorf("expected zero statistics, got %+v", stats)
	}
}
