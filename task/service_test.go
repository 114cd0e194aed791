package task

import (
	"errors"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return NewService(store)
}

func TestService_Create(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Fix login bug", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.Status != StatusActive {
		t.Errorf("expected status 'active', got %q", created.Status)
	}
	if created.Priority != PriorityMedium {
		t.Errorf("expected priority 'medium', got %q", created.Priority)
	}
	if created.CompletedAt != nil {
		t.Error("expected nil completed_at")
	}
	if created.DeletedAt != nil {
		t.Error("expected nil deleted_at")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("expected created_at == updated_at, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestService_Create_TrimsFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("  Buy milk  ", CreateOptions{
		Description: "  2% if they have it  ",
		Category:    " groceries ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Title != "Buy milk" {
		t.Errorf("expected trimmed title 'Buy milk', got %q", created.Title)
	}
	if created.Description != "2% if they have it" {
		t.Errorf("expected trimmed description, got %q", created.Description)
	}
	if created.Category != "groceries" {
		t.Errorf("expected trimmed category, got %q", created.Category)
	}
}

func TestService_Create_EmptyTitle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create("   ", CreateOptions{})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestService_Create_InvalidPriority(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create("Valid title", CreateOptions{Priority: Priority("urgent")})
	if !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestService_Create_WithDeadline(t *testing.T) {
	svc := newTestService(t)

	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create("Ship release", CreateOptions{Deadline: &deadline})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Deadline == nil || !created.Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, created.Deadline)
	}
}

func TestService_ToggleComplete(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Write report", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed, err := svc.ToggleComplete(created)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Errorf("expected status 'completed', got %q", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}

	reverted, err := svc.ToggleComplete(completed)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if reverted.Status != created.Status {
		t.Errorf("expected status restored to %q, got %q", created.Status, reverted.Status)
	}
	if reverted.CompletedAt != nil {
		t.Error("expected completed_at cleared after second toggle")
	}
}

func TestService_ToggleComplete_DeletedTask(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Doomed", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(created.ID, false); err != nil {
		t.Fatalf("delete: %v", err)
	}

	deleted, ok, err := svc.Get(created.ID)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}

	if _, err := svc.ToggleComplete(deleted); !errors.Is(err, ErrTaskDeleted) {
		t.Errorf("expected ErrTaskDeleted, got %v", err)
	}
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Old title", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Title = "New title"
	created.Priority = PriorityHigh
	updated, err := svc.Update(created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "New title" {
		t.Errorf("expected new title, got %q", updated.Title)
	}
	if updated.UpdatedAt.Before(created.CreatedAt) {
		t.Error("expected updated_at refreshed")
	}

	stored, ok, err := svc.Get(created.ID)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if stored.Priority != PriorityHigh {
		t.Errorf("expected stored priority 'high', got %q", stored.Priority)
	}
}

func TestService_Update_InvalidRecord(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Consistent", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Completed status without a completed_at timestamp must not persist.
	created.Status = StatusCompleted
	if _, err := svc.Update(created); !errors.Is(err, ErrCompletedMissingCompletedAt) {
		t.Errorf("expected ErrCompletedMissingCompletedAt, got %v", err)
	}
}

func TestService_SoftDeleteAndRestore(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Recoverable", CreateOptions{Description: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(created.ID, false); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	deleted, ok, err := svc.Get(created.ID)
	if err != nil || !ok {
		t.Fatalf("get after delete: ok=%v err=%v", ok, err)
	}
	if deleted.Status != StatusDeleted || !deleted.Deleted() {
		t.Errorf("expected deleted status, got %q", deleted.Status)
	}
	if deleted.DeletedAt == nil {
		t.Error("expected deleted_at set")
	}

	restored, ok, err := svc.Restore(created.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !ok {
		t.Fatal("expected restore to act on deleted task")
	}
	if restored.Status != StatusActive || restored.Deleted() {
		t.Errorf("expected active status, got %q", restored.Status)
	}
	if restored.DeletedAt != nil {
		t.Error("expected deleted_at cleared")
	}
	if restored.Title != created.Title || restored.Description != created.Description {
		t.Error("expected other fields unchanged across delete/restore")
	}
}

func TestService_SoftDelete_ClearsCompletedAt(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Done then gone", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	completed, err := svc.ToggleComplete(created)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Delete(completed.ID, false); err != nil {
		t.Fatalf("delete: %v", err)
	}

	deleted, ok, err := svc.Get(created.ID)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if deleted.CompletedAt != nil {
		t.Error("expected completed_at cleared by soft delete")
	}
	if deleted.Status != StatusDeleted {
		t.Errorf("expected status 'deleted', got %q", deleted.Status)
	}
}

func TestService_SoftDelete_MissingID(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Delete(404, false); err != nil {
		t.Errorf("soft delete of missing id should be a no-op, got %v", err)
	}
}

func TestService_PermanentDelete(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Gone for good", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(created.ID, true); err != nil {
		t.Fatalf("permanent delete: %v", err)
	}

	_, ok, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected record removed")
	}

	// Idempotent: deleting again is fine.
	if err := svc.Delete(created.ID, true); err != nil {
		t.Errorf("second permanent delete should succeed, got %v", err)
	}
}

func TestService_Restore_NotDeleted(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Still active", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, ok, err := svc.Restore(created.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if ok {
		t.Error("expected restore of non-deleted task to report ok=false")
	}

	_, ok, err = svc.Restore(999)
	if err != nil {
		t.Fatalf("restore missing: %v", err)
	}
	if ok {
		t.Error("expected restore of missing id to report ok=false")
	}
}

func TestService_CompletedInvariant(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("Invariant check", CreateOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// status == completed exactly when completed_at is set, after any
	// sequence of create/toggle calls.
	current := created
	for i := 0; i < 3; i++ {
		current, err = svc.ToggleComplete(current)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		completed := current.Status == StatusCompleted
		hasTimestamp := current.CompletedAt != nil
		if completed != hasTimestamp {
			t.Errorf("toggle %d: status %q but completed_at set = %v", i, current.Status, hasTimestamp)
		}
	}
}
