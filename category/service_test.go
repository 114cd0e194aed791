package category

import (
	"errors"
	"strings"
	"testing"

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

	created, err := svc.Create("work", "#112233")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.Name != "work" {
		t.Errorf("expected name 'work', got %q", created.Name)
	}
	if created.Color != "#112233" {
		t.Errorf("expected explicit color kept, got %q", created.Color)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at set")
	}
}

func TestService_Create_PicksPaletteColor(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("home", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found := false
	for _, color := range palette {
		if created.Color == color {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected color from palette, got %q", created.Color)
	}
	if !strings.HasPrefix(created.Color, "#") || len(created.Color) != 7 {
		t.Errorf("expected hex color, got %q", created.Color)
	}
}

func TestService_Create_TrimsName(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("  errands  ", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "errands" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
}

func TestService_Create_EmptyName(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create("   ", ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create("work", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create("work", ""); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create("temp", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	all, err := svc.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty collection, got %d records", len(all))
	}

	// Absent ids delete cleanly.
	if err := svc.Delete(created.ID); err != nil {
		t.Errorf("second delete should succeed, got %v", err)
	}
}
