package task

import "testing"

func TestStatus_IsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if Status("archived").IsValid() {
		t.Error("expected 'archived' to be invalid")
	}
}

func TestPriority_Rank(t *testing.T) {
	if PriorityHigh.Rank() <= PriorityMedium.Rank() {
		t.Error("expected high to rank above medium")
	}
	if PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Error("expected medium to rank above low")
	}
	if Priority("bogus").Rank() >= PriorityLow.Rank() {
		t.Error("expected unknown priority to rank below low")
	}
}

func TestValidate_Consistency(t *testing.T) {
	base := Task{Title: "t", Priority: PriorityMedium, Status: StatusActive}

	if err := Validate(&base); err != nil {
		t.Errorf("expected valid task, got %v", err)
	}

	completed := base
	completed.Status = StatusCompleted
	if err := Validate(&completed); err != ErrCompletedMissingCompletedAt {
		t.Errorf("expected ErrCompletedMissingCompletedAt, got %v", err)
	}

	deleted := base
	deleted.Status = StatusDeleted
	if err := Validate(&deleted); err != ErrDeletedMissingDeletedAt {
		t.Errorf("expected ErrDeletedMissingDeletedAt, got %v", err)
	}
}
