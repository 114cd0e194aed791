package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/task"
)

func TestRenderTaskTOML_Create(t *testing.T) {
	data := DefaultCreateData()
	content, err := RenderTaskTOML(data)
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	if !strings.Contains(content, `title = ""`) {
		t.Error("expected empty title")
	}
	if !strings.Contains(content, `priority = "medium"`) {
		t.Error("expected default priority medium")
	}
	if !strings.Contains(content, `deadline = ""`) {
		t.Error("expected empty deadline")
	}
	if !strings.Contains(content, "---") {
		t.Error("expected frontmatter separator")
	}

	// Should not have status field for create
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "status = ") {
			t.Error("status should not be present for create")
		}
	}
}

func TestRenderTaskTOML_Update(t *testing.T) {
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	existing := &task.Task{
		ID:          7,
		Title:       "Write report",
		Priority:    task.PriorityHigh,
		Category:    "work",
		Deadline:    &deadline,
		Status:      task.StatusActive,
		Description: "Quarterly numbers",
	}

	content, err := RenderTaskTOML(DataFromTask(existing))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	if !strings.Contains(content, `title = "Write report"`) {
		t.Error("expected title to be set")
	}
	if !strings.Contains(content, `priority = "high"`) {
		t.Error("expected priority high")
	}
	if !strings.Contains(content, `category = "work"`) {
		t.Error("expected category work")
	}
	if !strings.Contains(content, `deadline = "2026-03-15"`) {
		t.Error("expected formatted deadline")
	}
	if !strings.Contains(content, `status = "active"`) {
		t.Error("expected status active")
	}
	if !strings.Contains(content, "Quarterly numbers") {
		t.Error("expected description in body")
	}
}

func TestParseTaskTOML_RoundTrip(t *testing.T) {
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	existing := &task.Task{
		ID:          7,
		Title:       "Write report",
		Priority:    task.PriorityHigh,
		Category:    "work",
		Deadline:    &deadline,
		Status:      task.StatusActive,
		Description: "Quarterly numbers",
	}

	content, err := RenderTaskTOML(DataFromTask(existing))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Title != existing.Title {
		t.Errorf("title = %q, want %q", parsed.Title, existing.Title)
	}
	if parsed.Priority != "high" {
		t.Errorf("priority = %q, want high", parsed.Priority)
	}
	if parsed.Category != "work" {
		t.Errorf("category = %q, want work", parsed.Category)
	}
	if parsed.Status == nil || *parsed.Status != "active" {
		t.Errorf("status = %v, want active", parsed.Status)
	}
	if !strings.Contains(parsed.Description, "Quarterly numbers") {
		t.Errorf("description = %q, missing body", parsed.Description)
	}
	got := parsed.DeadlineTime()
	if got == nil || !got.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", got, deadline)
	}
}

func TestParseTaskTOML_EmptyTitle(t *testing.T) {
	content := "title = \"\"\npriority = \"medium\"\ncategory = \"\"\ndeadline = \"\"\n---\n"
	if _, err := ParseTaskTOML(content); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestParseTaskTOML_InvalidPriority(t *testing.T) {
	content := "title = \"x\"\npriority = \"urgent\"\ncategory = \"\"\ndeadline = \"\"\n---\n"
	if _, err := ParseTaskTOML(content); err == nil {
		t.Fatal("expected error for invalid priority")
	}
}

func TestParseTaskTOML_InvalidDeadline(t *testing.T) {
	content := "title = \"x\"\npriority = \"low\"\ncategory = \"\"\ndeadline = \"next week\"\n---\n"
	if _, err := ParseTaskTOML(content); err == nil {
		t.Fatal("expected error for invalid deadline")
	}
}

func TestParseTaskTOML_InvalidStatus(t *testing.T) {
	content := "title = \"x\"\npriority = \"low\"\ncategory = \"\"\ndeadline = \"\"\nstatus = \"done\"\n---\n"
	if _, err := ParseTaskTOML(content); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestParseTaskTOML_NoSeparator(t *testing.T) {
	content := "title = \"x\"\npriority = \"low\"\ncategory = \"\"\ndeadline = \"\"\n"
	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Description != "" {
		t.Errorf("description = %q, want empty", parsed.Description)
	}
}
