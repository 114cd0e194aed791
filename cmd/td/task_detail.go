package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/taskdeck/taskdeck/internal/markdown"
	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/query"
	"github.com/taskdeck/taskdeck/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, now time.Time) {
	fmt.Printf("ID:       %d\n", t.ID)
	fmt.Printf("Title:    %s\n", wrapDetailValue(t.Title))
	fmt.Printf("Status:   %s\n", t.Status)
	fmt.Printf("Priority: %s\n", t.Priority)

	if t.Category != "" {
		fmt.Printf("Category: %s\n", t.Category)
	}

	if t.Deadline != nil {
		classified := query.ClassifyDeadline(t.Deadline, now)
		value := fmt.Sprintf("%s (%s, %s)", ui.FormatDate(t.Deadline), classified, ui.FormatUntil(*t.Deadline, now))
		fmt.Printf("Deadline: %s\n", ui.StyleDeadline(classified, value))
	}

	fmt.Printf("Created:  %s\n", ui.FormatDateTime(t.CreatedAt))
	fmt.Printf("Updated:  %s\n", ui.FormatDateTime(t.UpdatedAt))

	if t.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", ui.FormatDateTime(*t.CompletedAt))
	}

	if t.DeletedAt != nil {
		fmt.Printf("Deleted:  %s\n", ui.FormatDateTime(*t.DeletedAt))
	}

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", formatTaskDescription(t.Description))
	}
}

func formatTaskDescription(value string) string {
	rendered := markdown.Render(taskDetailLineWidth, 2, value)
	if strings.TrimSpace(rendered) == "" {
		return "-"
	}
	return rendered
}

// wrapDetailValue keeps long single-line values within the detail width.
func wrapDetailValue(value string) string {
	if len(value) <= taskDetailLineWidth {
		return value
	}
	wrapped := wordwrap.String(value, taskDetailLineWidth)
	return strings.ReplaceAll(wrapped, "\n", "\n          ")
}
