package main

import (
	"fmt"
	"strconv"
	"time"

	internalstrings "github.com/taskdeck/taskdeck/internal/strings"
	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/query"
	"github.com/taskdeck/taskdeck/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, now))
}

func formatTaskTable(tasks []task.Task, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "PRI", "CATEGORY", "DEADLINE", "AGE", "TITLE"}, len(tasks))

	for _, t := range tasks {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			ui.StyleStatus(t.Status, string(t.Status)),
			ui.StylePriority(t.Priority, string(t.Priority)),
			formatTaskCategory(t),
			formatTaskDeadline(t, now),
			ui.FormatTimeAgo(t.CreatedAt, now),
			ui.StyleStatus(t.Status, ui.TruncateTableCell(internalstrings.NormalizeWhitespace(t.Title))),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func formatTaskCategory(t task.Task) string {
	if t.Category == "" {
		return "-"
	}
	return ui.TruncateTableCell(t.Category)
}

func formatTaskDeadline(t task.Task, now time.Time) string {
	if t.Deadline == nil {
		return "-"
	}
	classified := query.ClassifyDeadline(t.Deadline, now)
	return ui.StyleDeadline(classified, ui.FormatDate(t.Deadline))
}
