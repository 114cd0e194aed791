package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/taskdeck/taskdeck/task"
)

// deadlineLayout is the date format used in the TOML frontmatter.
const deadlineLayout = "2006-01-02"

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task id (only for updates).
	ID int64
	// Title is the task title.
	Title string
	// Priority is the task priority (low, medium, high).
	Priority string
	// Category is the category name, or empty for none.
	Category string
	// Deadline is the deadline date as YYYY-MM-DD, or empty for none.
	Deadline string
	// Status is the task status (only for updates).
	Status string
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData with default values for creating a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		IsUpdate: false,
		Priority: string(task.PriorityMedium),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	data := TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Status:      string(t.Status),
		Description: t.Description,
	}
	if t.Deadline != nil {
		data.Deadline = t.Deadline.Format(deadlineLayout)
	}
	return data
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # low, medium, high
category = {{ printf "%q" .Category }}
deadline = {{ printf "%q" .Deadline }} # YYYY-MM-DD, empty for none
{{- if .IsUpdate }}
status = {{ printf "%q" .Status }} # active, completed, deleted
{{- end }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string  `toml:"title"`
	Priority    string  `toml:"priority"`
	Category    string  `toml:"category"`
	Deadline    string  `toml:"deadline"`
	Status      *string `toml:"status"`
	Description string
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimLeft(body, "\n")
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))
	parsed.Category = strings.TrimSpace(parsed.Category)
	parsed.Deadline = strings.TrimSpace(parsed.Deadline)
	if parsed.Status != nil {
		normalized := strings.ToLower(strings.TrimSpace(*parsed.Status))
		parsed.Status = &normalized
	}

	// Validate required fields
	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := task.ValidatePriority(task.Priority(parsed.Priority)); err != nil {
		return nil, fmt.Errorf("invalid priority %q: must be low, medium, or high", parsed.Priority)
	}
	if parsed.Deadline != "" {
		if _, err := time.ParseInLocation(deadlineLayout, parsed.Deadline, time.Local); err != nil {
			return nil, fmt.Errorf("invalid deadline %q: must be YYYY-MM-DD", parsed.Deadline)
		}
	}
	if parsed.Status != nil && !task.Status(*parsed.Status).IsValid() {
		return nil, fmt.Errorf("invalid status %q: must be %s", *parsed.Status, validStatusList())
	}

	return &parsed, nil
}

// DeadlineTime returns the parsed deadline, or nil when no deadline was set.
func (p *ParsedTask) DeadlineTime() *time.Time {
	if p.Deadline == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(deadlineLayout, p.Deadline, time.Local)
	if err != nil {
		return nil
	}
	return &parsed
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "td-task-*.md")
}

func validStatusList() string {
	valid := task.ValidStatuses()
	values := make([]string, 0, len(valid))
	for _, status := range valid {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}

// EditTask opens the editor for a task and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing task.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	var data TaskData
	if existing == nil {
		data = DefaultCreateData()
	} else {
		data = DataFromTask(existing)
	}
	return EditTaskWithData(data)
}

// EditTaskWithData opens the editor with pre-populated data and returns the parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}
