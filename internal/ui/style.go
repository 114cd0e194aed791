package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/taskdeck/taskdeck/query"
	"github.com/taskdeck/taskdeck/task"
)

var (
	styleCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	styleDeleted   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)

	styleHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	styleOverdue  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleToday    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleTomorrow = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ANSIEnabled reports whether styled output should be produced.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StyleStatus styles a status label for table output.
func StyleStatus(status task.Status, value string) string {
	if !ANSIEnabled() {
		return value
	}
	switch status {
	case task.StatusCompleted:
		return styleCompleted.Render(value)
	case task.StatusDeleted:
		return styleDeleted.Render(value)
	default:
		return value
	}
}

// StylePriority styles a priority label for table output.
func StylePriority(priority task.Priority, value string) string {
	if !ANSIEnabled() {
		return value
	}
	switch priority {
	case task.PriorityHigh:
		return styleHigh.Render(value)
	case task.PriorityLow:
		return styleLow.Render(value)
	default:
		return value
	}
}

// StyleDeadline styles a deadline cell by its classification.
func StyleDeadline(status query.DeadlineStatus, value string) string {
	if !ANSIEnabled() {
		return value
	}
	switch status {
	case query.DeadlineOverdue:
		return styleOverdue.Render(value)
	case query.DeadlineToday:
		return styleToday.Render(value)
	case query.DeadlineTomorrow:
		return styleTomorrow.Render(value)
	default:
		return value
	}
}
