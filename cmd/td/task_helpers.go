package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/query"
	"github.com/taskdeck/taskdeck/task"
)

const deadlineLayout = "2006-01-02"

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

func parseIDArgs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDeadlineFlag parses a --deadline value. An empty string clears the
// deadline and returns nil.
func parseDeadlineFlag(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(deadlineLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: must be YYYY-MM-DD", value)
	}
	return &parsed, nil
}

func resolveDescriptionFlag(cmd *cobra.Command, description *string, reader io.Reader) error {
	if !cmd.Flags().Changed("description") {
		return nil
	}

	value, err := resolveDescriptionFromStdin(*description, reader)
	if err != nil {
		return err
	}
	*description = value
	return nil
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}

// resolveSortOption applies the precedence flag > config > created_desc.
func resolveSortOption(flagValue string, flagChanged bool, cfg *config.Config) (query.SortOption, error) {
	value := string(query.SortCreatedDesc)
	if cfg != nil && cfg.List.Sort != "" {
		value = cfg.List.Sort
	}
	if flagChanged {
		value = flagValue
	}

	option := query.SortOption(value)
	if !option.IsValid() {
		return "", fmt.Errorf("invalid sort option %q", value)
	}
	return option, nil
}

// resolveDefaultPriority returns the configured default priority for new
// tasks, or medium.
func resolveDefaultPriority(cfg *config.Config) (task.Priority, error) {
	if cfg == nil || cfg.List.Priority == "" {
		return task.PriorityMedium, nil
	}

	priority := task.Priority(cfg.List.Priority)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid priority %q in config", cfg.List.Priority)
	}
	return priority, nil
}
