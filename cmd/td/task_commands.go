package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/editor"
	"github.com/taskdeck/taskdeck/internal/listflags"
	"github.com/taskdeck/taskdeck/query"
	"github.com/taskdeck/taskdeck/task"
)

// td add
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no title or flags are provided. Use --no-edit
to skip the editor, or --edit to force opening the editor even when not interactive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addPriority    string
	addCategory    string
	addDeadline    string
	addEdit        bool
	addNoEdit      bool
)

// td list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listStatus   string
	listPriority string
	listCategory string
	listSearch   string
	listSort     string
	listJSON     bool
	listAll      bool
)

// td show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// td edit
var editCmd = &cobra.Command{
	Use:   "edit <id>...",
	Short: "Edit one or more tasks",
	Long: `Edit one or more tasks.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no edit flags are provided (one editor session per id).
Use --no-edit to skip the editor, or --edit to force opening the editor even when not interactive.`,
	Aliases: []string{
		"update",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editDescription string
	editPriority    string
	editCategory    string
	editDeadline    string
	editStatus      string
	editEdit        bool
	editNoEdit      bool
)

// td done
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Toggle completion for one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

// td rm
var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete one or more tasks",
	Long: `Delete one or more tasks.

Deletion is soft by default: the task is hidden from listings but kept on
disk and can be brought back with td restore. Use --permanent to remove
the record entirely.`,
	Aliases: []string{
		"delete",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runRm,
}

var rmPermanent bool

// td restore
var restoreCmd = &cobra.Command{
	Use:   "restore <id>...",
	Short: "Restore one or more soft-deleted tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRestore,
}

// td stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts by status",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, editCmd, doneCmd, rmCmd, restoreCmd, statsCmd)
	addDescriptionFlagAliases(addCmd, editCmd)

	// add flags
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category name")
	addCmd.Flags().StringVar(&addDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no title or flags)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	// list flags
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (active, completed, deleted, all)")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority (low, medium, high)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category name")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by title or description substring")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order (for example created_desc, deadline_asc)")
	listflags.AddJSONFlag(listCmd, &listJSON)
	listflags.AddAllFlag(listCmd, &listAll)

	// show flags
	listflags.AddJSONFlag(showCmd, &showJSON)

	// edit flags
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (low, medium, high)")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category name (empty to clear)")
	editCmd.Flags().StringVar(&editDeadline, "deadline", "", "New deadline (YYYY-MM-DD, empty to clear)")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status (active, completed, deleted)")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")

	// rm flags
	rmCmd.Flags().BoolVar(&rmPermanent, "permanent", false, "Remove the record entirely instead of soft-deleting")

	// stats flags
	listflags.AddJSONFlag(statsCmd, &statsJSON)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := resolveDescriptionFlag(cmd, &addDescription, os.Stdin); err != nil {
		return err
	}

	svc, cfg, err := openTaskService()
	if err != nil {
		return err
	}

	defaultPriority, err := resolveDefaultPriority(cfg)
	if err != nil {
		return err
	}

	hasTitle := len(args) > 0
	hasAddFlags := hasTitle || hasChangedFlags(cmd, "description", "priority", "category", "deadline")
	useEditor := shouldUseEditor(hasAddFlags, addEdit, addNoEdit, editor.IsInteractive())

	if useEditor {
		data := editor.DefaultCreateData()
		data.Priority = string(defaultPriority)
		if hasTitle {
			data.Title = args[0]
		}
		if cmd.Flags().Changed("description") {
			data.Description = addDescription
		}
		if cmd.Flags().Changed("priority") {
			data.Priority = addPriority
		}
		if cmd.Flags().Changed("category") {
			data.Category = addCategory
		}
		if cmd.Flags().Changed("deadline") {
			data.Deadline = addDeadline
		}

		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}

		created, err := svc.Create(parsed.Title, task.CreateOptions{
			Description: parsed.Description,
			Deadline:    parsed.DeadlineTime(),
			Priority:    task.Priority(parsed.Priority),
			Category:    parsed.Category,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created task %d: %s\n", created.ID, created.Title)
		return nil
	}

	// Non-editor path: title is required
	if !hasTitle {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	deadline, err := parseDeadlineFlag(addDeadline)
	if err != nil {
		return err
	}

	priority := defaultPriority
	if cmd.Flags().Changed("priority") {
		priority = task.Priority(addPriority)
	}

	created, err := svc.Create(args[0], task.CreateOptions{
		Description: addDescription,
		Deadline:    deadline,
		Priority:    priority,
		Category:    addCategory,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created task %d: %s\n", created.ID, created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	svc, cfg, err := openTaskService()
	if err != nil {
		return err
	}

	option, err := resolveSortOption(listSort, cmd.Flags().Changed("sort"), cfg)
	if err != nil {
		return err
	}

	if listStatus != "" && listStatus != query.FilterAll && !task.Status(listStatus).IsValid() {
		return fmt.Errorf("invalid status %q", listStatus)
	}
	if listPriority != "" && !task.Priority(listPriority).IsValid() {
		return fmt.Errorf("invalid priority %q", listPriority)
	}

	tasks, err := svc.All()
	if err != nil {
		return err
	}

	filters := query.Filters{
		Status:   listStatus,
		Priority: listPriority,
		Category: listCategory,
		Search:   listSearch,
	}
	visible := query.Filter(tasks, filters)

	// --all additionally reveals soft-deleted tasks, which the default
	// listing hides.
	if listAll && !cmd.Flags().Changed("status") {
		deletedFilters := filters
		deletedFilters.Status = string(task.StatusDeleted)
		visible = append(visible, query.Filter(tasks, deletedFilters)...)
	}

	sorted := query.Sort(visible, option)

	if listJSON {
		return encodeJSONToStdout(sorted)
	}

	printTaskTable(sorted, time.Now())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	svc, _, err := openTaskService()
	if err != nil {
		return err
	}

	tasks := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		found, ok, err := svc.Get(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("task %d not found", id)
		}
		tasks = append(tasks, found)
	}

	if showJSON {
		return encodeJSONToStdout(tasks)
	}

	now := time.Now()
	for i, t := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(t, now)
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	if err := resolveDescriptionFlag(cmd, &editDescription, os.Stdin); err != nil {
		return err
	}

	svc, _, err := openTaskService()
	if err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, "title", "description", "priority", "category", "deadline", "status")
	useEditor := shouldUseEditor(hasFlags, editEdit, editNoEdit, editor.IsInteractive())

	if !useEditor && !hasFlags {
		return fmt.Errorf("at least one edit flag is required (use --edit to open editor)")
	}

	for _, id := range ids {
		existing, ok, err := svc.Get(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("task %d not found", id)
		}

		if useEditor {
			// Pre-populate from the existing task, then override with
			// any flags.
			data := editor.DataFromTask(&existing)
			if cmd.Flags().Changed("title") {
				data.Title = editTitle
			}
			if cmd.Flags().Changed("description") {
				data.Description = editDescription
			}
			if cmd.Flags().Changed("priority") {
				data.Priority = editPriority
			}
			if cmd.Flags().Changed("category") {
				data.Category = editCategory
			}
			if cmd.Flags().Changed("deadline") {
				data.Deadline = editDeadline
			}
			if cmd.Flags().Changed("status") {
				data.Status = editStatus
			}

			parsed, err := editor.EditTaskWithData(data)
			if err != nil {
				return err
			}

			existing.Title = parsed.Title
			existing.Description = parsed.Description
			existing.Priority = task.Priority(parsed.Priority)
			existing.Category = parsed.Category
			existing.Deadline = parsed.DeadlineTime()
			if parsed.Status != nil {
				setTaskStatus(&existing, task.Status(*parsed.Status), time.Now())
			}
		} else {
			if cmd.Flags().Changed("title") {
				existing.Title = editTitle
			}
			if cmd.Flags().Changed("description") {
				existing.Description = editDescription
			}
			if cmd.Flags().Changed("priority") {
				existing.Priority = task.Priority(editPriority)
			}
			if cmd.Flags().Changed("category") {
				existing.Category = editCategory
			}
			if cmd.Flags().Changed("deadline") {
				deadline, err := parseDeadlineFlag(editDeadline)
				if err != nil {
					return err
				}
				existing.Deadline = deadline
			}
			if cmd.Flags().Changed("status") {
				status := task.Status(editStatus)
				if !status.IsValid() {
					return fmt.Errorf("invalid status %q", editStatus)
				}
				setTaskStatus(&existing, status, time.Now())
			}
		}

		updated, err := svc.Update(existing)
		if err != nil {
			return err
		}
		fmt.Printf("Updated task %d: %s\n", updated.ID, updated.Title)
	}
	return nil
}

// setTaskStatus moves a task to the given status, keeping the
// status/timestamp pairing consistent.
func setTaskStatus(t *task.Task, status task.Status, now time.Time) {
	if t.Status == status {
		return
	}

	t.Status = status
	switch status {
	case task.StatusActive:
		t.CompletedAt = nil
		t.DeletedAt = nil
	case task.StatusCompleted:
		t.CompletedAt = &now
		t.DeletedAt = nil
	case task.StatusDeleted:
		t.CompletedAt = nil
		t.DeletedAt = &now
	}
}

func runDone(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	svc, _, err := openTaskService()
	if err != nil {
		return err
	}

	for _, id := range ids {
		existing, ok, err := svc.Get(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("task %d not found", id)
		}

		toggled, err := svc.ToggleComplete(existing)
		if err != nil {
			return err
		}

		verb := "Completed"
		if toggled.Status == task.StatusActive {
			verb = "Reopened"
		}
		fmt.Printf("%s task %d: %s\n", verb, toggled.ID, toggled.Title)
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	svc, _, err := openTaskService()
	if err != nil {
		return err
	}

	for _, id := range ids {
		existing, ok, err := svc.Get(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("task %d not found", id)
		}

		if err := svc.Delete(id, rmPermanent); err != nil {
			return err
		}

		verb := "Deleted"
		if rmPermanent {
			verb = "Permanently deleted"
		}
		fmt.Printf("%s task %d: %s\n", verb, id, existing.Title)
	}
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	svc, _, err := openTaskService()
	if err != nil {
		return err
	}

	for _, id := range ids {
		restored, ok, err := svc.Restore(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("task %d is not deleted", id)
		}
		fmt.Printf("Restored task %d: %s\n", restored.ID, restored.Title)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	svc, _, err := openTaskService()
	if err != nil {
		return err
	}

	tasks, err := svc.All()
	if err != nil {
		return err
	}

	stats := query.Stats(tasks)
	if statsJSON {
		return encodeJSONToStdout(stats)
	}

	fmt.Printf("All:       %d\n", stats.All)
	fmt.Printf("Active:    %d\n", stats.Active)
	fmt.Printf("Completed: %d\n", stats.Completed)
	fmt.Printf("Deleted:   %d\n", stats.Deleted)
	return nil
}
