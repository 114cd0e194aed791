package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/category"
	"github.com/taskdeck/taskdeck/internal/listflags"
	"github.com/taskdeck/taskdeck/internal/ui"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage task categories",
}

// td category add
var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryAddColor string

// td category list
var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

var categoryListJSON bool

// td category rm
var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete one or more categories",
	Long: `Delete one or more categories.

Tasks referencing a deleted category keep their label; the category is
only removed from the category list.`,
	Aliases: []string{
		"delete",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runCategoryRm,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd, categoryRmCmd)

	categoryAddCmd.Flags().StringVar(&categoryAddColor, "color", "", "Hex color (picked from the palette when omitted)")
	listflags.AddJSONFlag(categoryListCmd, &categoryListJSON)
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	svc, err := openCategoryService()
	if err != nil {
		return err
	}

	created, err := svc.Create(args[0], categoryAddColor)
	if err != nil {
		return err
	}

	fmt.Printf("Created category %d: %s (%s)\n", created.ID, created.Name, created.Color)
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	svc, err := openCategoryService()
	if err != nil {
		return err
	}

	categories, err := svc.All()
	if err != nil {
		return err
	}

	if categoryListJSON {
		return encodeJSONToStdout(categories)
	}

	printCategoryTable(categories)
	return nil
}

func runCategoryRm(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	svc, err := openCategoryService()
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := svc.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Deleted category %d\n", id)
	}
	return nil
}

// printCategoryTable prints categories in a table format.
func printCategoryTable(categories []category.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}

	fmt.Print(formatCategoryTable(categories))
}

func formatCategoryTable(categories []category.Category) string {
	builder := ui.NewTableBuilder([]string{"ID", "NAME", "COLOR", "CREATED"}, len(categories))

	for _, c := range categories {
		row := []string{
			strconv.FormatInt(c.ID, 10),
			ui.TruncateTableCell(c.Name),
			c.Color,
			ui.FormatDate(&c.CreatedAt),
		}
		builder.AddRow(row)
	}

	return builder.String()
}
