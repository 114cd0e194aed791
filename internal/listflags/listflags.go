// Package listflags provides flags shared by the list-style commands.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds a shared --all flag that includes soft-deleted tasks.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("all", false, "Include deleted tasks")
		return
	}

	cmd.Flags().BoolVar(target, "all", false, "Include deleted tasks")
}

// AddJSONFlag adds a shared --json output flag.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("json", false, "Output as JSON")
		return
	}

	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}
