package main

import (
	"github.com/spf13/cobra"
)

func newWtListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "wt-list",
		Short:   "List feature worktrees",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the repository's feature worktrees with their branch, status against
the base, last commit, and path. A "*" marks a dirty working tree.

--json prints the same data as a JSON array for scripting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runList(ctx, st, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
