package main

import (
	"github.com/spf13/cobra"
)

func newWtNewCmd() *cobra.Command {
	var (
		base     string
		noSync   bool
		copyPath bool
	)

	cmd := &cobra.Command{
		Use:     "wt-new <name>",
		Short:   "Create a feature worktree and branch",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree for a new feature branch.

The branch is named by prepending the configured prefix to <name> and starts
from the base branch, which is fast-forwarded to upstream first unless
--no-sync is given. Git-ignored files matching the preserve patterns are
copied into the new worktree, then post-create hooks run inside it.

Rerunning wt-new for an existing feature reuses the branch and worktree.`,
		Example: `  wtf wt-new search-index                      # branch feat/search-index
  wtf wt-new hotfix --base release-1.2 --no-sync
  wtf wt-new search-index --copy               # path goes to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runNew(ctx, st, args[0], newOptions{base: base, noSync: noSync, copyPath: copyPath})
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base branch to start from (default from config)")
	cmd.Flags().BoolVar(&noSync, "no-sync", false, "Skip syncing the base branch first")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the worktree path to the clipboard")
	_ = cmd.RegisterFlagCompletionFunc("base", completeLocalBranches)

	return cmd
}
