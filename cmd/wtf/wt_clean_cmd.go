package main

import (
	"github.com/spf13/cobra"
)

func newWtCleanCmd() *cobra.Command {
	var opts cleanOptions

	cmd := &cobra.Command{
		Use:     "wt-clean [name]",
		Short:   "Remove a feature worktree, branch, and remote branch",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove a finished feature: the worktree, the local branch, and the branch
on your fork, then prune stale worktree metadata.

A summary always prints first. Nothing is deleted without --confirm, and
wt-clean never prompts, so it is safe in scripts. Uncommitted changes or an
unmerged branch block the deletion unless --force is given.`,
		Example: `  wtf wt-clean search-index             # summary only
  wtf wt-clean search-index --confirm   # actually delete
  wtf wt-clean search-index --confirm --force`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runClean(ctx, st, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "Actually delete (required for any deletion)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Delete despite uncommitted changes or an unmerged branch")

	return cmd
}
