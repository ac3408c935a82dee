package main

import (
	"github.com/spf13/cobra"
)

func newWtUpdateCmd() *cobra.Command {
	var opts updateOptions

	cmd := &cobra.Command{
		Use:     "wt-update [name]",
		Short:   "Rebase the feature branch onto the updated base",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Fetch upstream and rebase the feature branch onto the updated base branch.

With --merge (or sync.strategy = "merge") the base is merged into the branch
instead. Local commits are backed up to a timestamped branch first, and the
result is pushed to origin: force-with-lease after a rebase, plain after a
merge. A dirty worktree stops the update unless --stash or sync.autostash
tucks the changes away and restores them afterwards.

On conflicts the worktree is left mid-rebase (or mid-merge) with
instructions; nothing is pushed.`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runUpdate(ctx, st, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.merge, "merge", false, "Merge the base into the branch instead of rebasing")
	cmd.Flags().BoolVar(&opts.stash, "stash", false, "Stash uncommitted changes and restore them after")
	cmd.Flags().BoolVar(&opts.noBackup, "no-backup", false, "Skip the backup branch")

	return cmd
}
