package main

import (
	"github.com/spf13/cobra"
)

func newWtStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wt-status [name]",
		Short:   "Show how a feature branch relates to base, origin, and its PR",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Report the state of a feature branch: ahead/behind the upstream base,
unpushed commits, working tree changes, the PR and its state, recent
commits, and suggested next commands.

Run inside a feature worktree, the name can be omitted. Both remotes are
fetched first so the counts are current; fetch failures degrade to warnings.`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runStatus(ctx, st, args)
		},
	}

	return cmd
}
