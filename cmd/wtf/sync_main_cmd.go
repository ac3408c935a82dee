package main

import (
	"github.com/spf13/cobra"
)

func newSyncMainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync-main",
		Short:   "Fast-forward the base branch from upstream and push it to your fork",
		GroupID: GroupSync,
		Args:    cobra.NoArgs,
		Long: `Fetch upstream, fast-forward the local base branch to upstream's, and push
it to origin so the fork keeps up.

Local commits on the base branch make this a non-fast-forward, which
sync-main refuses; wtf sync-main-force discards them instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runSyncMain(ctx, st)
		},
	}

	return cmd
}
