package main

import (
	"github.com/spf13/cobra"
)

func newSyncRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync-remote",
		Short:   "Update the fork's base branch directly from upstream",
		GroupID: GroupSync,
		Args:    cobra.NoArgs,
		Long: `Push upstream's base branch straight to origin (git push origin
upstream/<base>:<base>) without touching the local checkout, useful when the
local base is checked out elsewhere or intentionally pinned.

Refuses when the local base branch holds commits missing from upstream, and
the push itself refuses when origin would not fast-forward.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runSyncRemote(ctx, st)
		},
	}

	return cmd
}
