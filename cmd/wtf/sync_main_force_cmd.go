package main

import (
	"github.com/spf13/cobra"
)

func newSyncMainForceCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:     "sync-main-force",
		Short:   "Reset the base branch hard to upstream and force-push",
		GroupID: GroupSync,
		Args:    cobra.NoArgs,
		Long: `Reset the local base branch hard to upstream's and force-push it to
origin, for when the base diverged and its local commits should go.

The old tip is kept on a timestamped backup branch. Requires --confirm; on
an interactive terminal a yes/no prompt substitutes for the missing flag,
otherwise the command fails before touching anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runSyncMainForce(ctx, st, confirm)
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Skip the confirmation prompt")

	return cmd
}
