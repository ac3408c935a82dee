package main

import (
	"github.com/spf13/cobra"
)

func newForkSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fork-setup",
		Short:   "Turn a clone of the upstream repository into the fork layout",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Rewire a plain clone of the upstream repository for the fork workflow:
the existing origin remote is renamed to upstream, and your fork is added
as origin. Your username comes from the authenticated forge CLI, and the
fork URL uses SSH or HTTPS per configuration.

The fork itself must already exist on the forge.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runForkSetup(ctx, st)
		},
	}

	return cmd
}
