package main

import (
	"github.com/spf13/cobra"

	"github.com/smorinlabs/worktreeflow/internal/doctor"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check your environment and repository setup",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Check everything the workflow depends on:

- git installed
- inside a git work tree
- origin remote present with a parseable URL
- fork owner resolvable
- upstream repository resolvable (remote or repo.upstream config)
- base branch exists
- forge CLI installed and authenticated
- working tree state

One line prints per check. Doctor never changes anything and exits non-zero
when a check fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return doctor.Run(ctx, effectiveConfig(ctx, workDir), workDir)
		},
	}

	return cmd
}
