package main

import (
	"github.com/spf13/cobra"
)

func newWtPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wt-publish [name]",
		Short:   "Push the feature branch to your fork",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Push the feature branch to origin with upstream tracking.

A branch already up to date on origin reports "nothing to push"; a rejected
push (for example after a rebase on another machine) surfaces git's error.`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runPublish(ctx, st, args)
		},
	}

	return cmd
}
