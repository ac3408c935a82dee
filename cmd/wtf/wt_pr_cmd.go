package main

import (
	"github.com/spf13/cobra"
)

func newWtPRCmd() *cobra.Command {
	var opts prOptions

	cmd := &cobra.Command{
		Use:     "wt-pr [name]",
		Short:   "Open a pull request for the feature branch",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create a pull request against the upstream repository.

The branch is pushed to your fork first when origin is missing commits. An
existing PR for the branch is reported instead of creating a duplicate. The
title defaults to the last commit subject and the body lists the branch's
commits, rendered through the configured body template.`,
		Example: `  wtf wt-pr search-index
  wtf wt-pr search-index --draft
  wtf wt-pr search-index --title "Add search index" --web`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runPR(ctx, st, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.draft, "draft", false, "Create the PR as a draft")
	cmd.Flags().StringVar(&opts.title, "title", "", "PR title (default: last commit subject)")
	cmd.Flags().StringVar(&opts.base, "base", "", "Base branch of the PR (default from config)")
	cmd.Flags().BoolVar(&opts.web, "web", false, "Open the PR in the browser")
	cmd.Flags().BoolVar(&opts.copyURL, "copy", false, "Copy the PR URL to the clipboard")
	_ = cmd.RegisterFlagCompletionFunc("base", completeLocalBranches)

	return cmd
}
