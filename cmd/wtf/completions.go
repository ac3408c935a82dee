package main

import (
	"github.com/spf13/cobra"

	"github.com/smorinlabs/worktreeflow/internal/git"
)

// completeWorktreeNames offers the current feature worktree names for
// positional <name> arguments.
func completeWorktreeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	st, err := loadRepoState(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	features, err := listFeatureWorktrees(ctx, st)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(features))
	for _, f := range features {
		names = append(names, f.Name+"\t"+f.Branch)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeLocalBranches offers local branch names, for --base flags.
func completeLocalBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	root, err := repoMainRoot(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branches, err := git.ListLocalBranches(ctx, root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
