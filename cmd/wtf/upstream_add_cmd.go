package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

func newUpstreamAddCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "upstream-add <url-or-owner/repo>",
		Short:   "Add the upstream remote",
		GroupID: GroupSetup,
		Args:    cobra.ExactArgs(1),
		Long: `Add the upstream remote pointing at the original repository your fork came
from. Accepts a full remote URL or an owner/repo spec, which becomes a URL
on the configured forge host using SSH or HTTPS per configuration.`,
		Example: `  wtf upstream-add acme/widgets
  wtf upstream-add git@github.com:acme/widgets.git
  wtf upstream-add acme/widgets --force    # replace the existing remote`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadRepoState(ctx, workDir)
			if err != nil {
				return err
			}
			return runUpstreamAdd(ctx, st, args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace the remote if it already exists")

	return cmd
}

func runUpstreamAdd(ctx context.Context, st *repoState, arg string, force bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	remote := st.cfg.Repo.UpstreamRemote
	url, err := upstreamURLFromArg(arg, st.cfg.Forge.Host, st.cfg.Forge.SSH)
	if err != nil {
		return err
	}

	if git.HasRemote(ctx, st.root, remote) {
		existing, _ := git.GetRemoteURL(ctx, st.root, remote)
		if !force {
			return preconditionf("remote %q already exists (%s): rerun with --force to replace it", remote, existing)
		}
		if err := git.SetRemoteURL(ctx, st.root, remote, url); err != nil {
			return err
		}
		out.Printf("%s Replaced remote %s: %s\n", styles.OK(), remote, url)
	} else {
		if err := git.AddRemote(ctx, st.root, remote, url); err != nil {
			return err
		}
		out.Printf("%s Added remote %s: %s\n", styles.OK(), remote, url)
	}

	l.Printf("Fetching %s\n", remote)
	if err := git.Fetch(ctx, st.root, remote); err != nil {
		l.Printf("Warning: fetching %s: %v\n", remote, err)
	}
	return nil
}

// upstreamURLFromArg accepts a full remote URL or an owner/repo spec and
// returns the URL to add. Specs may carry extra segments for GitLab
// projects in nested groups.
func upstreamURLFromArg(arg, host string, ssh bool) (string, error) {
	if strings.Contains(arg, "://") || strings.Contains(arg, "@") {
		if _, err := git.ParseRemoteURL(arg); err != nil {
			return "", err
		}
		return arg, nil
	}

	parts := strings.Split(arg, "/")
	if len(parts) < 2 || slices.Contains(parts, "") {
		return "", fmt.Errorf("expected <owner>/<repo> or a remote URL, got %q", arg)
	}
	return git.BuildRemoteURL(host, arg, ssh), nil
}
