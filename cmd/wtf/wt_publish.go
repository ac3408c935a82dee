package main

import (
	"context"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

func runPublish(ctx context.Context, st *repoState, args []string) error {
	out := output.FromContext(ctx)

	feature, err := resolveFeature(ctx, st, args)
	if err != nil {
		return err
	}
	origin := st.cfg.Repo.OriginRemote
	if err := requireRemote(ctx, st, origin); err != nil {
		return err
	}

	moved, err := pushFeatureBranch(ctx, st, feature.Branch)
	if err != nil {
		return err
	}
	if !moved {
		out.Printf("%s Nothing to push, %s is already up to date on %s\n", styles.OK(), feature.Branch, origin)
		return nil
	}

	out.Printf("%s Published %s to %s\n", styles.OK(), feature.Branch, origin)
	out.Printf("%s wtf wt-pr %s\n", styles.Arrow(), feature.Name)
	return nil
}

// pushFeatureBranch pushes a branch to origin with upstream tracking and
// reports whether the remote branch actually moved. The push runs
// unconditionally; comparing the remote-tracking ref before and after tells
// an up-to-date branch apart from a real push without parsing git's output.
func pushFeatureBranch(ctx context.Context, st *repoState, branch string) (bool, error) {
	origin := st.cfg.Repo.OriginRemote
	trackingRef := origin + "/" + branch

	before, _ := git.RevParse(ctx, st.root, trackingRef)
	if err := git.PushSetUpstream(ctx, st.root, origin, branch); err != nil {
		return false, err
	}
	after, _ := git.RevParse(ctx, st.root, trackingRef)

	return before == "" || before != after, nil
}

// ensurePublished pushes the branch when origin is missing commits, logging
// rather than printing so callers own the primary output.
func ensurePublished(ctx context.Context, st *repoState, branch string) error {
	l := log.FromContext(ctx)

	moved, err := pushFeatureBranch(ctx, st, branch)
	if err != nil {
		return err
	}
	if moved {
		l.Printf("Pushed %s to %s\n", branch, st.cfg.Repo.OriginRemote)
	}
	return nil
}
