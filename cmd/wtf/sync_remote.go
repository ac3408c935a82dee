package main

import (
	"context"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

func runSyncRemote(ctx context.Context, st *repoState) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	up, err := requireUpstreamRemote(ctx, st)
	if err != nil {
		return err
	}
	origin := st.cfg.Repo.OriginRemote
	if err := requireRemote(ctx, st, origin); err != nil {
		return err
	}

	base := st.cfg.Repo.BaseBranch
	baseRef := up.BaseRef(base)

	l.Printf("Fetching %s and %s\n", up.Remote, origin)
	if err := git.Fetch(ctx, st.root, up.Remote); err != nil {
		return err
	}
	if err := git.Fetch(ctx, st.root, origin); err != nil {
		return err
	}

	// Updating origin past a local base that holds unpublished commits
	// would strand them, so refuse.
	if git.LocalBranchExists(ctx, st.root, base) {
		ahead, _, err := git.AheadBehind(ctx, st.root, base, baseRef)
		if err != nil {
			return err
		}
		if ahead > 0 {
			return preconditionf("local %s has %d commit(s) missing from %s: push them upstream first, or discard them with wtf sync-main-force", base, ahead, baseRef)
		}
	}

	if err := git.PushRefspec(ctx, st.root, origin, baseRef+":"+base); err != nil {
		return err
	}
	out.Printf("%s Updated %s/%s from %s\n", styles.OK(), origin, base, baseRef)
	return nil
}
