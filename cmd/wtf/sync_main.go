package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

func runSyncMain(ctx context.Context, st *repoState) error {
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

	l.Printf("Fetching %s\n", up.Remote)
	if err := git.Fetch(ctx, st.root, up.Remote); err != nil {
		return err
	}

	ahead, behind, err := git.AheadBehind(ctx, st.root, base, baseRef)
	if err != nil {
		if errors.Is(err, git.ErrNoMergeBase) {
			return fmt.Errorf("%s and %s share no history: is %q the right upstream?", base, baseRef, up.Spec)
		}
		return err
	}
	if ahead > 0 {
		return preconditionf("local %s has %d commit(s) not on %s, not a fast-forward: push them upstream or discard them with wtf sync-main-force", base, ahead, baseRef)
	}

	if behind == 0 {
		out.Printf("%s %s is up to date with %s\n", styles.OK(), base, baseRef)
	} else {
		if err := fastForwardBase(ctx, st, base, baseRef); err != nil {
			return err
		}
		out.Printf("%s Fast-forwarded %s to %s (%d commit(s))\n", styles.OK(), base, baseRef, behind)
	}

	if err := git.Push(ctx, st.root, origin, base); err != nil {
		return err
	}
	out.Printf("%s Pushed %s to %s\n", styles.OK(), base, origin)
	return nil
}

// fastForwardBase moves the local base branch to baseRef. The base checked
// out in the main worktree gets a fast-forward merge so the working tree
// follows; otherwise the branch ref is updated in place without touching
// any checkout.
func fastForwardBase(ctx context.Context, st *repoState, base, baseRef string) error {
	current, err := git.GetCurrentBranch(ctx, st.root)
	if err == nil && current == base {
		return git.MergeFFOnly(ctx, st.root, baseRef)
	}
	return git.FastForwardBranch(ctx, st.root, base, baseRef)
}
