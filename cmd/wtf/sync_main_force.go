package main

import (
	"context"
	"fmt"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui"
	"github.com/smorinlabs/worktreeflow/internal/ui/prompt"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

func runSyncMainForce(ctx context.Context, st *repoState, confirmed bool) error {
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

	if !confirmed {
		if !ui.Interactive() {
			return preconditionf("sync-main-force discards local %s commits: rerun with --confirm", base)
		}
		ok, err := prompt.Confirm(fmt.Sprintf("Reset %s to %s and force-push to %s?", base, baseRef, origin))
		if err != nil {
			return err
		}
		if !ok {
			out.Println("Aborted")
			return nil
		}
	}

	if git.IsDirty(ctx, st.root) {
		return preconditionf("the main worktree has uncommitted changes, a hard reset would destroy them: commit or stash first")
	}

	l.Printf("Fetching %s\n", up.Remote)
	if err := git.Fetch(ctx, st.root, up.Remote); err != nil {
		return err
	}

	backup, err := git.CreateBackupBranch(ctx, st.root, base)
	if err != nil {
		return err
	}
	out.Printf("%s Backed up %s as %s\n", styles.OK(), base, backup)

	current, err := git.GetCurrentBranch(ctx, st.root)
	if err != nil {
		return err
	}
	if current != base {
		if err := git.Checkout(ctx, st.root, base); err != nil {
			return err
		}
	}
	if err := git.ResetHard(ctx, st.root, baseRef); err != nil {
		return err
	}
	out.Printf("%s Reset %s to %s\n", styles.OK(), base, baseRef)

	if err := git.PushForceWithLease(ctx, st.root, origin, base); err != nil {
		return err
	}
	out.Printf("%s Force-pushed %s to %s\n", styles.OK(), base, origin)
	return nil
}
