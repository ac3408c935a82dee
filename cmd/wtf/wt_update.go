package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/cmd"
	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

type updateOptions struct {
	merge    bool
	stash    bool
	noBackup bool
}

func runUpdate(ctx context.Context, st *repoState, args []string, opts updateOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	feature, err := resolveFeature(ctx, st, args)
	if err != nil {
		return err
	}
	up, err := requireUpstreamRemote(ctx, st)
	if err != nil {
		return err
	}

	base := st.cfg.Repo.BaseBranch
	baseRef := up.BaseRef(base)

	l.Printf("Fetching %s\n", up.Remote)
	if err := git.Fetch(ctx, st.root, up.Remote); err != nil {
		return err
	}

	ahead, behind, err := git.AheadBehind(ctx, st.root, feature.Branch, baseRef)
	if err != nil {
		if errors.Is(err, git.ErrNoMergeBase) {
			return fmt.Errorf("%s and %s share no history: was the branch created from %s?", feature.Branch, baseRef, base)
		}
		return err
	}
	if behind == 0 {
		out.Printf("%s %s is up to date with %s\n", styles.OK(), feature.Branch, baseRef)
		return nil
	}
	l.Printf("%s is %d commit(s) behind %s\n", feature.Branch, behind, baseRef)

	stashed := false
	if git.IsDirty(ctx, feature.Path) {
		if !opts.stash && !st.cfg.Sync.Autostash {
			return preconditionf("%s has uncommitted changes: commit or stash them, or rerun with --stash", feature.Path)
		}
		if err := git.Stash(ctx, feature.Path, "wtf wt-update autostash"); err != nil {
			return err
		}
		stashed = true
		l.Printf("Stashed uncommitted changes\n")
	}

	if ahead > 0 && st.cfg.Branch.Backup && !opts.noBackup {
		backup, err := git.CreateBackupBranch(ctx, st.root, feature.Branch)
		if err != nil {
			return err
		}
		l.Printf("Created backup branch %s\n", backup)
	}

	strategy := st.cfg.Sync.Strategy
	if opts.merge {
		strategy = "merge"
	}

	if strategy == "merge" {
		if err := git.Merge(ctx, feature.Path, baseRef); err != nil {
			return conflictError(feature, "merge", err, stashed)
		}
	} else {
		if err := git.Rebase(ctx, feature.Path, baseRef, false); err != nil {
			return conflictError(feature, "rebase", err, stashed)
		}
	}

	origin := st.cfg.Repo.OriginRemote
	if git.HasRemote(ctx, st.root, origin) {
		// A rebase rewrote the pushed history, so only a lease-guarded
		// force-push can update origin. A merge pushes plain.
		if strategy == "merge" {
			err = git.Push(ctx, st.root, origin, feature.Branch)
		} else {
			err = git.PushForceWithLease(ctx, st.root, origin, feature.Branch)
		}
		if err != nil {
			return err
		}
		l.Printf("Pushed %s to %s\n", feature.Branch, origin)
	}

	if stashed {
		if err := git.StashPop(ctx, feature.Path); err != nil {
			return fmt.Errorf("restoring stashed changes: %w\nResolve manually, your changes are in: git -C %s stash pop", err, feature.Path)
		}
		l.Printf("Restored stashed changes\n")
	}

	out.Printf("%s Updated %s onto %s\n", styles.OK(), feature.Branch, baseRef)
	return nil
}

// conflictError turns a failed rebase or merge into a report with git's own
// conflict output and the commands to continue or abort. Unexpected failures
// pass through untouched.
func conflictError(feature featureWorktree, op string, err error, stashed bool) error {
	var exitErr *cmd.ExitError
	if !errors.As(err, &exitErr) {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s stopped in %s:\n", op, feature.Path)
	if stderr := strings.TrimSpace(exitErr.Stderr); stderr != "" {
		b.WriteString(stderr)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Resolve the conflicts, then: git -C %s %s --continue\n", feature.Path, op)
	fmt.Fprintf(&b, "Or give up with:            git -C %s %s --abort", feature.Path, op)
	if stashed {
		fmt.Fprintf(&b, "\nYour uncommitted changes stay stashed: git -C %s stash pop when done", feature.Path)
	}
	return errors.New(b.String())
}
