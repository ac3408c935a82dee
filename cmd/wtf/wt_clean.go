package main

import (
	"context"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

type cleanOptions struct {
	confirm bool
	force   bool
}

func runClean(ctx context.Context, st *repoState, args []string, opts cleanOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	feature, err := resolveFeature(ctx, st, args)
	if err != nil {
		return err
	}

	origin := st.cfg.Repo.OriginRemote
	base := st.cfg.Repo.BaseBranch

	// Merged-ness is judged against the upstream base when its ref is
	// around, the local base otherwise.
	baseRef := base
	if up, err := resolveUpstream(ctx, st); err == nil {
		if r := up.BaseRef(base); git.RefExists(ctx, st.root, r) {
			baseRef = r
		}
	}

	status, statusErr := git.GetStatus(ctx, feature.Path)
	merged, mergedErr := git.IsAncestor(ctx, st.root, feature.Branch, baseRef)

	hasOrigin := git.HasRemote(ctx, st.root, origin)
	remoteExists := false
	remoteKnown := false
	if hasOrigin {
		if exists, err := git.RemoteBranchExists(ctx, st.root, origin, feature.Branch); err == nil {
			remoteExists = exists
			remoteKnown = true
		} else {
			l.Printf("Warning: checking %s for %s: %v\n", origin, feature.Branch, err)
		}
	}

	out.Printf("Branch:        %s\n", feature.Branch)
	out.Printf("Worktree:      %s\n", feature.Path)
	switch {
	case statusErr != nil:
		out.Printf("Working tree:  unknown (%v)\n", statusErr)
	case status.Clean():
		out.Printf("Working tree:  clean\n")
	default:
		out.Printf("Working tree:  %s\n", status.Summary())
	}
	switch {
	case mergedErr != nil:
		out.Printf("Merged:        unknown\n")
	case merged:
		out.Printf("Merged:        yes, into %s\n", baseRef)
	default:
		out.Printf("Merged:        %s into %s\n", styles.Warn()+" not merged", baseRef)
	}
	switch {
	case !hasOrigin:
		out.Printf("Remote branch: no %s remote\n", origin)
	case !remoteKnown:
		out.Printf("Remote branch: unknown\n")
	case remoteExists:
		out.Printf("Remote branch: %s/%s\n", origin, feature.Branch)
	default:
		out.Printf("Remote branch: none\n")
	}

	if !opts.confirm {
		out.Printf("\nRun again with --confirm to delete\n")
		return nil
	}

	if inside(workDir, feature.Path) {
		return preconditionf("the current directory is inside %s: cd out of the worktree first", feature.Path)
	}
	if statusErr == nil && !status.Clean() && !opts.force {
		return preconditionf("%s has uncommitted changes (%s): commit or discard them, or rerun with --force", feature.Path, status.Summary())
	}
	if mergedErr == nil && !merged && !opts.force {
		return preconditionf("%s is not merged into %s: merge it first or rerun with --force", feature.Branch, baseRef)
	}

	if err := git.RemoveWorktree(ctx, st.root, feature.Path, opts.force); err != nil {
		return err
	}
	out.Printf("%s Removed worktree %s\n", styles.OK(), feature.Path)

	if git.LocalBranchExists(ctx, st.root, feature.Branch) {
		if err := git.DeleteLocalBranch(ctx, st.root, feature.Branch, opts.force); err != nil {
			return err
		}
		out.Printf("%s Deleted branch %s\n", styles.OK(), feature.Branch)
	}

	if remoteKnown && remoteExists {
		if err := git.DeleteRemoteBranch(ctx, st.root, origin, feature.Branch); err != nil {
			return err
		}
		out.Printf("%s Deleted %s/%s\n", styles.OK(), origin, feature.Branch)
	}

	if err := git.PruneWorktrees(ctx, st.root); err != nil {
		l.Printf("Warning: pruning worktree metadata: %v\n", err)
	}
	return nil
}
