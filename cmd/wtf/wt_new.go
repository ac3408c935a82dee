package main

import (
	"context"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/hooks"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/preserve"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
	"github.com/smorinlabs/worktreeflow/internal/validate"
	"github.com/smorinlabs/worktreeflow/internal/worktree"
)

type newOptions struct {
	base     string
	noSync   bool
	copyPath bool
}

func runNew(ctx context.Context, st *repoState, name string, opts newOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if err := validate.Slug(name); err != nil {
		return err
	}
	branch := featureBranch(st, name)
	if err := validate.BranchName(branch); err != nil {
		return err
	}

	base := opts.base
	if base == "" {
		base = st.cfg.Repo.BaseBranch
	}
	if !git.LocalBranchExists(ctx, st.root, base) {
		return preconditionf("base branch %q does not exist: set repo.base_branch or pass --base", base)
	}

	if !opts.noSync {
		if err := syncBaseBeforeBranching(ctx, st, base); err != nil {
			return err
		}
	}

	path := worktree.ResolvePath(st.root, st.repoName, branch, name, st.cfg.Worktree.Dir)

	// An existing branch or worktree is reused rather than rejected, so
	// rerunning wt-new after a partial failure converges on the same state.
	if existing, err := git.FindWorktreeForBranch(ctx, st.root, branch); err == nil && existing != "" {
		out.Printf("%s Worktree for %s already exists: %s\n", styles.OK(), branch, existing)
		out.Printf("%s cd %s\n", styles.Arrow(), existing)
		if opts.copyPath {
			copyToClipboard(l, existing)
		}
		return nil
	}

	if git.LocalBranchExists(ctx, st.root, branch) {
		l.Printf("Branch %s already exists, reusing it\n", branch)
		if err := git.AddWorktreeForBranch(ctx, st.root, path, branch); err != nil {
			return err
		}
	} else {
		if err := git.AddWorktree(ctx, st.root, path, branch, base); err != nil {
			return err
		}
	}

	copied, err := preserve.Files(ctx, st.cfg.Preserve, st.root, path)
	if err != nil {
		l.Printf("Warning: preserving files: %v\n", err)
	} else if len(copied) > 0 {
		l.Printf("Copied %d preserved file(s)\n", len(copied))
	}

	hctx := hooks.Context{Path: path, Branch: branch, Repo: st.repoName, Slug: name}
	for _, err := range hooks.RunPostCreate(ctx, st.cfg.Hooks.PostCreate, hctx) {
		l.Printf("Warning: post-create hook: %v\n", err)
	}

	out.Printf("%s Created worktree %s on branch %s\n", styles.OK(), path, branch)
	out.Printf("%s cd %s\n", styles.Arrow(), path)
	if opts.copyPath {
		copyToClipboard(l, path)
	}
	return nil
}

// syncBaseBeforeBranching brings the local base branch up to date with
// upstream before branching off it. Fetch failures only warn so wt-new keeps
// working offline; a base that diverged from upstream fails because new
// branches would bake the divergence in.
func syncBaseBeforeBranching(ctx context.Context, st *repoState, base string) error {
	l := log.FromContext(ctx)

	up, err := resolveUpstream(ctx, st)
	if err != nil || !up.HasRemote() {
		l.Printf("Warning: skipping base sync, no upstream remote (wtf upstream-add <owner/repo>)\n")
		return nil
	}

	l.Printf("Fetching %s\n", up.Remote)
	if err := git.Fetch(ctx, st.root, up.Remote); err != nil {
		l.Printf("Warning: skipping base sync: %v\n", err)
		return nil
	}

	baseRef := up.BaseRef(base)
	if !git.RefExists(ctx, st.root, baseRef) {
		l.Printf("Warning: skipping base sync, %s does not exist\n", baseRef)
		return nil
	}
	ahead, behind, err := git.AheadBehind(ctx, st.root, base, baseRef)
	if err != nil {
		return err
	}
	if ahead > 0 {
		return preconditionf("local %s has %d commit(s) not on %s: push them upstream or run wtf sync-main-force", base, ahead, baseRef)
	}
	if behind == 0 {
		l.Printf("%s is up to date with %s\n", base, baseRef)
		return nil
	}

	if err := fastForwardBase(ctx, st, base, baseRef); err != nil {
		return err
	}
	l.Printf("Fast-forwarded %s to %s (%d commit(s))\n", base, baseRef, behind)

	origin := st.cfg.Repo.OriginRemote
	if git.HasRemote(ctx, st.root, origin) {
		if err := git.Push(ctx, st.root, origin, base); err != nil {
			l.Printf("Warning: pushing %s to %s: %v\n", base, origin, err)
		}
	}
	return nil
}
