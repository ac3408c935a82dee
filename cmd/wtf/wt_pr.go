package main

import (
	"context"

	"github.com/smorinlabs/worktreeflow/internal/forge"
	"github.com/smorinlabs/worktreeflow/internal/format"
	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

type prOptions struct {
	draft   bool
	title   string
	base    string
	web     bool
	copyURL bool
}

func runPR(ctx context.Context, st *repoState, args []string, opts prOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	feature, err := resolveFeature(ctx, st, args)
	if err != nil {
		return err
	}
	if err := st.requireOrigin(); err != nil {
		return err
	}
	up, err := resolveUpstream(ctx, st)
	if err != nil {
		return err
	}
	if up.Spec == "" {
		return preconditionf("cannot determine the upstream repository from the %q remote URL: set repo.upstream in the config", up.Remote)
	}

	head := prHead(st, up, feature.Branch)

	existing, err := st.forge.GetPRForBranch(ctx, up.Spec, head)
	if err != nil {
		return err
	}
	if existing != nil {
		out.Printf("PR #%d already exists (%s): %s\n", existing.Number, styles.PRState(existing), existing.URL)
		return finishPR(ctx, st, up.Spec, existing, opts)
	}

	if err := ensurePublished(ctx, st, feature.Branch); err != nil {
		return err
	}

	base := opts.base
	if base == "" {
		base = st.cfg.Repo.BaseBranch
	}

	title := opts.title
	if title == "" {
		title, err = git.GetCommitSubject(ctx, st.root, feature.Branch)
		if err != nil {
			return err
		}
	}

	// The body lists the branch's commits against the base, newest first.
	baseRef := up.BaseRef(base)
	if !git.RefExists(ctx, st.root, baseRef) {
		baseRef = base
	}
	subjects, err := git.ListCommitSubjects(ctx, st.root, baseRef+".."+feature.Branch)
	if err != nil {
		return err
	}
	body := format.Body(st.cfg.PR.BodyTemplate, subjects, feature.Branch, base)

	l.Printf("Creating PR for %s against %s:%s\n", head, up.Spec, base)
	pr, err := st.forge.CreatePR(ctx, up.Spec, forge.CreatePRParams{
		Title: title,
		Body:  body,
		Base:  base,
		Head:  head,
		Draft: opts.draft || st.cfg.PR.Draft,
	})
	if err != nil {
		return err
	}

	out.Printf("%s Created PR #%d: %s\n", styles.OK(), pr.Number, pr.URL)
	return finishPR(ctx, st, up.Spec, pr, opts)
}

// finishPR handles the --web and --copy follow-ups shared by the created
// and already-exists paths.
func finishPR(ctx context.Context, st *repoState, repo string, pr *forge.PR, opts prOptions) error {
	l := log.FromContext(ctx)

	if opts.web {
		if _, err := st.forge.ViewPR(ctx, repo, pr.Number, true); err != nil {
			l.Printf("Warning: opening in browser: %v\n", err)
		}
	}
	if opts.copyURL {
		copyToClipboard(l, pr.URL)
	}
	return nil
}
