package main

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/smorinlabs/worktreeflow/internal/forge"
	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

func runStatus(ctx context.Context, st *repoState, args []string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	feature, err := resolveCurrentOrNamed(ctx, st, args)
	if err != nil {
		return err
	}

	base := st.cfg.Repo.BaseBranch
	origin := st.cfg.Repo.OriginRemote
	up, upErr := resolveUpstream(ctx, st)

	// Fetch both remotes concurrently so the counts below are current.
	// Status stays useful offline, so fetch failures only warn.
	var originErr, upstreamErr error
	fetchOrigin := git.HasRemote(ctx, st.root, origin)
	fetchUpstream := upErr == nil && up.HasRemote()

	if fetchOrigin || fetchUpstream {
		var sp *ui.Spinner
		if !l.IsVerbose() && !l.IsQuiet() {
			sp = ui.NewSpinner("Fetching remotes...")
			sp.Start()
		}
		var g errgroup.Group
		g.SetLimit(2)
		if fetchOrigin {
			g.Go(func() error { originErr = git.Fetch(ctx, st.root, origin); return nil })
		}
		if fetchUpstream {
			g.Go(func() error { upstreamErr = git.Fetch(ctx, st.root, up.Remote); return nil })
		}
		_ = g.Wait() // always nil, fetch failures become warnings below
		if sp != nil {
			sp.Stop()
		}
	}
	if originErr != nil {
		l.Printf("Warning: fetching %s: %v\n", origin, originErr)
	}
	if upstreamErr != nil {
		l.Printf("Warning: fetching %s: %v\n", up.Remote, upstreamErr)
	}

	out.Printf("%s (%s)\n", feature.Name, feature.Branch)
	out.Printf("  Worktree:  %s\n", feature.Path)

	baseRef := base
	if upErr == nil {
		if r := up.BaseRef(base); git.RefExists(ctx, st.root, r) {
			baseRef = r
		}
	}

	ahead, behind, abErr := git.AheadBehind(ctx, st.root, feature.Branch, baseRef)
	out.Printf("  Base:      %s\n", describeAheadBehind(baseRef, ahead, behind, abErr))

	status, err := git.GetStatus(ctx, feature.Path)
	switch {
	case err != nil:
		out.Printf("  Changes:   unknown (%v)\n", err)
	case status.Clean():
		out.Printf("  Changes:   clean\n")
	default:
		out.Printf("  Changes:   %s\n", status.Summary())
	}

	published := git.RefExists(ctx, st.root, origin+"/"+feature.Branch)
	unpushed := 0
	if published {
		if n, _, err := git.AheadBehind(ctx, st.root, feature.Branch, origin+"/"+feature.Branch); err == nil {
			unpushed = n
		}
		if unpushed > 0 {
			out.Printf("  Origin:    %d unpushed commit(s)\n", unpushed)
		} else {
			out.Printf("  Origin:    up to date\n")
		}
	} else {
		out.Printf("  Origin:    not published\n")
	}

	var pr *forge.PR
	if upErr == nil && up.Spec != "" {
		pr, err = st.forge.GetPRForBranch(ctx, up.Spec, prHead(st, up, feature.Branch))
		switch {
		case err != nil:
			l.Printf("Warning: looking up PR: %v\n", err)
			out.Printf("  PR:        unknown\n")
		case pr != nil:
			out.Printf("  PR:        #%d %s %s\n", pr.Number, styles.PRState(pr), pr.URL)
		default:
			out.Printf("  PR:        none\n")
		}
	}

	if commits, err := git.ListRecentCommits(ctx, feature.Path, feature.Branch, 5); err == nil && len(commits) > 0 {
		out.Printf("\nRecent commits:\n")
		for _, c := range commits {
			out.Printf("  %s %s (%s)\n", c.Hash, c.Subject, c.When)
		}
	}

	for _, action := range suggestActions(feature.Name, behind, published, unpushed, pr) {
		out.Printf("%s %s\n", styles.Arrow(), action)
	}
	return nil
}

// resolveCurrentOrNamed prefers the worktree the command runs in when no
// name is given, falling back to the usual name resolution.
func resolveCurrentOrNamed(ctx context.Context, st *repoState, args []string) (featureWorktree, error) {
	if len(args) == 0 {
		features, err := listFeatureWorktrees(ctx, st)
		if err != nil {
			return featureWorktree{}, err
		}
		for _, f := range features {
			if inside(workDir, f.Path) {
				return f, nil
			}
		}
	}
	return resolveFeature(ctx, st, args)
}

func describeAheadBehind(baseRef string, ahead, behind int, err error) string {
	switch {
	case errors.Is(err, git.ErrNoMergeBase):
		return fmt.Sprintf("no common history with %s", baseRef)
	case err != nil:
		return fmt.Sprintf("unknown (%v)", err)
	case ahead > 0 && behind > 0:
		return fmt.Sprintf("diverged from %s, %d ahead and %d behind", baseRef, ahead, behind)
	case behind > 0:
		return fmt.Sprintf("%d commit(s) behind %s", behind, baseRef)
	case ahead > 0:
		return fmt.Sprintf("%d commit(s) ahead of %s", ahead, baseRef)
	default:
		return fmt.Sprintf("up to date with %s", baseRef)
	}
}

// suggestActions proposes the next wtf commands for the branch's state, in
// workflow order.
func suggestActions(name string, behind int, published bool, unpushed int, pr *forge.PR) []string {
	var actions []string
	if behind > 0 {
		actions = append(actions, "wtf wt-update "+name)
	}
	if !published || unpushed > 0 {
		actions = append(actions, "wtf wt-publish "+name)
	}
	if published && pr == nil {
		actions = append(actions, "wtf wt-pr "+name)
	}
	if pr != nil && pr.State == forge.PRStateMerged {
		actions = append(actions, "wtf wt-clean "+name+" --confirm")
	}
	return actions
}
