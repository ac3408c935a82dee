package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/static"
)

type listEntry struct {
	Name       string `json:"name"`
	Branch     string `json:"branch"`
	Path       string `json:"path"`
	Status     string `json:"status"`
	Dirty      bool   `json:"dirty"`
	LastCommit string `json:"last_commit"`
}

func runList(ctx context.Context, st *repoState, asJSON bool) error {
	out := output.FromContext(ctx)

	features, err := listFeatureWorktrees(ctx, st)
	if err != nil {
		return err
	}

	// Classification uses local refs only, so listing stays fast and works
	// offline; wt-status is the command that fetches.
	base := st.cfg.Repo.BaseBranch
	baseRef := base
	if up, err := resolveUpstream(ctx, st); err == nil {
		if r := up.BaseRef(base); git.RefExists(ctx, st.root, r) {
			baseRef = r
		}
	}

	entries := make([]listEntry, len(features))
	var g errgroup.Group
	g.SetLimit(8) // bound concurrent git invocations
	for i, f := range features {
		g.Go(func() error {
			last, _ := git.GetLastCommitRelative(ctx, f.Path)
			entries[i] = listEntry{
				Name:       f.Name,
				Branch:     f.Branch,
				Path:       f.Path,
				Status:     branchStatus(ctx, st.root, f.Branch, baseRef),
				Dirty:      git.IsDirty(ctx, f.Path),
				LastCommit: last,
			}
			return nil
		})
	}
	_ = g.Wait()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	if asJSON {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		out.Println("No feature worktrees found")
		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		status := e.Status
		if e.Dirty {
			status += " *"
		}
		rows[i] = []string{e.Name, e.Branch, status, e.LastCommit, e.Path}
	}
	out.Print(static.RenderTable([]string{"NAME", "BRANCH", "STATUS", "LAST COMMIT", "PATH"}, rows))
	return nil
}

// branchStatus classifies a branch against the base ref.
func branchStatus(ctx context.Context, repoPath, branch, baseRef string) string {
	ahead, behind, err := git.AheadBehind(ctx, repoPath, branch, baseRef)
	switch {
	case errors.Is(err, git.ErrNoMergeBase):
		return "no common base"
	case err != nil:
		return "unknown"
	case ahead > 0 && behind > 0:
		return fmt.Sprintf("%d ahead, %d behind", ahead, behind)
	case ahead > 0:
		return fmt.Sprintf("%d ahead", ahead)
	case behind > 0:
		return fmt.Sprintf("%d behind", behind)
	default:
		return "up to date"
	}
}
