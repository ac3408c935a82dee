package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/forge"
	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/ui"
)

// repoState describes the repository a command operates on. It is derived
// fresh on every invocation from the working directory and the merged
// configuration; nothing is cached across commands.
type repoState struct {
	cfg       config.Config
	root      string // main worktree root, even when run from a feature worktree
	repoName  string
	origin    git.RemoteURL
	originOK  bool // origin exists and its URL parsed
	originURL string
	forge     forge.Forge
}

// loadRepoState resolves the repository root from dir and merges the per-repo
// config file into the global one. The origin remote is parsed when present;
// commands that need the fork owner check originOK via requireOrigin.
func loadRepoState(ctx context.Context, dir string) (*repoState, error) {
	root, err := repoMainRoot(ctx, dir)
	if err != nil {
		return nil, err
	}

	local, err := config.LoadLocal(root)
	if err != nil {
		return nil, err
	}
	merged := config.MergeLocal(cfg, local)

	st := &repoState{
		cfg:      *merged,
		root:     root,
		repoName: filepath.Base(root),
	}

	if raw, err := git.GetRemoteURL(ctx, root, merged.Repo.OriginRemote); err == nil {
		st.originURL = raw
		if u, perr := git.ParseRemoteURL(raw); perr == nil {
			st.origin = u
			st.originOK = true
			st.repoName = u.Name
		}
	}
	st.forge = forge.Detect(st.originURL, merged.Forge.Name)

	return st, nil
}

// repoMainRoot resolves dir to the main worktree's root, so commands run
// from inside a feature worktree still operate on the whole repository.
func repoMainRoot(ctx context.Context, dir string) (string, error) {
	root, err := git.GetRepoRoot(ctx, dir)
	if err != nil {
		return "", preconditionf("not inside a git repository: run wtf from a clone of your fork")
	}
	if git.IsWorktree(root) {
		main, err := git.GetMainRepoPath(root)
		if err != nil {
			return "", err
		}
		root = main
	}
	return root, nil
}

// requireOrigin fails when the origin remote is missing or its URL does not
// name an owner/repo. Only commands that need the fork owner (PR head,
// fork detection) call this; plain pushes just need the remote to exist.
func (st *repoState) requireOrigin() error {
	if !st.originOK {
		return preconditionf("cannot determine your fork from the %q remote: add your fork as %s or run wtf fork-setup",
			st.cfg.Repo.OriginRemote, st.cfg.Repo.OriginRemote)
	}
	return nil
}

// requireRemote fails when the named remote is not configured.
func requireRemote(ctx context.Context, st *repoState, remote string) error {
	if !git.HasRemote(ctx, st.root, remote) {
		return preconditionf("remote %q not found: add it with git remote add %s <url>", remote, remote)
	}
	return nil
}

// upstreamRef describes where the upstream repository lives for this
// invocation: through a configured remote when one exists, otherwise through
// the repo.upstream config value alone.
type upstreamRef struct {
	Remote string // remote name, empty when config-only
	Spec   string // "owner/name", empty when unknown
	URL    git.RemoteURL
}

func (u upstreamRef) HasRemote() bool { return u.Remote != "" }

// BaseRef returns the ref to compare and sync against for the given base
// branch: the remote-tracking ref when the upstream remote exists, the
// local base branch otherwise.
func (u upstreamRef) BaseRef(base string) string {
	if u.HasRemote() {
		return u.Remote + "/" + base
	}
	return base
}

// resolveUpstream locates the upstream repository. A configured upstream
// remote wins; its URL only has to parse when something asks for the
// owner/name spec. Without a remote, repo.upstream from config fills in.
func resolveUpstream(ctx context.Context, st *repoState) (upstreamRef, error) {
	remote := st.cfg.Repo.UpstreamRemote

	if git.HasRemote(ctx, st.root, remote) {
		ref := upstreamRef{Remote: remote}
		if raw, err := git.GetRemoteURL(ctx, st.root, remote); err == nil {
			if u, perr := git.ParseRemoteURL(raw); perr == nil {
				ref.Spec = u.Spec()
				ref.URL = u
			}
		}
		if ref.Spec == "" {
			ref.Spec = st.cfg.Repo.Upstream
		}
		return ref, nil
	}

	if spec := st.cfg.Repo.Upstream; spec != "" {
		return upstreamRef{Spec: spec}, nil
	}

	return upstreamRef{}, preconditionf("no %q remote and no repo.upstream configured: run wtf upstream-add <owner/repo>", remote)
}

// requireUpstreamRemote resolves upstream and insists on an actual remote,
// for commands that fetch from or compare against it.
func requireUpstreamRemote(ctx context.Context, st *repoState) (upstreamRef, error) {
	up, err := resolveUpstream(ctx, st)
	if err != nil {
		return upstreamRef{}, err
	}
	if !up.HasRemote() {
		spec := up.Spec
		if spec == "" {
			spec = "<owner/repo>"
		}
		return upstreamRef{}, preconditionf("the %q remote is required here: run wtf upstream-add %s", st.cfg.Repo.UpstreamRemote, spec)
	}
	return up, nil
}

// featureWorktree pairs a worktree with the short name commands address it
// by: the branch with the configured prefix stripped.
type featureWorktree struct {
	Name   string
	Branch string
	Path   string
}

// listFeatureWorktrees returns all linked worktrees of the repository with
// a branch checked out, excluding the main worktree.
func listFeatureWorktrees(ctx context.Context, st *repoState) ([]featureWorktree, error) {
	wts, err := git.ListWorktrees(ctx, st.root)
	if err != nil {
		return nil, err
	}

	features := make([]featureWorktree, 0, len(wts))
	for _, wt := range wts {
		if wt.Bare || wt.Path == st.root || wt.Branch == "" || wt.Branch == "(detached)" {
			continue
		}
		features = append(features, featureWorktree{
			Name:   slugFromBranch(wt.Branch, st.cfg.Branch.Prefix),
			Branch: wt.Branch,
			Path:   wt.Path,
		})
	}
	return features, nil
}

func slugFromBranch(branch, prefix string) string {
	if prefix != "" && strings.HasPrefix(branch, prefix) {
		return strings.TrimPrefix(branch, prefix)
	}
	return branch
}

// featureBranch maps a feature name to its branch name.
func featureBranch(st *repoState, name string) string {
	return st.cfg.Branch.Prefix + name
}

// resolveFeature maps the optional positional <name> argument to a feature
// worktree. With no name on an interactive terminal a selector lists the
// worktrees; otherwise the error names the available ones. An unknown name
// gets close matches suggested.
func resolveFeature(ctx context.Context, st *repoState, args []string) (featureWorktree, error) {
	features, err := listFeatureWorktrees(ctx, st)
	if err != nil {
		return featureWorktree{}, err
	}

	if len(args) > 0 {
		return findFeature(features, args[0])
	}

	if len(features) == 0 {
		return featureWorktree{}, preconditionf("no feature worktrees found: create one with wtf wt-new <name>")
	}

	if !ui.Interactive() {
		return featureWorktree{}, preconditionf("no worktree name given, available: %s", strings.Join(featureNames(features), ", "))
	}

	items := make([]ui.Item, len(features))
	for i, f := range features {
		items[i] = ui.Item{Label: f.Name, Description: f.Branch}
	}
	idx, err := ui.Select("Select a worktree", items)
	if err != nil {
		return featureWorktree{}, err
	}
	if idx < 0 {
		return featureWorktree{}, fmt.Errorf("no worktree selected")
	}
	return features[idx], nil
}

func findFeature(features []featureWorktree, name string) (featureWorktree, error) {
	for _, f := range features {
		if f.Name == name || f.Branch == name {
			return f, nil
		}
	}

	names := featureNames(features)
	if suggestions := closeMatches(name, names); len(suggestions) > 0 {
		return featureWorktree{}, preconditionf("no worktree named %q, did you mean: %s", name, strings.Join(suggestions, ", "))
	}
	if len(names) > 0 {
		return featureWorktree{}, preconditionf("no worktree named %q, available: %s", name, strings.Join(names, ", "))
	}
	return featureWorktree{}, preconditionf("no worktree named %q: create one with wtf wt-new %s", name, name)
}

func featureNames(features []featureWorktree) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name
	}
	return names
}

// closeMatches returns up to three fuzzy matches for name among candidates.
func closeMatches(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	limit := min(3, len(matches))
	out := make([]string, 0, limit)
	for _, m := range matches[:limit] {
		out = append(out, m.Str)
	}
	return out
}

// prHead returns the forge head spec for a feature branch: "owner:branch"
// when origin is a fork, the bare branch when origin is the upstream
// repository itself.
func prHead(st *repoState, up upstreamRef, branch string) string {
	if st.originOK && st.origin.Spec() != up.Spec {
		return st.origin.Owner + ":" + branch
	}
	return branch
}

// inside reports whether dir is path or somewhere below it. Both must be
// absolute.
func inside(dir, path string) bool {
	rel, err := filepath.Rel(path, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// effectiveConfig merges the per-repo config into the global one when dir is
// inside a repository; outside one the global config stands alone.
func effectiveConfig(ctx context.Context, dir string) config.Config {
	if root, err := repoMainRoot(ctx, dir); err == nil {
		if local, err := config.LoadLocal(root); err == nil {
			return *config.MergeLocal(cfg, local)
		}
	}
	return *cfg
}

// copyToClipboard copies text for --copy flags. Clipboard access fails on
// headless systems, which only warrants a warning.
func copyToClipboard(l *log.Logger, text string) {
	if err := clipboard.WriteAll(text); err != nil {
		l.Printf("Warning: copying to clipboard: %v\n", err)
		return
	}
	l.Printf("Copied to clipboard\n")
}
