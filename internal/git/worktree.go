package git

import (
	"context"
	"fmt"
	"strings"
)

// Worktree is one entry of `git worktree list --porcelain`.
type Worktree struct {
	Path   string
	Branch string // "(detached)" for detached HEAD
	Head   string // full commit hash, empty for bare
	Bare   bool
}

// ListWorktrees returns all worktrees of a repository, main worktree first.
func ListWorktrees(ctx context.Context, repoPath string) ([]Worktree, error) {
	output, err := outputGit(ctx, repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return parseWorktreeList(string(output))
}

// parseWorktreeList parses porcelain output: blocks separated by blank
// lines, each starting with "worktree <path>" followed by attribute lines.
func parseWorktreeList(output string) ([]Worktree, error) {
	var worktrees []Worktree
	var current Worktree

	flush := func() {
		if current.Path != "" {
			worktrees = append(worktrees, current)
		}
		current = Worktree{}
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch refs/heads/"):
			if current.Path == "" {
				return nil, &ParseError{What: "worktree list output", Input: line}
			}
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			current.Branch = "(detached)"
		case line == "bare":
			current.Bare = true
		}
	}
	flush()

	return worktrees, nil
}

// FindWorktreeForBranch returns the path of the worktree that has the branch
// checked out, or "" if none does.
func FindWorktreeForBranch(ctx context.Context, repoPath, branch string) (string, error) {
	worktrees, err := ListWorktrees(ctx, repoPath)
	if err != nil {
		return "", err
	}
	for _, wt := range worktrees {
		if wt.Branch == branch {
			return wt.Path, nil
		}
	}
	return "", nil
}

// AddWorktree creates a worktree at path with a new branch starting at base.
func AddWorktree(ctx context.Context, repoPath, path, branch, base string) error {
	args := []string{"worktree", "add", path, "-b", branch}
	if base != "" {
		args = append(args, base)
	}
	if err := runGit(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("failed to create worktree: %w", err)
	}
	return nil
}

// AddWorktreeForBranch creates a worktree at path checking out an existing
// branch.
func AddWorktreeForBranch(ctx context.Context, repoPath, path, branch string) error {
	if err := runGit(ctx, repoPath, "worktree", "add", path, branch); err != nil {
		return fmt.Errorf("failed to create worktree: %w", err)
	}
	return nil
}

// RemoveWorktree removes a worktree. force removes even with uncommitted
// changes.
func RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	if err := runGit(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("failed to remove worktree: %w", err)
	}
	return nil
}

// PruneWorktrees drops stale worktree bookkeeping for directories that no
// longer exist.
func PruneWorktrees(ctx context.Context, repoPath string) error {
	if err := runGit(ctx, repoPath, "worktree", "prune"); err != nil {
		return fmt.Errorf("failed to prune worktrees: %w", err)
	}
	return nil
}
