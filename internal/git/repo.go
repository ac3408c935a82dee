package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/cmd"
)

// GetRepoRoot returns the top-level directory of the working tree containing
// path.
func GetRepoRoot(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GetMainRepoPath extracts the main repo path from the .git file in a
// worktree. For the main repository itself (where .git is a directory) the
// path is returned unchanged.
func GetMainRepoPath(worktreePath string) (string, error) {
	gitPath := filepath.Join(worktreePath, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	if info.IsDir() {
		return worktreePath, nil
	}

	content, err := os.ReadFile(gitPath)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	// Only the first line matters: "gitdir: /path/to/repo/.git/worktrees/name"
	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	gitdir, ok := strings.CutPrefix(line, "gitdir: ")
	if !ok || gitdir == "" {
		return "", &ParseError{What: ".git file", Input: line}
	}

	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(worktreePath, gitdir)
	}
	gitdir = filepath.Clean(gitdir)

	// gitdir is like /path/to/repo/.git/worktrees/name; walk up to the .git
	// directory and return its parent.
	dir := gitdir
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &ParseError{What: "worktree gitdir", Input: gitdir}
		}
		if filepath.Base(dir) == ".git" {
			return parent, nil
		}
		dir = parent
	}
}

// IsWorktree returns true if path is a linked worktree (not the main repo).
// Worktrees have .git as a file pointing to the main repo,
// while main repos have .git as a directory.
func IsWorktree(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// GetCurrentBranch returns the current branch name
// Returns "(detached)" for detached HEAD state
func GetCurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// GetDefaultBranch returns the default branch name advertised by the remote
// (e.g. "main" or "master"). Falls back to probing common names when the
// remote HEAD ref is not set locally.
func GetDefaultBranch(ctx context.Context, repoPath, remote string) string {
	output, err := outputGit(ctx, repoPath, "symbolic-ref", "refs/remotes/"+remote+"/HEAD")
	if err == nil {
		// Output is like "refs/remotes/origin/main"
		ref := strings.TrimSpace(string(output))
		if branch, ok := strings.CutPrefix(ref, "refs/remotes/"+remote+"/"); ok && branch != "" {
			return branch
		}
	}

	for _, candidate := range []string{"main", "master"} {
		if RefExists(ctx, repoPath, "refs/remotes/"+remote+"/"+candidate) {
			return candidate
		}
	}

	return "main"
}

// RefExists returns true if the ref resolves in the repository.
func RefExists(ctx context.Context, repoPath, ref string) bool {
	return runGit(ctx, repoPath, "rev-parse", "--verify", "--quiet", ref) == nil
}

// LocalBranchExists returns true if a local branch with the given name exists.
func LocalBranchExists(ctx context.Context, repoPath, branch string) bool {
	return RefExists(ctx, repoPath, "refs/heads/"+branch)
}

// RemoteBranchExists asks the remote whether a branch exists. This contacts
// the remote (ls-remote) so the answer does not depend on fetch state.
func RemoteBranchExists(ctx context.Context, repoPath, remote, branch string) (bool, error) {
	err := runGit(ctx, repoPath, "ls-remote", "--exit-code", "--heads", remote, "refs/heads/"+branch)
	if err == nil {
		return true, nil
	}
	// ls-remote exits 2 when no matching refs were found
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode == 2 {
		return false, nil
	}
	return false, fmt.Errorf("failed to query %s for branch %s: %w", remote, branch, err)
}

// IsDirty returns true if the worktree has uncommitted changes or untracked files
func IsDirty(ctx context.Context, path string) bool {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) != ""
}
