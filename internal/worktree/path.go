// Package worktree places feature worktrees on disk.
package worktree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/format"
)

// ResolvePath computes the worktree location for a feature from the
// configured dir format. Supports:
//   - "../wt/{repo}/{slug}" = sibling tree next to the repository
//   - "{branch}" or "./{branch}" = nested inside the repository
//   - "~/worktrees/{repo}/{slug}" = centralized folder
//   - "/srv/worktrees/{repo}/{slug}" = absolute path
//
// Placeholder values are sanitized, so a branch like "feat/login" becomes
// the single path component "feat-login".
func ResolvePath(repoRoot, repoName, branch, slug, dirFormat string) string {
	path := format.WorktreeDir(dirFormat, repoName, branch, slug)

	switch {
	case strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			// keep the ~ prefix so error messages show what was configured
			return path
		}
		return filepath.Join(home, path[2:])

	case filepath.IsAbs(path):
		return filepath.Clean(path)

	default:
		// "../..." walks out of the repository, "x" and "./x" nest inside it
		return filepath.Join(repoRoot, path)
	}
}
