// Package preserve copies git-ignored files into new worktrees.
//
// Files like .env or local editor settings are ignored by git and would be
// missing from a fresh worktree. Patterns from the [preserve] config section
// select which ignored files to carry over; exclude entries skip whole path
// segments (node_modules and friends). Existing files in the target are
// never overwritten.
package preserve

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
)

// matches returns true if the file at relPath should be preserved.
// Patterns are matched against the file's basename. If any path segment
// matches an exclude entry, the file is skipped.
func matches(relPath string, patterns, exclude []string) bool {
	for seg := range strings.SplitSeq(filepath.ToSlash(relPath), "/") {
		if slices.Contains(exclude, seg) {
			return false
		}
	}

	base := filepath.Base(relPath)
	for _, pat := range patterns {
		if matched, _ := filepath.Match(pat, base); matched {
			return true
		}
	}

	return false
}

// copyFile copies src to dst, creating parent directories as needed.
// O_EXCL skips files that already exist, so the target is never
// overwritten. The source file's permission bits are kept.
// Returns true if the file was copied, false if it already existed.
func copyFile(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	defer dstFile.Close()

	srcFile, err := os.Open(src)
	if err != nil {
		os.Remove(dst) // clean up empty dst
		return false, err
	}
	defer srcFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		os.Remove(dst) // clean up partial dst
		return false, err
	}

	return true, nil
}

// Files copies git-ignored files matching the configured patterns from
// sourceDir into targetDir. Returns the relative paths that were copied.
// Individual copy failures are logged and skipped.
func Files(ctx context.Context, cfg config.PreserveConfig, sourceDir, targetDir string) ([]string, error) {
	if len(cfg.Patterns) == 0 {
		return nil, nil
	}

	l := log.FromContext(ctx)

	ignored, err := git.ListIgnoredFiles(ctx, sourceDir)
	if err != nil {
		return nil, err
	}

	var copied []string
	for _, relPath := range ignored {
		if !matches(relPath, cfg.Patterns, cfg.Exclude) {
			continue
		}

		src := filepath.Join(sourceDir, relPath)
		dst := filepath.Join(targetDir, relPath)

		ok, err := copyFile(src, dst)
		if err != nil {
			l.Debug("preserve: failed to copy file", "file", relPath, "error", err)
			continue
		}
		if ok {
			copied = append(copied, relPath)
		}
	}

	return copied, nil
}
