package git

import (
	"context"
	"fmt"
)

// Stash creates a stash entry with the given message.
// Includes untracked files (-u) to capture all uncommitted changes.
func Stash(ctx context.Context, path, message string) error {
	if err := runGit(ctx, path, "stash", "push", "-u", "-m", message); err != nil {
		return fmt.Errorf("failed to stash changes: %w", err)
	}
	return nil
}

// StashPop applies and removes the most recent stash entry.
func StashPop(ctx context.Context, path string) error {
	if err := runGit(ctx, path, "stash", "pop"); err != nil {
		return fmt.Errorf("failed to pop stash: %w", err)
	}
	return nil
}
