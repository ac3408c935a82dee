package git

import (
	"context"
	"fmt"
	"time"
)

// CreateBranch creates a branch at startPoint without checking it out.
func CreateBranch(ctx context.Context, repoPath, name, startPoint string) error {
	args := []string{"branch", name}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	if err := runGit(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// BackupBranchName builds the timestamped name used for safety copies
// before history rewrites.
func BackupBranchName(branch string, now time.Time) string {
	return fmt.Sprintf("backup/%s-%s", branch, now.Format("20060102-150405"))
}

// CreateBackupBranch creates a timestamped copy of branch and returns the
// backup's name.
func CreateBackupBranch(ctx context.Context, repoPath, branch string) (string, error) {
	name := BackupBranchName(branch, time.Now())
	if err := runGit(ctx, repoPath, "branch", name, branch); err != nil {
		return "", fmt.Errorf("failed to create backup branch %s: %w", name, err)
	}
	return name, nil
}

// DeleteLocalBranch deletes a local branch. force uses -D, deleting even
// when the branch is not merged.
func DeleteLocalBranch(ctx context.Context, repoPath, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if err := runGit(ctx, repoPath, "branch", flag, branch); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branch, err)
	}
	return nil
}

// DeleteRemoteBranch deletes a branch on the remote.
func DeleteRemoteBranch(ctx context.Context, repoPath, remote, branch string) error {
	if err := runGit(ctx, repoPath, "push", remote, "--delete", branch); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", remote, branch, err)
	}
	return nil
}

// Fetch updates remote-tracking refs from the named remote.
func Fetch(ctx context.Context, repoPath, remote string) error {
	if err := runGit(ctx, repoPath, "fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return nil
}

// FastForwardBranch updates a local branch to ref without checking it out.
// Fails when the update is not a fast-forward or when the branch is checked
// out in any worktree; callers handle the checked-out case with MergeFFOnly.
func FastForwardBranch(ctx context.Context, repoPath, branch, ref string) error {
	if err := runGit(ctx, repoPath, "fetch", ".", ref+":"+branch); err != nil {
		return fmt.Errorf("failed to fast-forward %s to %s: %w", branch, ref, err)
	}
	return nil
}

// ListLocalBranches returns all local branch names.
func ListLocalBranches(ctx context.Context, repoPath string) ([]string, error) {
	return outputLines(ctx, repoPath, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
}

// Checkout switches the working tree to the given ref.
func Checkout(ctx context.Context, path, ref string) error {
	if err := runGit(ctx, path, "checkout", ref); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", ref, err)
	}
	return nil
}

// Push pushes a branch to the remote.
func Push(ctx context.Context, repoPath, remote, branch string) error {
	if err := runGit(ctx, repoPath, "push", remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}

// PushSetUpstream pushes a branch and sets the remote branch as its
// upstream.
func PushSetUpstream(ctx context.Context, repoPath, remote, branch string) error {
	if err := runGit(ctx, repoPath, "push", "-u", remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}

// PushForceWithLease force-pushes a branch but refuses if the remote moved
// since the last fetch.
func PushForceWithLease(ctx context.Context, repoPath, remote, branch string) error {
	if err := runGit(ctx, repoPath, "push", "--force-with-lease", remote, branch); err != nil {
		return fmt.Errorf("failed to force-push %s to %s: %w", branch, remote, err)
	}
	return nil
}

// PushRefspec pushes an explicit refspec, e.g. "upstream/main:main".
func PushRefspec(ctx context.Context, repoPath, remote, refspec string) error {
	if err := runGit(ctx, repoPath, "push", remote, refspec); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", refspec, remote, err)
	}
	return nil
}

// Rebase replays local commits of the current branch onto a ref.
func Rebase(ctx context.Context, path, onto string, autostash bool) error {
	args := []string{"rebase"}
	if autostash {
		args = append(args, "--autostash")
	}
	args = append(args, onto)
	return runGit(ctx, path, args...)
}

// Merge merges a ref into the current branch.
func Merge(ctx context.Context, path, ref string) error {
	return runGit(ctx, path, "merge", "--no-edit", ref)
}

// MergeFFOnly fast-forwards the current branch to ref, failing if a real
// merge would be needed.
func MergeFFOnly(ctx context.Context, path, ref string) error {
	return runGit(ctx, path, "merge", "--ff-only", ref)
}

// ResetHard moves the current branch to ref and resets the working tree.
func ResetHard(ctx context.Context, path, ref string) error {
	if err := runGit(ctx, path, "reset", "--hard", ref); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", ref, err)
	}
	return nil
}
