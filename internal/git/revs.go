package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/cmd"
)

// ErrNoMergeBase indicates two refs share no common ancestor (unrelated
// histories). Callers wrap it with both ref names; match with errors.Is.
var ErrNoMergeBase = errors.New("no merge base")

// MergeBase returns the best common ancestor of two refs.
func MergeBase(ctx context.Context, repoPath, a, b string) (string, error) {
	output, err := outputGit(ctx, repoPath, "merge-base", a, b)
	if err != nil {
		// Exit code 1 without stderr means the refs resolve but share
		// no history.
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode == 1 {
			return "", fmt.Errorf("%w between %s and %s", ErrNoMergeBase, a, b)
		}
		return "", fmt.Errorf("failed to find merge base of %s and %s: %w", a, b, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// IsAncestor returns true if ancestor is reachable from descendant.
func IsAncestor(ctx context.Context, repoPath, ancestor, descendant string) (bool, error) {
	err := runGit(ctx, repoPath, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode == 1 {
		return false, nil
	}
	return false, fmt.Errorf("failed to check ancestry of %s and %s: %w", ancestor, descendant, err)
}

// AheadBehind returns how many commits local has that upstream lacks and
// vice versa. Refs with unrelated histories yield ErrNoMergeBase rather
// than misleading counts.
func AheadBehind(ctx context.Context, repoPath, local, upstream string) (ahead, behind int, err error) {
	if _, err := MergeBase(ctx, repoPath, local, upstream); err != nil {
		return 0, 0, err
	}

	output, err := outputGit(ctx, repoPath, "rev-list", "--left-right", "--count", local+"..."+upstream)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count commits between %s and %s: %w", local, upstream, err)
	}

	// Output is like "2\t5" (left = local only, right = upstream only)
	fields := strings.Fields(strings.TrimSpace(string(output)))
	if len(fields) != 2 {
		return 0, 0, &ParseError{What: "rev-list --left-right --count output", Input: string(output)}
	}
	if _, err := fmt.Sscanf(fields[0], "%d", &ahead); err != nil {
		return 0, 0, &ParseError{What: "rev-list --left-right --count output", Input: string(output)}
	}
	if _, err := fmt.Sscanf(fields[1], "%d", &behind); err != nil {
		return 0, 0, &ParseError{What: "rev-list --left-right --count output", Input: string(output)}
	}
	return ahead, behind, nil
}

// CountCommits returns the number of commits in a revision range like
// "upstream/main..feat/x".
func CountCommits(ctx context.Context, repoPath, rangeSpec string) (int, error) {
	output, err := outputGit(ctx, repoPath, "rev-list", "--count", rangeSpec)
	if err != nil {
		return 0, fmt.Errorf("failed to count commits in %s: %w", rangeSpec, err)
	}

	var count int
	if _, err := fmt.Sscanf(strings.TrimSpace(string(output)), "%d", &count); err != nil {
		return 0, &ParseError{What: "rev-list --count output", Input: string(output)}
	}
	return count, nil
}

// RevParse resolves a ref to a full commit hash.
func RevParse(ctx context.Context, repoPath, ref string) (string, error) {
	output, err := outputGit(ctx, repoPath, "rev-parse", "--verify", ref)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", ref, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GetShortHash returns the abbreviated commit hash for a ref.
func GetShortHash(ctx context.Context, repoPath, ref string) (string, error) {
	output, err := outputGit(ctx, repoPath, "rev-parse", "--short", ref)
	if err != nil {
		return "", fmt.Errorf("failed to get commit hash: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GetCommitSubject returns the subject line of a commit.
func GetCommitSubject(ctx context.Context, repoPath, ref string) (string, error) {
	output, err := outputGit(ctx, repoPath, "log", "-1", "--format=%s", ref)
	if err != nil {
		return "", fmt.Errorf("failed to get commit subject: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ListCommitSubjects returns the subject lines of commits in a revision
// range, newest first.
func ListCommitSubjects(ctx context.Context, repoPath, rangeSpec string) ([]string, error) {
	output, err := outputGit(ctx, repoPath, "log", "--format=%s", rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits in %s: %w", rangeSpec, err)
	}

	var subjects []string
	for _, line := range strings.Split(string(output), "\n") {
		if line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects, nil
}

// CommitLine is one entry of a short log: abbreviated hash, subject, and
// relative commit date.
type CommitLine struct {
	Hash    string
	Subject string
	When    string
}

// ListRecentCommits returns up to limit commits reachable from ref, newest
// first.
func ListRecentCommits(ctx context.Context, repoPath, ref string, limit int) ([]CommitLine, error) {
	output, err := outputGit(ctx, repoPath, "log", fmt.Sprintf("-%d", limit), "--format=%h%x09%s%x09%cr", ref)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	var commits []CommitLine
	for _, line := range strings.Split(string(output), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			return nil, &ParseError{What: "git log output", Input: line}
		}
		commits = append(commits, CommitLine{Hash: parts[0], Subject: parts[1], When: parts[2]})
	}
	return commits, nil
}

// GetLastCommitRelative returns the relative time of the last commit,
// e.g. "2 days ago".
func GetLastCommitRelative(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "log", "-1", "--format=%cr")
	if err != nil {
		return "", fmt.Errorf("failed to get last commit: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
