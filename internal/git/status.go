package git

import (
	"context"
	"fmt"
	"strings"
)

// Status summarizes the working tree as counts per change kind, from one
// pass over `git status --porcelain`.
type Status struct {
	Modified  int
	Added     int
	Deleted   int
	Renamed   int
	Copied    int
	Untracked int
}

// Clean returns true if the working tree has no changes at all.
func (s Status) Clean() bool {
	return s.Total() == 0
}

// Total returns the number of changed paths.
func (s Status) Total() int {
	return s.Modified + s.Added + s.Deleted + s.Renamed + s.Copied + s.Untracked
}

// Summary renders the counts as "2 modified, 1 untracked", or "clean".
func (s Status) Summary() string {
	if s.Clean() {
		return "clean"
	}

	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(s.Modified, "modified")
	add(s.Added, "added")
	add(s.Deleted, "deleted")
	add(s.Renamed, "renamed")
	add(s.Copied, "copied")
	add(s.Untracked, "untracked")
	return strings.Join(parts, ", ")
}

// GetStatus returns the working tree status of the given path.
func GetStatus(ctx context.Context, path string) (Status, error) {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return Status{}, fmt.Errorf("failed to get status: %w", err)
	}
	return parseStatus(string(output)), nil
}

// ListIgnoredFiles returns paths (relative to the work tree at path) of all
// git-ignored files present on disk.
func ListIgnoredFiles(ctx context.Context, path string) ([]string, error) {
	lines, err := outputLines(ctx, path, "ls-files", "--others", "--ignored", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list ignored files: %w", err)
	}
	return lines, nil
}

// parseStatus classifies porcelain v1 lines ("XY path"). Untracked is "??";
// everything else maps by the index code, falling back to the worktree code
// for unstaged changes.
func parseStatus(output string) Status {
	var s Status
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 2 {
			continue
		}
		x, y := line[0], line[1]

		if x == '?' || y == '?' {
			s.Untracked++
			continue
		}
		if x == '!' || y == '!' {
			continue // ignored, only present with --ignored
		}

		code := x
		if code == ' ' {
			code = y
		}
		switch code {
		case 'A':
			s.Added++
		case 'D':
			s.Deleted++
		case 'R':
			s.Renamed++
		case 'C':
			s.Copied++
		case 'M', 'T', 'U':
			s.Modified++
		}
	}
	return s
}
