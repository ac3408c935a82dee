package git

import (
	"context"
	"errors"
	"testing"
)

func TestCheckGit_Available(t *testing.T) {
	t.Parallel()
	// git must be available in CI and dev environments
	if err := CheckGit(); err != nil {
		t.Fatalf("CheckGit() = %v, want nil (git should be in PATH)", err)
	}
}

func TestCheckGit_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if err := CheckGit(); !errors.Is(err, ErrGitNotFound) {
		t.Errorf("CheckGit() with empty PATH = %v, want ErrGitNotFound", err)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	version, err := Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if version == "" {
		t.Error("version should not be empty")
	}
}

func TestIsInsideRepoPath(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if !IsInsideRepoPath(ctx, repoPath) {
		t.Error("repo path should be inside a repository")
	}
	if IsInsideRepoPath(ctx, t.TempDir()) {
		t.Error("plain temp dir should not be inside a repository")
	}
}
