package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// commitFile writes a file, stages it, and commits with the given message.
func commitFile(t *testing.T, repoPath, name, content, message string) {
	t.Helper()
	ctx := context.Background()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", message); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// setupTestRepo creates a git repo with main branch, initial commit, and git config.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")

	return repoPath
}

// setupTestRepoWithOrigin creates a repo with a bare origin remote.
// Returns (repoPath, originPath).
func setupTestRepoWithOrigin(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := resolveTempDir(t)

	originPath := filepath.Join(tmpDir, "origin.git")
	repoPath := filepath.Join(tmpDir, "repo")

	ctx := context.Background()

	// -b main ensures a consistent default branch across git versions
	if err := runGit(ctx, "", "init", "--bare", "-b", "main", originPath); err != nil {
		t.Fatalf("failed to init bare repo: %v", err)
	}
	if err := runGit(ctx, "", "clone", originPath, repoPath); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}

	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")

	if err := runGit(ctx, repoPath, "push", "-u", "origin", "HEAD"); err != nil {
		t.Fatalf("failed to push: %v", err)
	}

	return repoPath, originPath
}

// setupForkPair builds the fork topology: a bare upstream, a bare origin
// (the fork), and a clone with both remotes. Returns the clone path.
func setupForkPair(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)

	upstreamPath := filepath.Join(tmpDir, "upstream.git")
	originPath := filepath.Join(tmpDir, "fork.git")
	repoPath := filepath.Join(tmpDir, "repo")

	ctx := context.Background()

	if err := runGit(ctx, "", "init", "--bare", "-b", "main", upstreamPath); err != nil {
		t.Fatalf("failed to init upstream: %v", err)
	}
	if err := runGit(ctx, "", "init", "--bare", "-b", "main", originPath); err != nil {
		t.Fatalf("failed to init fork: %v", err)
	}
	if err := runGit(ctx, "", "clone", originPath, repoPath); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}

	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")

	if err := runGit(ctx, repoPath, "push", "-u", "origin", "HEAD"); err != nil {
		t.Fatalf("failed to push to fork: %v", err)
	}
	if err := runGit(ctx, repoPath, "remote", "add", "upstream", upstreamPath); err != nil {
		t.Fatalf("failed to add upstream remote: %v", err)
	}
	if err := runGit(ctx, repoPath, "push", "upstream", "main"); err != nil {
		t.Fatalf("failed to push to upstream: %v", err)
	}
	if err := runGit(ctx, repoPath, "fetch", "upstream"); err != nil {
		t.Fatalf("failed to fetch upstream: %v", err)
	}

	return repoPath
}

// assertContains checks that all wanted items exist in the got slice.
func assertContains(t *testing.T, got []string, want ...string) {
	t.Helper()
	set := make(map[string]bool, len(got))
	for _, s := range got {
		set[s] = true
	}
	for _, w := range want {
		if !set[w] {
			t.Errorf("missing %q in %v", w, got)
		}
	}
}

func TestGetRepoRoot(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	// From the root itself
	root, err := GetRepoRoot(ctx, repoPath)
	if err != nil {
		t.Fatalf("GetRepoRoot failed: %v", err)
	}
	if root != repoPath {
		t.Errorf("root = %q, want %q", root, repoPath)
	}

	// From a subdirectory
	subDir := filepath.Join(repoPath, "sub", "dir")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	root, err = GetRepoRoot(ctx, subDir)
	if err != nil {
		t.Fatalf("GetRepoRoot from subdir failed: %v", err)
	}
	if root != repoPath {
		t.Errorf("root from subdir = %q, want %q", root, repoPath)
	}

	// Outside a repo
	if _, err := GetRepoRoot(ctx, t.TempDir()); err == nil {
		t.Error("expected error outside a git repository")
	}
}

func TestGetMainRepoPath(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	tmpDir := filepath.Dir(repoPath)
	wtPath := filepath.Join(tmpDir, "test-worktree")

	ctx := context.Background()
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", "test-branch", wtPath); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}

	mainPath, err := GetMainRepoPath(wtPath)
	if err != nil {
		t.Errorf("GetMainRepoPath from worktree failed: %v", err)
	}
	if mainPath != repoPath {
		t.Errorf("expected %s, got %s", repoPath, mainPath)
	}

	// From the main repo it returns the path unchanged
	mainPathFromRepo, err := GetMainRepoPath(repoPath)
	if err != nil {
		t.Errorf("GetMainRepoPath from main repo failed: %v", err)
	}
	if mainPathFromRepo != repoPath {
		t.Errorf("expected %s, got %s", repoPath, mainPathFromRepo)
	}

	if _, err := GetMainRepoPath(t.TempDir()); err == nil {
		t.Error("expected error for non-git directory")
	}
}

func TestIsWorktree(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	tmpDir := filepath.Dir(repoPath)
	wtPath := filepath.Join(tmpDir, "is-worktree-test")

	ctx := context.Background()
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", "is-wt-branch", wtPath); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}

	if IsWorktree(repoPath) {
		t.Error("main repo should not be a worktree")
	}
	if !IsWorktree(wtPath) {
		t.Error("linked worktree should be a worktree")
	}
	if IsWorktree(t.TempDir()) {
		t.Error("plain directory should not be a worktree")
	}
}

func TestGetCurrentBranch(t *testing.T) {
	t.Parallel()

	t.Run("on main", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)

		branch, err := GetCurrentBranch(context.Background(), repoPath)
		if err != nil {
			t.Fatalf("GetCurrentBranch failed: %v", err)
		}
		if branch != "main" {
			t.Errorf("branch = %q, want main", branch)
		}
	})

	t.Run("on feature branch", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		ctx := context.Background()

		if err := runGit(ctx, repoPath, "checkout", "-b", "feat/thing"); err != nil {
			t.Fatalf("failed to create branch: %v", err)
		}
		branch, err := GetCurrentBranch(ctx, repoPath)
		if err != nil {
			t.Fatalf("GetCurrentBranch failed: %v", err)
		}
		if branch != "feat/thing" {
			t.Errorf("branch = %q, want feat/thing", branch)
		}
	})

	t.Run("detached", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		ctx := context.Background()

		if err := runGit(ctx, repoPath, "checkout", "--detach"); err != nil {
			t.Fatalf("failed to detach: %v", err)
		}
		branch, err := GetCurrentBranch(ctx, repoPath)
		if err != nil {
			t.Fatalf("GetCurrentBranch failed: %v", err)
		}
		if branch != "(detached)" {
			t.Errorf("branch = %q, want (detached)", branch)
		}
	})
}

func TestGetDefaultBranch(t *testing.T) {
	t.Parallel()

	t.Run("from remote HEAD", func(t *testing.T) {
		t.Parallel()
		repoPath, _ := setupTestRepoWithOrigin(t)
		ctx := context.Background()

		// Clone sets refs/remotes/origin/HEAD
		branch := GetDefaultBranch(ctx, repoPath, "origin")
		if branch != "main" {
			t.Errorf("default branch = %q, want main", branch)
		}
	})

	t.Run("fallback without remote", func(t *testing.T) {
		t.Parallel()
		result := GetDefaultBranch(context.Background(), "/nonexistent/path", "origin")
		if result != "main" && result != "master" {
			t.Errorf("expected main or master as fallback, got %s", result)
		}
	})
}

func TestBranchExistence(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if err := runGit(ctx, repoPath, "branch", "existing"); err != nil {
		t.Fatalf("failed to create branch: %v", err)
	}

	t.Run("LocalBranchExists", func(t *testing.T) {
		t.Parallel()
		if !LocalBranchExists(ctx, repoPath, "existing") {
			t.Error("existing branch should exist")
		}
		if LocalBranchExists(ctx, repoPath, "nonexistent") {
			t.Error("nonexistent branch should not exist")
		}
	})

	t.Run("RefExists", func(t *testing.T) {
		t.Parallel()
		if !RefExists(ctx, repoPath, "HEAD") {
			t.Error("HEAD should exist")
		}
		if !RefExists(ctx, repoPath, "refs/heads/main") {
			t.Error("refs/heads/main should exist")
		}
		if RefExists(ctx, repoPath, "refs/heads/nonexistent") {
			t.Error("nonexistent ref should not exist")
		}
	})
}

func TestRemoteBranchExists(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepoWithOrigin(t)
	ctx := context.Background()

	exists, err := RemoteBranchExists(ctx, repoPath, "origin", "main")
	if err != nil {
		t.Fatalf("RemoteBranchExists failed: %v", err)
	}
	if !exists {
		t.Error("remote branch \"main\" should exist")
	}

	exists, err = RemoteBranchExists(ctx, repoPath, "origin", "nonexistent")
	if err != nil {
		t.Fatalf("RemoteBranchExists failed: %v", err)
	}
	if exists {
		t.Error("nonexistent remote branch should not exist")
	}

	if _, err := RemoteBranchExists(ctx, repoPath, "no-such-remote", "main"); err == nil {
		t.Error("expected error for unknown remote")
	}
}

func TestIsDirty(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if IsDirty(ctx, repoPath) {
		t.Error("fresh repo should be clean")
	}

	if err := os.WriteFile(filepath.Join(repoPath, "new.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if !IsDirty(ctx, repoPath) {
		t.Error("repo with untracked file should be dirty")
	}
}
