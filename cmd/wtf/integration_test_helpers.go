//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a command in dir and fails the test on error.
// Returns the combined output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

func configureTestUser(t *testing.T, repoPath string) {
	t.Helper()
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// commitTestFile writes a file and commits it.
func commitTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	writeTestFile(t, dir, name, content)
	runGitCommand(t, dir, "git", "add", name)
	runGitCommand(t, dir, "git", "commit", "-m", "Add "+name)
}

// setupFork builds the triangular layout the commands expect: a bare
// upstream repository, a bare fork of it, and a local clone of the fork
// with origin pointing at the fork and upstream at the original.
// Returns (repoPath, forkBare, upstreamBare) with symlinks resolved.
func setupFork(t *testing.T) (string, string, string) {
	t.Helper()
	base := resolvePath(t, t.TempDir())

	upstreamBare := filepath.Join(base, "upstream.git")
	runGitCommand(t, base, "git", "init", "--bare", "-b", "main", upstreamBare)

	seed := filepath.Join(base, "seed")
	runGitCommand(t, base, "git", "init", "-b", "main", seed)
	configureTestUser(t, seed)
	commitTestFile(t, seed, "README.md", "# widgets\n")
	runGitCommand(t, seed, "git", "push", upstreamBare, "main")

	forkBare := filepath.Join(base, "fork.git")
	runGitCommand(t, base, "git", "clone", "--bare", upstreamBare, forkBare)

	repoPath := filepath.Join(base, "widgets")
	runGitCommand(t, base, "git", "clone", forkBare, repoPath)
	configureTestUser(t, repoPath)
	runGitCommand(t, repoPath, "git", "remote", "add", "upstream", upstreamBare)
	runGitCommand(t, repoPath, "git", "fetch", "upstream")

	return repoPath, forkBare, upstreamBare
}

// pushUpstreamCommit advances the upstream's main branch through a fresh
// clone, simulating other contributors merging work. Returns the new head.
func pushUpstreamCommit(t *testing.T, upstreamBare, filename string) string {
	t.Helper()

	clone := filepath.Join(resolvePath(t, t.TempDir()), "contributor")
	runGitCommand(t, "", "git", "clone", upstreamBare, clone)
	configureTestUser(t, clone)
	commitTestFile(t, clone, filename, "content for "+filename+"\n")
	runGitCommand(t, clone, "git", "push", "origin", "main")

	return revParse(t, clone, "HEAD")
}

func revParse(t *testing.T, dir, ref string) string {
	t.Helper()
	out := runGitCommand(t, dir, "git", "rev-parse", ref)
	return string(bytes.TrimSpace([]byte(out)))
}

func branchExists(t *testing.T, repoPath, branch string) bool {
	t.Helper()
	cmd := exec.Command("git", "-C", repoPath, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return cmd.Run() == nil
}

// setTestEnv points the package-level config and working directory at the
// fixture and restores both when the test ends. Tests that mutate these
// globals must not run in parallel.
func setTestEnv(t *testing.T, dir string) {
	t.Helper()

	prevCfg, prevWorkDir := cfg, workDir
	def := config.Default()
	cfg = &def
	workDir = dir
	t.Cleanup(func() {
		cfg = prevCfg
		workDir = prevWorkDir
	})
}

// runCmd executes a command the way Execute wires it up, with diagnostics
// and primary output captured in one buffer.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, false, false))
	ctx = output.WithPrinter(ctx, &buf)

	cmd.SetContext(ctx)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return buf.String(), err
}

// featurePath returns where wt-new places the given feature's worktree
// under the default configuration.
func featurePath(repoPath, slug string) string {
	return filepath.Join(filepath.Dir(repoPath), "wt", filepath.Base(repoPath), slug)
}
