package doctor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/output"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

// setupRepo creates a git repo with a main branch and one commit.
func setupRepo(t *testing.T) string {
	t.Helper()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve symlinks: %v", err)
	}
	repoPath := filepath.Join(tmpDir, "repo")

	runGit(t, tmpDir, "init", "-b", "main", repoPath)
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")

	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	runGit(t, repoPath, "add", "README.md")
	runGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

func TestCheckGit(t *testing.T) {
	r := checkGit(context.Background())
	if r.Status != StatusOK {
		t.Fatalf("checkGit() status = %s, want ok (detail: %s)", r.Status, r.Detail)
	}
	if !strings.Contains(r.Detail, "version") {
		t.Errorf("checkGit() detail = %q, want version info", r.Detail)
	}
}

func TestCheckRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("inside a work tree", func(t *testing.T) {
		repoPath := setupRepo(t)
		var st state
		r := checkRepository(ctx, &st, repoPath)
		if r.Status != StatusOK {
			t.Fatalf("status = %s, want ok (detail: %s)", r.Status, r.Detail)
		}
		if st.repoRoot != repoPath {
			t.Errorf("repoRoot = %q, want %q", st.repoRoot, repoPath)
		}
	})

	t.Run("outside a work tree", func(t *testing.T) {
		var st state
		r := checkRepository(ctx, &st, t.TempDir())
		if r.Status != StatusFail {
			t.Errorf("status = %s, want fail", r.Status)
		}
	})
}

func TestCheckOriginRemote(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	t.Run("missing remote fails with hint", func(t *testing.T) {
		st := state{repoRoot: setupRepo(t)}
		r := checkOriginRemote(ctx, cfg, &st)
		if r.Status != StatusFail {
			t.Fatalf("status = %s, want fail", r.Status)
		}
		if !strings.Contains(r.Hint, "git remote add origin") {
			t.Errorf("hint = %q, want remote add suggestion", r.Hint)
		}
	})

	t.Run("parseable remote passes", func(t *testing.T) {
		repoPath := setupRepo(t)
		runGit(t, repoPath, "remote", "add", "origin", "git@github.com:alice/widgets.git")
		st := state{repoRoot: repoPath}
		r := checkOriginRemote(ctx, cfg, &st)
		if r.Status != StatusOK {
			t.Fatalf("status = %s, want ok (detail: %s)", r.Status, r.Detail)
		}
		if !strings.Contains(r.Detail, "alice/widgets") {
			t.Errorf("detail = %q, want owner/name", r.Detail)
		}
		if !st.hasOrigin || st.origin.Owner != "alice" {
			t.Errorf("state origin = %+v, want alice/widgets", st.origin)
		}
	})

	t.Run("unparseable remote fails", func(t *testing.T) {
		repoPath := setupRepo(t)
		runGit(t, repoPath, "remote", "add", "origin", "/local/path/widgets")
		st := state{repoRoot: repoPath}
		r := checkOriginRemote(ctx, cfg, &st)
		if r.Status != StatusFail {
			t.Errorf("status = %s, want fail", r.Status)
		}
		if st.hasOrigin {
			t.Error("hasOrigin should stay false for an unparseable URL")
		}
	})
}

func TestCheckForkOwner(t *testing.T) {
	t.Run("derived from origin", func(t *testing.T) {
		st := state{hasOrigin: true, origin: git.RemoteURL{Host: "github.com", Owner: "alice", Name: "widgets"}}
		r := checkForkOwner(&st)
		if r.Status != StatusOK || r.Detail != "alice" {
			t.Errorf("got (%s, %q), want (ok, alice)", r.Status, r.Detail)
		}
	})

	t.Run("unresolvable without origin", func(t *testing.T) {
		var st state
		if r := checkForkOwner(&st); r.Status != StatusFail {
			t.Errorf("status = %s, want fail", r.Status)
		}
	})
}

func TestCheckUpstreamRepo(t *testing.T) {
	tests := []struct {
		name     string
		st       state
		cfg      config.Config
		want     Status
		wantSpec string
	}{
		{
			name:     "remote wins",
			st:       state{hasUpstream: true, upstream: git.RemoteURL{Owner: "widgets-org", Name: "widgets"}},
			cfg:      config.Config{Repo: config.RepoConfig{Upstream: "other/widgets"}},
			want:     StatusOK,
			wantSpec: "widgets-org/widgets",
		},
		{
			name:     "config fallback",
			st:       state{},
			cfg:      config.Config{Repo: config.RepoConfig{Upstream: "widgets-org/widgets"}},
			want:     StatusOK,
			wantSpec: "widgets-org/widgets",
		},
		{
			name: "neither fails",
			st:   state{},
			cfg:  config.Config{},
			want: StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := tt.st
			r := checkUpstreamRepo(tt.cfg, &st)
			if r.Status != tt.want {
				t.Fatalf("status = %s, want %s", r.Status, tt.want)
			}
			if st.upstreamSpec != tt.wantSpec {
				t.Errorf("upstreamSpec = %q, want %q", st.upstreamSpec, tt.wantSpec)
			}
		})
	}
}

func TestCheckBaseBranch(t *testing.T) {
	ctx := context.Background()
	st := state{repoRoot: setupRepo(t)}

	cfg := config.Default()
	if r := checkBaseBranch(ctx, cfg, &st); r.Status != StatusOK {
		t.Errorf("main should exist: status = %s (detail: %s)", r.Status, r.Detail)
	}

	cfg.Repo.BaseBranch = "develop"
	if r := checkBaseBranch(ctx, cfg, &st); r.Status != StatusFail {
		t.Errorf("develop should not exist: status = %s", r.Status)
	}
}

func TestCheckWorkingTree(t *testing.T) {
	ctx := context.Background()
	repoPath := setupRepo(t)
	st := state{repoRoot: repoPath}

	if r := checkWorkingTree(ctx, &st); r.Status != StatusOK || r.Detail != "clean" {
		t.Errorf("clean tree: got (%s, %q), want (ok, clean)", r.Status, r.Detail)
	}

	if err := os.WriteFile(filepath.Join(repoPath, "scratch.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if r := checkWorkingTree(ctx, &st); r.Status != StatusWarn {
		t.Errorf("dirty tree: status = %s, want warn", r.Status)
	}
}

func TestRun_NotARepo(t *testing.T) {
	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	err := Run(ctx, config.Default(), t.TempDir())
	if err == nil {
		t.Fatal("Run() outside a repo should fail")
	}

	out := buf.String()
	if !strings.Contains(out, "not inside a git work tree") {
		t.Errorf("output missing repository failure:\n%s", out)
	}
	// Later checks cannot run without a repository.
	if strings.Contains(out, "origin remote") {
		t.Errorf("output should stop after the repository check:\n%s", out)
	}
}

func TestRun_ReportsMissingRemotes(t *testing.T) {
	repoPath := setupRepo(t)

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	err := Run(ctx, config.Default(), repoPath)
	if err == nil {
		t.Fatal("Run() without remotes should fail")
	}

	out := buf.String()
	for _, want := range []string{"origin remote", "upstream repository", "base branch", "working tree", "failures"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
