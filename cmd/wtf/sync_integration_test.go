//go:build integration

package main

import (
	"strings"
	"testing"
)

func TestSyncMain_FastForwardsAndPushes(t *testing.T) {
	repoPath, forkBare, upstreamBare := setupFork(t)
	setTestEnv(t, repoPath)

	upstreamHead := pushUpstreamCommit(t, upstreamBare, "feature.txt")

	out, err := runCmd(t, newSyncMainCmd())
	if err != nil {
		t.Fatalf("sync-main failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Fast-forwarded main") {
		t.Errorf("output missing fast-forward line:\n%s", out)
	}
	if !strings.Contains(out, "Pushed main to origin") {
		t.Errorf("output missing push line:\n%s", out)
	}

	if got := revParse(t, repoPath, "main"); got != upstreamHead {
		t.Errorf("local main = %s, want %s", got, upstreamHead)
	}
	if got := revParse(t, forkBare, "main"); got != upstreamHead {
		t.Errorf("fork main = %s, want %s", got, upstreamHead)
	}
}

func TestSyncMain_UpToDate(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	out, err := runCmd(t, newSyncMainCmd())
	if err != nil {
		t.Fatalf("sync-main failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "up to date") {
		t.Errorf("expected an up-to-date report:\n%s", out)
	}
}

func TestSyncMain_RefusesLocalCommits(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	commitTestFile(t, repoPath, "local.txt", "never pushed\n")

	_, err := runCmd(t, newSyncMainCmd())
	if err == nil {
		t.Fatal("expected an error for local commits on main")
	}
	if !strings.Contains(err.Error(), "sync-main-force") {
		t.Errorf("error should point at sync-main-force, got %q", err.Error())
	}
}

func TestSyncMain_FastForwardsBaseCheckedOutElsewhere(t *testing.T) {
	repoPath, _, upstreamBare := setupFork(t)
	setTestEnv(t, repoPath)

	// Park the main worktree on another branch so the base branch has to
	// move without a checkout.
	runGitCommand(t, repoPath, "git", "checkout", "-b", "parked")
	upstreamHead := pushUpstreamCommit(t, upstreamBare, "feature.txt")

	out, err := runCmd(t, newSyncMainCmd())
	if err != nil {
		t.Fatalf("sync-main failed: %v\n%s", err, out)
	}
	if got := revParse(t, repoPath, "main"); got != upstreamHead {
		t.Errorf("main = %s, want %s", got, upstreamHead)
	}
	if got := revParse(t, repoPath, "parked"); got == upstreamHead {
		t.Error("the checked-out branch must not move")
	}
}

func TestSyncMainForce_NeedsConfirmWhenNotInteractive(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	_, err := runCmd(t, newSyncMainForceCmd())
	if err == nil {
		t.Fatal("expected an error without --confirm on a non-interactive run")
	}
	if !strings.Contains(err.Error(), "--confirm") {
		t.Errorf("error should mention --confirm, got %q", err.Error())
	}
}

func TestSyncMainForce_ResetsBacksUpAndForcePushes(t *testing.T) {
	repoPath, forkBare, upstreamBare := setupFork(t)
	setTestEnv(t, repoPath)

	commitTestFile(t, repoPath, "local.txt", "to be discarded\n")
	localHead := revParse(t, repoPath, "main")
	upstreamHead := pushUpstreamCommit(t, upstreamBare, "feature.txt")

	out, err := runCmd(t, newSyncMainForceCmd(), "--confirm")
	if err != nil {
		t.Fatalf("sync-main-force failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Backed up main", "Reset main to upstream/main", "Force-pushed main to origin"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := revParse(t, repoPath, "main"); got != upstreamHead {
		t.Errorf("main = %s, want %s", got, upstreamHead)
	}
	if got := revParse(t, forkBare, "main"); got != upstreamHead {
		t.Errorf("fork main = %s, want %s", got, upstreamHead)
	}

	// The discarded commit survives on the backup branch.
	backups := runGitCommand(t, repoPath, "git", "for-each-ref", "--format=%(refname:short) %(objectname)", "refs/heads/backup/")
	if !strings.Contains(backups, localHead) {
		t.Errorf("backup branch does not hold the old head %s:\n%s", localHead, backups)
	}
}

func TestSyncMainForce_RefusesDirtyWorktree(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	writeTestFile(t, repoPath, "README.md", "uncommitted change\n")

	_, err := runCmd(t, newSyncMainForceCmd(), "--confirm")
	if err == nil {
		t.Fatal("expected an error for a dirty main worktree")
	}
	if !strings.Contains(err.Error(), "uncommitted changes") {
		t.Errorf("error should name the uncommitted changes, got %q", err.Error())
	}
}

func TestSyncRemote_UpdatesForkWithoutTouchingLocal(t *testing.T) {
	repoPath, forkBare, upstreamBare := setupFork(t)
	setTestEnv(t, repoPath)

	localHead := revParse(t, repoPath, "main")
	upstreamHead := pushUpstreamCommit(t, upstreamBare, "feature.txt")

	out, err := runCmd(t, newSyncRemoteCmd())
	if err != nil {
		t.Fatalf("sync-remote failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Updated origin/main from upstream/main") {
		t.Errorf("output missing update line:\n%s", out)
	}

	if got := revParse(t, forkBare, "main"); got != upstreamHead {
		t.Errorf("fork main = %s, want %s", got, upstreamHead)
	}
	if got := revParse(t, repoPath, "main"); got != localHead {
		t.Errorf("local main moved to %s, want untouched %s", got, localHead)
	}
}

func TestSyncRemote_RefusesLocalCommits(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	commitTestFile(t, repoPath, "local.txt", "never pushed\n")

	_, err := runCmd(t, newSyncRemoteCmd())
	if err == nil {
		t.Fatal("expected an error for local commits on main")
	}
	if !strings.Contains(err.Error(), "push them upstream first") {
		t.Errorf("error should explain the stranded commits, got %q", err.Error())
	}
}
