//go:build integration

package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestList_TableShowsFeatures(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	if out, err := runCmd(t, newWtNewCmd(), "search-index"); err != nil {
		t.Fatalf("wt-new failed: %v\n%s", err, out)
	}
	if out, err := runCmd(t, newWtNewCmd(), "login-form"); err != nil {
		t.Fatalf("wt-new failed: %v\n%s", err, out)
	}
	commitTestFile(t, featurePath(repoPath, "login-form"), "login.go", "package login\n")

	out, err := runCmd(t, newWtListCmd())
	if err != nil {
		t.Fatalf("wt-list failed: %v\n%s", err, out)
	}

	for _, want := range []string{"NAME", "BRANCH", "STATUS", "search-index", "login-form", "feat/search-index", "up to date", "1 ahead"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestList_JSON(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	if out, err := runCmd(t, newWtNewCmd(), "search-index"); err != nil {
		t.Fatalf("wt-new failed: %v\n%s", err, out)
	}
	writeTestFile(t, featurePath(repoPath, "search-index"), "scratch.txt", "wip\n")

	out, err := runCmd(t, newWtListCmd(), "--json")
	if err != nil {
		t.Fatalf("wt-list --json failed: %v\n%s", err, out)
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "search-index" || e.Branch != "feat/search-index" {
		t.Errorf("entry = %+v, want name search-index on feat/search-index", e)
	}
	if e.Path != featurePath(repoPath, "search-index") {
		t.Errorf("entry path = %q, want %q", e.Path, featurePath(repoPath, "search-index"))
	}
	if !e.Dirty {
		t.Error("entry should be marked dirty")
	}
	if e.Status != "up to date" {
		t.Errorf("entry status = %q, want up to date", e.Status)
	}
}

func TestList_EmptyRepo(t *testing.T) {
	repoPath, _, _ := setupFork(t)
	setTestEnv(t, repoPath)

	out, err := runCmd(t, newWtListCmd())
	if err != nil {
		t.Fatalf("wt-list failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No feature worktrees found") {
		t.Errorf("expected the empty message:\n%s", out)
	}
}
