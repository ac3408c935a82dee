package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smorinlabs/worktreeflow/internal/git"
)

func TestSlugFromBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		branch string
		prefix string
		want   string
	}{
		{name: "prefix stripped", branch: "feat/search-index", prefix: "feat/", want: "search-index"},
		{name: "no prefix configured", branch: "search-index", prefix: "", want: "search-index"},
		{name: "branch without prefix kept whole", branch: "hotfix-login", prefix: "feat/", want: "hotfix-login"},
		{name: "prefix only once", branch: "feat/feat/x", prefix: "feat/", want: "feat/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugFromBranch(tt.branch, tt.prefix); got != tt.want {
				t.Errorf("slugFromBranch(%q, %q) = %q, want %q", tt.branch, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestCloseMatches(t *testing.T) {
	t.Parallel()

	candidates := []string{"search-index", "search-ui", "login", "logout"}

	got := closeMatches("serch", candidates)
	if len(got) == 0 {
		t.Fatal("expected at least one match for a near miss")
	}
	for _, s := range got {
		if !strings.Contains(s, "search") {
			t.Errorf("unexpected suggestion %q", s)
		}
	}

	if got := closeMatches("zzz", candidates); len(got) != 0 {
		t.Errorf("expected no matches for %q, got %v", "zzz", got)
	}

	if got := closeMatches("lo", candidates); len(got) > 3 {
		t.Errorf("expected at most 3 suggestions, got %d", len(got))
	}
}

func TestFindFeature(t *testing.T) {
	t.Parallel()

	features := []featureWorktree{
		{Name: "search-index", Branch: "feat/search-index", Path: "/wt/search-index"},
		{Name: "login", Branch: "feat/login", Path: "/wt/login"},
	}

	t.Run("by name", func(t *testing.T) {
		f, err := findFeature(features, "login")
		if err != nil {
			t.Fatalf("findFeature: %v", err)
		}
		if f.Path != "/wt/login" {
			t.Errorf("got path %q", f.Path)
		}
	})

	t.Run("by full branch name", func(t *testing.T) {
		f, err := findFeature(features, "feat/login")
		if err != nil {
			t.Fatalf("findFeature: %v", err)
		}
		if f.Name != "login" {
			t.Errorf("got name %q", f.Name)
		}
	})

	t.Run("unknown name suggests close matches", func(t *testing.T) {
		_, err := findFeature(features, "serch-index")
		if err == nil {
			t.Fatal("expected an error")
		}
		var precond *preconditionError
		if !errors.As(err, &precond) {
			t.Fatalf("expected a precondition error, got %T", err)
		}
		if !strings.Contains(err.Error(), "did you mean") || !strings.Contains(err.Error(), "search-index") {
			t.Errorf("error should suggest search-index: %v", err)
		}
	})

	t.Run("unknown name lists available", func(t *testing.T) {
		_, err := findFeature(features, "qqq")
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "available") {
			t.Errorf("error should list available worktrees: %v", err)
		}
	})

	t.Run("no worktrees at all", func(t *testing.T) {
		_, err := findFeature(nil, "x")
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "wt-new") {
			t.Errorf("error should point at wt-new: %v", err)
		}
	})
}

func TestInside(t *testing.T) {
	t.Parallel()

	wt := filepath.Join("/home", "dev", "wt", "search-index")

	tests := []struct {
		name string
		dir  string
		want bool
	}{
		{name: "the worktree itself", dir: wt, want: true},
		{name: "below the worktree", dir: filepath.Join(wt, "internal", "api"), want: true},
		{name: "sibling", dir: filepath.Join("/home", "dev", "wt", "search-index-2"), want: false},
		{name: "parent", dir: filepath.Join("/home", "dev", "wt"), want: false},
		{name: "unrelated", dir: "/tmp", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inside(tt.dir, wt); got != tt.want {
				t.Errorf("inside(%q, %q) = %v, want %v", tt.dir, wt, got, tt.want)
			}
		})
	}
}

func TestPRHead(t *testing.T) {
	t.Parallel()

	fork := &repoState{
		origin:   git.RemoteURL{Host: "github.com", Owner: "you", Name: "widgets"},
		originOK: true,
	}
	up := upstreamRef{Remote: "upstream", Spec: "acme/widgets"}

	if got := prHead(fork, up, "feat/x"); got != "you:feat/x" {
		t.Errorf("fork head = %q, want you:feat/x", got)
	}

	// Origin and upstream being the same repo means no fork prefix.
	same := &repoState{
		origin:   git.RemoteURL{Host: "github.com", Owner: "acme", Name: "widgets"},
		originOK: true,
	}
	if got := prHead(same, up, "feat/x"); got != "feat/x" {
		t.Errorf("same-repo head = %q, want feat/x", got)
	}
}

func TestUpstreamRefBaseRef(t *testing.T) {
	t.Parallel()

	withRemote := upstreamRef{Remote: "upstream", Spec: "acme/widgets"}
	if got := withRemote.BaseRef("main"); got != "upstream/main" {
		t.Errorf("BaseRef with remote = %q", got)
	}

	configOnly := upstreamRef{Spec: "acme/widgets"}
	if got := configOnly.BaseRef("main"); got != "main" {
		t.Errorf("BaseRef without remote = %q", got)
	}
}
