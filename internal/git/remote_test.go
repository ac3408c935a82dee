package git

import (
	"context"
	"errors"
	"testing"
)

func TestParseRemoteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want RemoteURL
	}{
		{
			name: "scp-like ssh",
			url:  "git@github.com:acme/widgets.git",
			want: RemoteURL{Host: "github.com", Owner: "acme", Name: "widgets"},
		},
		{
			name: "scp-like ssh without .git",
			url:  "git@github.com:acme/widgets",
			want: RemoteURL{Host: "github.com", Owner: "acme", Name: "widgets"},
		},
		{
			name: "https",
			url:  "https://github.com/acme/widgets.git",
			want: RemoteURL{Host: "github.com", Owner: "acme", Name: "widgets"},
		},
		{
			name: "https without .git",
			url:  "https://github.com/acme/widgets",
			want: RemoteURL{Host: "github.com", Owner: "acme", Name: "widgets"},
		},
		{
			name: "ssh scheme",
			url:  "ssh://git@github.com/acme/widgets.git",
			want: RemoteURL{Host: "github.com", Owner: "acme", Name: "widgets"},
		},
		{
			name: "ssh scheme with port",
			url:  "ssh://git@git.corp.example:2222/acme/widgets.git",
			want: RemoteURL{Host: "git.corp.example", Owner: "acme", Name: "widgets"},
		},
		{
			name: "gitlab subgroup keeps group path",
			url:  "git@gitlab.com:group/subgroup/widgets.git",
			want: RemoteURL{Host: "gitlab.com", Owner: "group/subgroup", Name: "widgets"},
		},
		{
			name: "https gitlab subgroup",
			url:  "https://gitlab.com/group/subgroup/widgets",
			want: RemoteURL{Host: "gitlab.com", Owner: "group/subgroup", Name: "widgets"},
		},
		{
			name: "trailing whitespace",
			url:  "git@github.com:acme/widgets.git\n",
			want: RemoteURL{Host: "github.com", Owner: "acme", Name: "widgets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRemoteURL(tt.url)
			if err != nil {
				t.Fatalf("ParseRemoteURL(%q) failed: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ParseRemoteURL(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseRemoteURL_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"no path", "git@github.com:"},
		{"single segment", "https://github.com/acme"},
		{"local path", "/home/user/repos/widgets"},
		{"just a name", "widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseRemoteURL(tt.url)
			if err == nil {
				t.Fatalf("ParseRemoteURL(%q) = nil, want error", tt.url)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error should be a *ParseError, got %T", err)
			}
		})
	}
}

func TestRemoteURLSpec(t *testing.T) {
	t.Parallel()

	u := RemoteURL{Host: "gitlab.com", Owner: "group/subgroup", Name: "widgets"}
	if got := u.Spec(); got != "group/subgroup/widgets" {
		t.Errorf("Spec() = %q, want group/subgroup/widgets", got)
	}
}

func TestBuildRemoteURL(t *testing.T) {
	t.Parallel()

	if got := BuildRemoteURL("github.com", "acme/widgets", true); got != "git@github.com:acme/widgets.git" {
		t.Errorf("ssh url = %q", got)
	}
	if got := BuildRemoteURL("github.com", "acme/widgets", false); got != "https://github.com/acme/widgets.git" {
		t.Errorf("https url = %q", got)
	}
}

func TestRemoteOperations(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if err := AddRemote(ctx, repoPath, "origin", "https://github.com/me/widgets.git"); err != nil {
		t.Fatalf("AddRemote failed: %v", err)
	}
	if err := AddRemote(ctx, repoPath, "upstream", "https://github.com/acme/widgets.git"); err != nil {
		t.Fatalf("AddRemote failed: %v", err)
	}

	remotes, err := ListRemotes(ctx, repoPath)
	if err != nil {
		t.Fatalf("ListRemotes failed: %v", err)
	}
	assertContains(t, remotes, "origin", "upstream")

	if !HasRemote(ctx, repoPath, "upstream") {
		t.Error("upstream remote should exist")
	}
	if HasRemote(ctx, repoPath, "mirror") {
		t.Error("mirror remote should not exist")
	}

	url, err := GetRemoteURL(ctx, repoPath, "upstream")
	if err != nil {
		t.Fatalf("GetRemoteURL failed: %v", err)
	}
	if url != "https://github.com/acme/widgets.git" {
		t.Errorf("url = %q", url)
	}

	if err := SetRemoteURL(ctx, repoPath, "upstream", "git@github.com:acme/widgets.git"); err != nil {
		t.Fatalf("SetRemoteURL failed: %v", err)
	}
	url, err = GetRemoteURL(ctx, repoPath, "upstream")
	if err != nil {
		t.Fatalf("GetRemoteURL failed: %v", err)
	}
	if url != "git@github.com:acme/widgets.git" {
		t.Errorf("url after set = %q", url)
	}

	if err := RenameRemote(ctx, repoPath, "upstream", "parent"); err != nil {
		t.Fatalf("RenameRemote failed: %v", err)
	}
	if HasRemote(ctx, repoPath, "upstream") {
		t.Error("upstream should be gone after rename")
	}
	if !HasRemote(ctx, repoPath, "parent") {
		t.Error("parent should exist after rename")
	}

	if _, err := GetRemoteURL(ctx, repoPath, "mirror"); err == nil {
		t.Error("expected error for unknown remote")
	}
}
