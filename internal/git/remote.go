package git

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// ParseError indicates that git output or repository metadata could not be
// parsed. The zero value is not useful; always set What and Input.
type ParseError struct {
	What  string // what was being parsed, e.g. "remote URL"
	Input string // the offending input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %q", e.What, e.Input)
}

// RemoteURL is the (host, owner, name) triple extracted from a git remote URL.
// For hosts with nested groups (GitLab subgroups) Owner carries the full
// group path, so Spec round-trips to the project path the forge CLI expects.
type RemoteURL struct {
	Host  string
	Owner string
	Name  string
}

// Spec returns the "owner/name" form used with gh/glab -R flags.
func (u RemoteURL) Spec() string {
	return u.Owner + "/" + u.Name
}

// ParseRemoteURL extracts host, owner, and repository name from a remote URL.
// Handles scp-like SSH (git@host:owner/repo.git) and scheme URLs
// (https://host/owner/repo, ssh://git@host/owner/repo).
func ParseRemoteURL(raw string) (RemoteURL, error) {
	s := strings.TrimSuffix(strings.TrimSpace(raw), ".git")

	var host, path string
	switch {
	case strings.Contains(s, "://"):
		u, err := url.Parse(s)
		if err != nil {
			return RemoteURL{}, &ParseError{What: "remote URL", Input: raw}
		}
		host = u.Hostname()
		path = strings.Trim(u.Path, "/")
	case strings.Contains(s, ":"):
		// scp-like: [user@]host:owner/repo
		hostPart, pathPart, _ := strings.Cut(s, ":")
		if i := strings.LastIndex(hostPart, "@"); i != -1 {
			hostPart = hostPart[i+1:]
		}
		host = hostPart
		path = strings.Trim(pathPart, "/")
	default:
		return RemoteURL{}, &ParseError{What: "remote URL", Input: raw}
	}

	if host == "" || path == "" {
		return RemoteURL{}, &ParseError{What: "remote URL", Input: raw}
	}
	segments := strings.Split(path, "/")
	if len(segments) < 2 {
		return RemoteURL{}, &ParseError{What: "remote URL", Input: raw}
	}

	return RemoteURL{
		Host:  host,
		Owner: strings.Join(segments[:len(segments)-1], "/"),
		Name:  segments[len(segments)-1],
	}, nil
}

// BuildRemoteURL renders a clone URL for the given host and "owner/name"
// spec, in SSH or HTTPS form.
func BuildRemoteURL(host, spec string, ssh bool) string {
	if ssh {
		return fmt.Sprintf("git@%s:%s.git", host, spec)
	}
	return fmt.Sprintf("https://%s/%s.git", host, spec)
}

// ListRemotes returns the configured remote names.
func ListRemotes(ctx context.Context, repoPath string) ([]string, error) {
	remotes, err := outputLines(ctx, repoPath, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return remotes, nil
}

// HasRemote returns true if a remote with the given name is configured.
func HasRemote(ctx context.Context, repoPath, name string) bool {
	_, err := outputGit(ctx, repoPath, "remote", "get-url", name)
	return err == nil
}

// GetRemoteURL returns the fetch URL of the named remote.
func GetRemoteURL(ctx context.Context, repoPath, name string) (string, error) {
	output, err := outputGit(ctx, repoPath, "remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("no %s remote: %w", name, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// AddRemote adds a named remote.
func AddRemote(ctx context.Context, repoPath, name, remoteURL string) error {
	if err := runGit(ctx, repoPath, "remote", "add", name, remoteURL); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// SetRemoteURL replaces the URL of an existing remote.
func SetRemoteURL(ctx context.Context, repoPath, name, remoteURL string) error {
	if err := runGit(ctx, repoPath, "remote", "set-url", name, remoteURL); err != nil {
		return fmt.Errorf("failed to set URL of remote %s: %w", name, err)
	}
	return nil
}

// RenameRemote renames a remote, keeping its URL and refs.
func RenameRemote(ctx context.Context, repoPath, oldName, newName string) error {
	if err := runGit(ctx, repoPath, "remote", "rename", oldName, newName); err != nil {
		return fmt.Errorf("failed to rename remote %s to %s: %w", oldName, newName, err)
	}
	return nil
}
