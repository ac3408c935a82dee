package forge

import (
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/git"
)

// Detect returns the Forge implementation for a repository. An explicitly
// configured name wins; otherwise the remote URL's host decides, defaulting
// to GitHub when the host is unrecognized or the URL does not parse.
func Detect(remoteURL, configuredName string) Forge {
	if configuredName != "" {
		return ByName(configuredName)
	}

	remote, err := git.ParseRemoteURL(remoteURL)
	if err != nil {
		return &GitHub{}
	}
	if isGitLabHost(remote.Host) {
		return &GitLab{}
	}
	return &GitHub{}
}

// ByName returns a Forge implementation by name ("github" or "gitlab").
// Unknown names fall back to GitHub.
func ByName(name string) Forge {
	switch strings.ToLower(name) {
	case "gitlab":
		return &GitLab{}
	default:
		return &GitHub{}
	}
}

// isGitLabHost matches gitlab.com and self-hosted instances named after it.
func isGitLabHost(host string) bool {
	return strings.Contains(strings.ToLower(host), "gitlab")
}
