package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/cmd"
)

// GitLab implements Forge for GitLab repositories using the glab CLI.
type GitLab struct{}

// Name returns "gitlab"
func (g *GitLab) Name() string {
	return "gitlab"
}

// CLIName returns "glab"
func (g *GitLab) CLIName() string {
	return "glab"
}

// Check verifies that glab CLI is available and authenticated
func (g *GitLab) Check(ctx context.Context) error {
	if _, err := exec.LookPath("glab"); err != nil {
		return fmt.Errorf("glab not found: please install GitLab CLI (https://gitlab.com/gitlab-org/cli)")
	}

	if err := cmd.RunContext(ctx, "", "glab", "auth", "status"); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			msg := exitErr.Stderr
			if strings.Contains(msg, "not logged") || strings.Contains(msg, "no token") || msg == "" {
				return fmt.Errorf("glab not authenticated: please run 'glab auth login'")
			}
			return fmt.Errorf("glab auth check failed: %s", msg)
		}
		return err
	}
	return nil
}

// CurrentUser returns the username of the authenticated user.
func (g *GitLab) CurrentUser(ctx context.Context) (string, error) {
	output, err := cmd.OutputContext(ctx, "", "glab", "api", "user")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}

	var user struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(output, &user); err != nil {
		return "", fmt.Errorf("failed to parse glab output: %w", err)
	}
	return user.Username, nil
}

// GetPRForBranch fetches MR info for a source branch. glab matches source
// branches within the project, so a "owner:branch" head is reduced to its
// branch part.
func (g *GitLab) GetPRForBranch(ctx context.Context, repo, head string) (*PR, error) {
	branch := sourceBranch(head)

	output, err := cmd.OutputContext(ctx, "", "glab", "mr", "list",
		"-R", repo,
		"--source-branch", branch,
		"--state", "all",
		"-F", "json",
		"-P", "1")
	if err != nil {
		return nil, fmt.Errorf("failed to list merge requests: %w", err)
	}

	var mrs []struct {
		IID    int    `json:"iid"`
		State  string `json:"state"` // opened, merged, closed
		Draft  bool   `json:"draft"`
		WebURL string `json:"web_url"`
	}
	if err := json.Unmarshal(output, &mrs); err != nil {
		return nil, fmt.Errorf("failed to parse glab output: %w", err)
	}
	if len(mrs) == 0 {
		return nil, nil
	}

	mr := mrs[0]
	return &PR{
		Number:  mr.IID,
		State:   normalizeGitLabState(mr.State),
		IsDraft: mr.Draft,
		URL:     mr.WebURL,
	}, nil
}

// CreatePR creates a new MR using glab CLI
func (g *GitLab) CreatePR(ctx context.Context, repo string, params CreatePRParams) (*PR, error) {
	args := []string{"mr", "create",
		"-R", repo,
		"--title", params.Title,
		"--description", params.Body,
		"--source-branch", sourceBranch(params.Head),
		"--yes",
	}
	if params.Base != "" {
		args = append(args, "--target-branch", params.Base)
	}
	if params.Draft {
		args = append(args, "--draft")
	}

	output, err := cmd.OutputContext(ctx, "", "glab", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create merge request: %w", err)
	}

	// glab prints the MR URL as the last line of stdout
	mrURL := lastLine(string(output))
	if mrURL == "" {
		return nil, fmt.Errorf("glab mr create returned empty output")
	}

	number, err := numberFromURL(mrURL)
	if err != nil {
		return nil, err
	}

	return &PR{
		Number:  number,
		State:   PRStateOpen,
		IsDraft: params.Draft,
		URL:     mrURL,
	}, nil
}

// ViewPR shows an MR in the browser or returns its textual rendering.
func (g *GitLab) ViewPR(ctx context.Context, repo string, number int, web bool) (string, error) {
	args := []string{"mr", "view", strconv.Itoa(number), "-R", repo}
	if web {
		args = append(args, "--web")
		if err := cmd.RunContext(ctx, "", "glab", args...); err != nil {
			return "", fmt.Errorf("failed to open merge request: %w", err)
		}
		return "", nil
	}

	output, err := cmd.OutputContext(ctx, "", "glab", args...)
	if err != nil {
		return "", fmt.Errorf("failed to view merge request: %w", err)
	}
	return string(output), nil
}

// normalizeGitLabState converts GitLab state to the normalized PRState form
func normalizeGitLabState(state string) string {
	switch strings.ToLower(state) {
	case "opened":
		return PRStateOpen
	case "merged":
		return PRStateMerged
	case "closed":
		return PRStateClosed
	default:
		return strings.ToUpper(state)
	}
}

// sourceBranch strips the "owner:" prefix from a head ref.
func sourceBranch(head string) string {
	if _, branch, ok := strings.Cut(head, ":"); ok {
		return branch
	}
	return head
}

// lastLine returns the last non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
