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

// GitHub implements Forge for GitHub repositories using the gh CLI.
type GitHub struct{}

// Name returns "github"
func (g *GitHub) Name() string {
	return "github"
}

// CLIName returns "gh"
func (g *GitHub) CLIName() string {
	return "gh"
}

// Check verifies that gh CLI is available and authenticated
func (g *GitHub) Check(ctx context.Context) error {
	if _, err := exec.LookPath("gh"); err != nil {
		return fmt.Errorf("gh not found: please install GitHub CLI (https://cli.github.com)")
	}

	if err := cmd.RunContext(ctx, "", "gh", "auth", "status"); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			msg := exitErr.Stderr
			if strings.Contains(msg, "not logged") || strings.Contains(msg, "no accounts") || msg == "" {
				return fmt.Errorf("gh not authenticated: please run 'gh auth login'")
			}
			return fmt.Errorf("gh auth check failed: %s", msg)
		}
		return err
	}
	return nil
}

// CurrentUser returns the login of the authenticated user.
func (g *GitHub) CurrentUser(ctx context.Context) (string, error) {
	output, err := cmd.OutputContext(ctx, "", "gh", "api", "user", "--jq", ".login")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GetPRForBranch fetches PR info for a head ref using gh CLI.
// head may be "branch" or "owner:branch" for cross-repository PRs.
func (g *GitHub) GetPRForBranch(ctx context.Context, repo, head string) (*PR, error) {
	output, err := cmd.OutputContext(ctx, "", "gh", "pr", "list",
		"-R", repo,
		"--head", head,
		"--state", "all",
		"--json", "number,state,isDraft,url",
		"--limit", "1")
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	var prs []struct {
		Number  int    `json:"number"`
		State   string `json:"state"`
		IsDraft bool   `json:"isDraft"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(output, &prs); err != nil {
		return nil, fmt.Errorf("failed to parse gh output: %w", err)
	}
	if len(prs) == 0 {
		return nil, nil
	}

	pr := prs[0]
	return &PR{
		Number:  pr.Number,
		State:   pr.State, // GitHub already uses OPEN, MERGED, CLOSED
		IsDraft: pr.IsDraft,
		URL:     pr.URL,
	}, nil
}

// CreatePR creates a new PR using gh CLI
func (g *GitHub) CreatePR(ctx context.Context, repo string, params CreatePRParams) (*PR, error) {
	args := []string{"pr", "create",
		"-R", repo,
		"--title", params.Title,
		"--body", params.Body,
	}
	if params.Base != "" {
		args = append(args, "--base", params.Base)
	}
	if params.Head != "" {
		args = append(args, "--head", params.Head)
	}
	if params.Draft {
		args = append(args, "--draft")
	}

	output, err := cmd.OutputContext(ctx, "", "gh", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	// gh pr create prints the PR URL on stdout
	prURL := strings.TrimSpace(string(output))
	if prURL == "" {
		return nil, fmt.Errorf("gh pr create returned empty output")
	}

	number, err := numberFromURL(prURL)
	if err != nil {
		return nil, err
	}

	return &PR{
		Number:  number,
		State:   PRStateOpen,
		IsDraft: params.Draft,
		URL:     prURL,
	}, nil
}

// ViewPR shows a PR in the browser or returns its textual rendering.
func (g *GitHub) ViewPR(ctx context.Context, repo string, number int, web bool) (string, error) {
	args := []string{"pr", "view", strconv.Itoa(number), "-R", repo}
	if web {
		args = append(args, "--web")
		if err := cmd.RunContext(ctx, "", "gh", args...); err != nil {
			return "", fmt.Errorf("failed to open pull request: %w", err)
		}
		return "", nil
	}

	output, err := cmd.OutputContext(ctx, "", "gh", args...)
	if err != nil {
		return "", fmt.Errorf("failed to view pull request: %w", err)
	}
	return string(output), nil
}

// numberFromURL extracts the PR/MR number from a web URL like
// https://github.com/acme/widgets/pull/123.
func numberFromURL(prURL string) (int, error) {
	segments := strings.Split(strings.TrimRight(prURL, "/"), "/")
	last := segments[len(segments)-1]
	number, err := strconv.Atoi(last)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("could not extract number from URL %q", prURL)
	}
	return number, nil
}
