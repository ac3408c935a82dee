package forge

import (
	"context"
)

// Normalized PR/MR states. GitLab's opened/merged/closed are mapped onto
// these; GitHub reports them natively.
const (
	PRStateOpen   = "OPEN"
	PRStateMerged = "MERGED"
	PRStateClosed = "CLOSED"
)

// PR describes an existing pull/merge request.
type PR struct {
	Number  int
	State   string // PRStateOpen, PRStateMerged, PRStateClosed
	IsDraft bool
	URL     string
}

// CreatePRParams contains parameters for creating a PR/MR.
type CreatePRParams struct {
	Title string
	Body  string
	Base  string // base branch in the target repo (empty = repo default)
	Head  string // head ref; "owner:branch" when the head lives in a fork
	Draft bool
}

// Forge is a git hosting service driven through its CLI (gh, glab).
// Repo arguments are "owner/name" project specs as accepted by the CLI's
// -R flag.
type Forge interface {
	// Name returns the forge name ("github" or "gitlab")
	Name() string

	// CLIName returns the binary the implementation shells out to.
	CLIName() string

	// Check verifies the CLI is installed and authenticated
	Check(ctx context.Context) error

	// CurrentUser returns the authenticated username.
	CurrentUser(ctx context.Context) (string, error)

	// GetPRForBranch returns the newest PR whose head is the given ref,
	// in any state. Returns nil when no PR exists.
	GetPRForBranch(ctx context.Context, repo, head string) (*PR, error)

	// CreatePR opens a new PR/MR and returns it.
	CreatePR(ctx context.Context, repo string, params CreatePRParams) (*PR, error)

	// ViewPR shows a PR. With web it opens the browser and returns no
	// output; otherwise it returns the CLI's textual rendering.
	ViewPR(ctx context.Context, repo string, number int, web bool) (string, error)
}

// FormatState returns a human-readable state, folding the draft flag into
// open PRs. A nil PR formats as the empty string.
func FormatState(pr *PR) string {
	if pr == nil {
		return ""
	}
	switch pr.State {
	case PRStateOpen:
		if pr.IsDraft {
			return "draft"
		}
		return "open"
	case PRStateMerged:
		return "merged"
	case PRStateClosed:
		return "closed"
	default:
		return ""
	}
}
