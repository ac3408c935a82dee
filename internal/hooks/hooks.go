package hooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/smorinlabs/worktreeflow/internal/cmd"
	"github.com/smorinlabs/worktreeflow/internal/log"
)

// Context holds the values for placeholder expansion.
type Context struct {
	Path   string // absolute worktree path
	Branch string // feature branch name
	Repo   string // repository name
	Slug   string // feature slug
}

// ExpandArgs substitutes {path}, {branch}, {repo} and {slug} in each
// argument. Hooks run as discrete argv lists, so values need no quoting and
// an expanded value never splits into multiple arguments.
func ExpandArgs(args []string, hctx Context) []string {
	replacer := strings.NewReplacer(
		"{path}", hctx.Path,
		"{branch}", hctx.Branch,
		"{repo}", hctx.Repo,
		"{slug}", hctx.Slug,
	)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = replacer.Replace(a)
	}
	return out
}

// RunPostCreate runs each post_create hook inside the new worktree. A
// failing hook does not abort the remaining hooks; failures are returned
// for the caller to report as warnings.
func RunPostCreate(ctx context.Context, hooks [][]string, hctx Context) []error {
	logger := log.FromContext(ctx)

	var errs []error
	for _, argv := range hooks {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if len(argv) == 0 {
			continue
		}
		argv = ExpandArgs(argv, hctx)
		logger.Printf("Running hook: %s\n", strings.Join(argv, " "))
		if err := cmd.RunContext(ctx, hctx.Path, argv[0], argv[1:]...); err != nil {
			errs = append(errs, fmt.Errorf("hook %q: %w", argv[0], err))
		}
	}
	return errs
}
