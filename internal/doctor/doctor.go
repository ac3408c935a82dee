package doctor

import (
	"context"
	"fmt"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

// Run executes the environment checks in order, printing one line per
// check. It returns an error when any check failed so the command exits
// non-zero; warnings alone do not.
//
// The git and repository checks gate the rest: without git or a work
// tree the remaining checks cannot produce anything useful, so Run
// reports them and stops.
func Run(ctx context.Context, cfg config.Config, startDir string) error {
	p := output.FromContext(ctx)

	var stats Stats
	var st state

	report := func(r Result) {
		stats.add(r)
		p.Printf("  %s %s: %s\n", symbol(r.Status), r.Name, r.Detail)
		if r.Hint != "" && r.Status != StatusOK {
			p.Printf("      %s\n", styles.MutedStyle.Render(r.Hint))
		}
	}

	r := checkGit(ctx)
	report(r)
	if r.Status == StatusFail {
		return summarize(p, stats)
	}

	r = checkRepository(ctx, &st, startDir)
	report(r)
	if r.Status == StatusFail {
		return summarize(p, stats)
	}

	report(checkOriginRemote(ctx, cfg, &st))
	report(checkForkOwner(&st))
	report(checkUpstreamRemote(ctx, cfg, &st))
	report(checkUpstreamRepo(cfg, &st))
	report(checkBaseBranch(ctx, cfg, &st))
	report(checkForgeCLI(ctx, cfg, &st))
	report(checkWorkingTree(ctx, &st))

	return summarize(p, stats)
}

func symbol(s Status) string {
	switch s {
	case StatusOK:
		return styles.OK()
	case StatusWarn:
		return styles.Warn()
	default:
		return styles.Fail()
	}
}

// summarize prints the closing count line and returns an error when any
// check failed.
func summarize(p *output.Printer, stats Stats) error {
	p.Println()
	switch {
	case stats.Fail > 0:
		p.Printf("%d ok, %d warnings, %d failures\n", stats.OK, stats.Warn, stats.Fail)
		return fmt.Errorf("%d of %d checks failed", stats.Fail, stats.OK+stats.Warn+stats.Fail)
	case stats.Warn > 0:
		p.Printf("%d ok, %d warnings\n", stats.OK, stats.Warn)
		return nil
	default:
		p.Printf("%s All %d checks passed\n", styles.OK(), stats.OK)
		return nil
	}
}
