package doctor

import (
	"context"
	"fmt"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/forge"
	"github.com/smorinlabs/worktreeflow/internal/git"
)

// state carries findings forward between checks; later checks depend on
// what earlier ones discovered.
type state struct {
	repoRoot  string
	originURL string
	origin    git.RemoteURL
	hasOrigin bool

	upstream    git.RemoteURL
	hasUpstream bool

	upstreamSpec string // resolved "owner/name", however it was found
}

func checkGit(ctx context.Context) Result {
	if err := git.CheckGit(); err != nil {
		return Result{
			Name:   "git",
			Status: StatusFail,
			Detail: "not found in PATH",
			Hint:   "install git (https://git-scm.com)",
		}
	}
	version, err := git.Version(ctx)
	if err != nil {
		return Result{Name: "git", Status: StatusWarn, Detail: "installed, version unknown"}
	}
	return Result{Name: "git", Status: StatusOK, Detail: "version " + version}
}

func checkRepository(ctx context.Context, st *state, startDir string) Result {
	root, err := git.GetRepoRoot(ctx, startDir)
	if err != nil {
		return Result{
			Name:   "repository",
			Status: StatusFail,
			Detail: "not inside a git work tree",
			Hint:   "run wtf from inside a clone of your fork",
		}
	}
	st.repoRoot = root
	return Result{Name: "repository", Status: StatusOK, Detail: root}
}

func checkOriginRemote(ctx context.Context, cfg config.Config, st *state) Result {
	name := cfg.Repo.OriginRemote
	url, err := git.GetRemoteURL(ctx, st.repoRoot, name)
	if err != nil {
		return Result{
			Name:   "origin remote",
			Status: StatusFail,
			Detail: fmt.Sprintf("remote %q not configured", name),
			Hint:   fmt.Sprintf("git remote add %s <fork-url>", name),
		}
	}
	st.originURL = url
	remote, err := git.ParseRemoteURL(url)
	if err != nil {
		return Result{
			Name:   "origin remote",
			Status: StatusFail,
			Detail: fmt.Sprintf("cannot parse %q", url),
		}
	}
	st.origin = remote
	st.hasOrigin = true
	return Result{Name: "origin remote", Status: StatusOK, Detail: remote.Spec() + " on " + remote.Host}
}

func checkForkOwner(st *state) Result {
	if !st.hasOrigin {
		return Result{
			Name:   "fork owner",
			Status: StatusFail,
			Detail: "unknown without a parseable origin remote",
		}
	}
	return Result{Name: "fork owner", Status: StatusOK, Detail: st.origin.Owner}
}

func checkUpstreamRemote(ctx context.Context, cfg config.Config, st *state) Result {
	name := cfg.Repo.UpstreamRemote
	url, err := git.GetRemoteURL(ctx, st.repoRoot, name)
	if err != nil {
		return Result{
			Name:   "upstream remote",
			Status: StatusWarn,
			Detail: fmt.Sprintf("remote %q not configured", name),
			Hint:   "wtf upstream-add <owner/repo>",
		}
	}
	remote, err := git.ParseRemoteURL(url)
	if err != nil {
		return Result{
			Name:   "upstream remote",
			Status: StatusFail,
			Detail: fmt.Sprintf("cannot parse %q", url),
		}
	}
	st.upstream = remote
	st.hasUpstream = true
	return Result{Name: "upstream remote", Status: StatusOK, Detail: remote.Spec() + " on " + remote.Host}
}

func checkUpstreamRepo(cfg config.Config, st *state) Result {
	switch {
	case st.hasUpstream:
		st.upstreamSpec = st.upstream.Spec()
		return Result{Name: "upstream repository", Status: StatusOK, Detail: st.upstreamSpec + " (from remote)"}
	case cfg.Repo.Upstream != "":
		st.upstreamSpec = cfg.Repo.Upstream
		return Result{Name: "upstream repository", Status: StatusOK, Detail: st.upstreamSpec + " (from config)"}
	default:
		return Result{
			Name:   "upstream repository",
			Status: StatusFail,
			Detail: "no upstream remote and no repo.upstream configured",
			Hint:   "wtf upstream-add <owner/repo>",
		}
	}
}

func checkBaseBranch(ctx context.Context, cfg config.Config, st *state) Result {
	base := cfg.Repo.BaseBranch
	if git.LocalBranchExists(ctx, st.repoRoot, base) {
		return Result{Name: "base branch", Status: StatusOK, Detail: base}
	}
	return Result{
		Name:   "base branch",
		Status: StatusFail,
		Detail: fmt.Sprintf("local branch %q does not exist", base),
		Hint:   "set repo.base_branch or create the branch",
	}
}

func checkForgeCLI(ctx context.Context, cfg config.Config, st *state) Result {
	f := forge.Detect(st.originURL, cfg.Forge.Name)
	if err := f.Check(ctx); err != nil {
		return Result{Name: "forge CLI", Status: StatusFail, Detail: err.Error()}
	}
	return Result{Name: "forge CLI", Status: StatusOK, Detail: f.CLIName() + " installed and authenticated"}
}

func checkWorkingTree(ctx context.Context, st *state) Result {
	status, err := git.GetStatus(ctx, st.repoRoot)
	if err != nil {
		return Result{Name: "working tree", Status: StatusWarn, Detail: "status unavailable: " + err.Error()}
	}
	if status.Clean() {
		return Result{Name: "working tree", Status: StatusOK, Detail: "clean"}
	}
	return Result{Name: "working tree", Status: StatusWarn, Detail: status.Summary()}
}
