package main

import (
	"context"

	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

// runForkSetup converts a plain clone of the upstream repository into the
// fork layout: the original remote becomes upstream, and the caller's fork
// (owner from the forge CLI) comes in as origin.
func runForkSetup(ctx context.Context, st *repoState) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	origin := st.cfg.Repo.OriginRemote
	upstream := st.cfg.Repo.UpstreamRemote

	if git.HasRemote(ctx, st.root, upstream) {
		return preconditionf("remote %q already exists, fork setup looks done: check with wtf doctor", upstream)
	}
	if err := st.requireOrigin(); err != nil {
		return err
	}

	if err := st.forge.Check(ctx); err != nil {
		return err
	}
	user, err := st.forge.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if st.origin.Owner == user {
		return preconditionf("%q already points at %s, which is your own repository: add the original as upstream with wtf upstream-add", origin, st.origin.Spec())
	}

	if err := git.RenameRemote(ctx, st.root, origin, upstream); err != nil {
		return err
	}
	out.Printf("%s Renamed remote %s to %s (%s)\n", styles.OK(), origin, upstream, st.origin.Spec())

	forkURL := git.BuildRemoteURL(st.origin.Host, user+"/"+st.origin.Name, st.cfg.Forge.SSH)
	if err := git.AddRemote(ctx, st.root, origin, forkURL); err != nil {
		return err
	}
	out.Printf("%s Added remote %s: %s\n", styles.OK(), origin, forkURL)

	l.Printf("Fetching %s\n", origin)
	if err := git.Fetch(ctx, st.root, origin); err != nil {
		l.Printf("Warning: fetching %s: %v\n", origin, err)
		l.Printf("If the fork does not exist yet, create it first: %s repo fork %s\n", st.forge.CLIName(), st.origin.Spec())
	}

	out.Printf("%s wtf doctor\n", styles.Arrow())
	return nil
}
