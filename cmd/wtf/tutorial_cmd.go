package main

import (
	"github.com/spf13/cobra"

	"github.com/smorinlabs/worktreeflow/internal/output"
)

const tutorialText = `The fork-and-worktree workflow

wtf assumes the triangular setup used by most open source projects: the
project's repository (upstream), your fork of it (origin), and a local
clone of the fork. Every feature gets its own branch in its own worktree,
so switching features never touches your other work.

1. One-time setup

   Fork the project on the forge, then either clone your fork and add the
   project as upstream:

     git clone git@github.com:you/widgets.git
     cd widgets
     wtf upstream-add acme/widgets

   or clone the project directly and let wtf rewire the remotes:

     git clone git@github.com:acme/widgets.git
     cd widgets
     wtf fork-setup

   Check the result:

     wtf doctor

2. Start a feature

     wtf wt-new search-index

   This fast-forwards your base branch from upstream, creates the branch
   feat/search-index in a fresh worktree, copies preserved files like .env
   into it, and runs your post-create hooks. cd into the printed path and
   work as usual.

3. Open a pull request

     wtf wt-pr search-index

   The branch is pushed to your fork first if needed. The PR targets the
   upstream repository, titled after your last commit, with the commit
   list as the body. Use --draft while it is not ready.

4. Keep the branch current

     wtf wt-update search-index

   Fetches upstream and rebases your branch onto the updated base, backing
   up your commits to a timestamped branch first and force-pushing (with
   lease) to your fork. Prefer merges? Use --merge or set
   sync.strategy = "merge".

5. After the merge

     wtf wt-clean search-index --confirm

   Removes the worktree, the local branch, and the branch on your fork.
   Without --confirm it only shows what would happen.

Between features, keep your fork's base branch in sync:

     wtf sync-main

See where everything stands at any time:

     wtf wt-list
     wtf wt-status search-index

Configuration lives at ~/.config/wtf/config.toml (wtf config init writes a
commented starter) with per-repo overrides in .wtf.toml.
`

const quickstartText = `wtf quickstart

  wtf fork-setup                     rewire a clone of the project for the
                                     fork workflow (or: wtf upstream-add)
  wtf doctor                         check the setup

  wtf wt-new <name>                  new branch + worktree from synced base
  wtf wt-publish <name>              push the branch to your fork
  wtf wt-pr <name>                   open a PR against upstream
  wtf wt-update <name>               rebase onto the updated base
  wtf wt-clean <name> --confirm      remove worktree, branch, remote branch

  wtf wt-list                        all feature worktrees
  wtf wt-status [name]               branch state and suggested next step

  wtf sync-main                      fast-forward base from upstream, push
                                     to fork
  wtf sync-remote                    update the fork's base without touching
                                     the local checkout

Run wtf tutorial for the full walkthrough.
`

func newTutorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tutorial",
		Short:   "Walk through the fork-and-worktree workflow",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.FromContext(cmd.Context()).Print(tutorialText)
		},
	}
}

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quickstart",
		Short:   "Command cheat sheet",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.FromContext(cmd.Context()).Print(quickstartText)
		},
	}
}
