package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Interactive reports whether stdin is attached to a terminal. Prompts
// and the worktree selector are skipped when it returns false.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
