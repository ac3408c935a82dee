// Package git provides git operations via shell commands.
//
// All operations call the git CLI through [internal/cmd] with discrete
// argument lists rather than using Go git libraries. This keeps behavior
// identical to what users see on their own command line and ensures
// compatibility with user configurations (SSH keys, credential helpers,
// aliases).
//
// Every function takes a repository or worktree path explicitly; nothing
// depends on the process working directory. Functions that run a child
// process take a [context.Context] and stop on cancellation.
//
// # Errors
//
// Failed git commands surface as [cmd.ExitError] wrapped with the operation
// that failed. Unparseable git output yields [ParseError]. Two refs without
// a common ancestor yield an error matching [ErrNoMergeBase]; callers decide
// whether that is fatal.
package git
