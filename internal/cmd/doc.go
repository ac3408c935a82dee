// Package cmd executes external commands with captured stderr and
// context-aware cancellation.
//
// Arguments are always passed as a discrete argv list; nothing is ever routed
// through a shell, so user-supplied values (branch names, paths, titles)
// need no escaping at this boundary. A non-zero exit surfaces as *ExitError
// whose message is the command's own stderr.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "fetch", "upstream"); err != nil {
//	    return fmt.Errorf("failed to fetch upstream: %w", err)
//	}
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "branch", "--show-current")
//
// # Design Notes
//
// wtf shells out to the git/gh/glab CLIs rather than using Go libraries.
// This approach is simpler, more reliable, and ensures compatibility with
// user configurations (SSH keys, credential helpers, etc.).
package cmd
