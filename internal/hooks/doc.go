// Package hooks runs user-configured commands after worktree creation.
//
// Hooks come from the [hooks] post_create config list. Each hook is a
// discrete argv list executed inside the new worktree; there is no shell,
// so expanded values never word-split or need quoting.
//
// Example config:
//
//	[hooks]
//	post_create = [
//	    ["npm", "install"],
//	    ["code", "{path}"],
//	]
//
// # Placeholder Substitution
//
// Placeholders are expanded per argument:
//
//   - {path}: absolute worktree path
//   - {branch}: feature branch name
//   - {repo}: repository name
//   - {slug}: feature slug
//
// A failing hook is reported as a warning; it never fails the command that
// created the worktree. Stderr of a failing hook is carried in the returned
// error.
package hooks
