// Package format handles the tool's two template strings: the worktree
// placement format and the PR body template.
//
// # Worktree dir format
//
// Placeholders for worktree.dir config:
//
//   - {repo}: repository name
//   - {branch}: full branch name (prefix included)
//   - {slug}: feature name without the branch prefix
//
// The default "../wt/{repo}/{slug}" creates a sibling tree grouped by
// repository. Values are sanitized for the filesystem, so a branch like
// "feat/my-thing" renders as "feat-my-thing".
//
// # PR body template
//
// Placeholders for pr.body_template config: {commits} (a "- subject" bullet
// list), {branch} and {base}.
//
// # Validation
//
// Validate* functions reject unknown placeholders, naming the valid set.
// A worktree dir format must contain {branch} or {slug}; purely static
// directories would collide across features.
package format
