// Package config handles loading and validation of wtf configuration.
//
// Configuration is read from ~/.config/wtf/config.toml ($WTF_CONFIG
// overrides the location), with per-repo overrides merged from a .wtf.toml
// at the repository root. A missing file is not an error; defaults apply.
//
// # Key settings
//
//   - repo.upstream: "owner/name" fallback when no upstream remote exists
//   - repo.base_branch: the branch features fork from (default "main")
//   - branch.prefix: prepended to feature slugs (default "feat/")
//   - worktree.dir: placement format (default "../wt/{repo}/{slug}")
//   - sync.strategy: how wt-update integrates upstream ("rebase" or "merge")
//   - pr.body_template: PR body with a {commits} placeholder
//   - forge.name: "github", "gitlab", or empty to detect from the host
//
// # Per-repo overrides
//
// .wtf.toml uses the same sections; string fields left empty and unset
// pointer fields inherit the global value. Preserve patterns append instead
// of replacing, so a repo can add its own .env files to the global list.
package config
