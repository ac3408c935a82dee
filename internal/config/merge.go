package config

// MergeLocal merges a per-repo config into the global config, returning a
// new Config without mutating the global. Returns global unchanged if local
// is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// Shallow copy; fields with no local counterpart (UI) are inherited as-is.
	merged := *global

	if local.Repo.Upstream != "" {
		merged.Repo.Upstream = local.Repo.Upstream
	}
	if local.Repo.BaseBranch != "" {
		merged.Repo.BaseBranch = local.Repo.BaseBranch
	}
	if local.Repo.OriginRemote != "" {
		merged.Repo.OriginRemote = local.Repo.OriginRemote
	}
	if local.Repo.UpstreamRemote != "" {
		merged.Repo.UpstreamRemote = local.Repo.UpstreamRemote
	}

	if local.Branch.Prefix != nil {
		merged.Branch.Prefix = *local.Branch.Prefix
	}
	if local.Branch.Backup != nil {
		merged.Branch.Backup = *local.Branch.Backup
	}

	if local.Worktree.Dir != "" {
		merged.Worktree.Dir = local.Worktree.Dir
	}

	if local.Sync.Strategy != "" {
		merged.Sync.Strategy = local.Sync.Strategy
	}
	if local.Sync.Autostash != nil {
		merged.Sync.Autostash = *local.Sync.Autostash
	}

	if local.PR.Draft != nil {
		merged.PR.Draft = *local.PR.Draft
	}
	if local.PR.BodyTemplate != "" {
		merged.PR.BodyTemplate = local.PR.BodyTemplate
	}

	if local.Forge.Name != "" {
		merged.Forge.Name = local.Forge.Name
	}
	if local.Forge.Host != "" {
		merged.Forge.Host = local.Forge.Host
	}
	if local.Forge.SSH != nil {
		merged.Forge.SSH = *local.Forge.SSH
	}

	// Hooks replace as a unit; mixing lists would make ordering surprising.
	if local.Hooks.PostCreate != nil {
		merged.Hooks.PostCreate = local.Hooks.PostCreate
	}

	if len(local.Preserve.Patterns) > 0 {
		merged.Preserve.Patterns = appendUnique(global.Preserve.Patterns, local.Preserve.Patterns)
	}
	if len(local.Preserve.Exclude) > 0 {
		merged.Preserve.Exclude = appendUnique(global.Preserve.Exclude, local.Preserve.Exclude)
	}

	return &merged
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}

	result := make([]string, len(base))
	copy(result, base)

	for _, v := range extra {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
