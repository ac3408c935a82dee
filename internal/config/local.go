package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/smorinlabs/worktreeflow/internal/format"
)

// LocalConfig holds per-repo overrides from .wtf.toml at the repository
// root. Pointer fields and zero-value strings mean "inherit from global".
type LocalConfig struct {
	Repo     LocalRepo      `toml:"repo"`
	Branch   LocalBranch    `toml:"branch"`
	Worktree LocalWorktree  `toml:"worktree"`
	Sync     LocalSync      `toml:"sync"`
	PR       LocalPR        `toml:"pr"`
	Forge    LocalForge     `toml:"forge"`
	Hooks    LocalHooks     `toml:"hooks"`
	Preserve PreserveConfig `toml:"preserve"` // appended to global
}

// LocalRepo holds per-repo fork identity overrides.
type LocalRepo struct {
	Upstream       string `toml:"upstream"`
	BaseBranch     string `toml:"base_branch"`
	OriginRemote   string `toml:"origin_remote"`
	UpstreamRemote string `toml:"upstream_remote"`
}

// LocalBranch holds branch naming overrides. Prefix is a pointer because an
// explicit empty prefix ("no prefix") is a meaningful override.
type LocalBranch struct {
	Prefix *string `toml:"prefix"`
	Backup *bool   `toml:"backup"`
}

// LocalWorktree holds placement overrides.
type LocalWorktree struct {
	Dir string `toml:"dir"`
}

// LocalSync holds update strategy overrides.
type LocalSync struct {
	Strategy  string `toml:"strategy"`
	Autostash *bool  `toml:"autostash"`
}

// LocalPR holds pull request overrides.
type LocalPR struct {
	Draft        *bool  `toml:"draft"`
	BodyTemplate string `toml:"body_template"`
}

// LocalForge holds forge overrides.
type LocalForge struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	SSH  *bool  `toml:"ssh"`
}

// LocalHooks replaces the global hook list when set.
type LocalHooks struct {
	PostCreate [][]string `toml:"post_create"`
}

// LoadLocal reads a per-repo .wtf.toml from the given repository root.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := local.validate(); err != nil {
		return nil, fmt.Errorf("invalid local config %s: %w", configFile, err)
	}

	return &local, nil
}

func (l *LocalConfig) validate() error {
	if l.Sync.Strategy != "" {
		if err := validateEnum("sync.strategy", l.Sync.Strategy, ValidStrategies, false); err != nil {
			return err
		}
	}
	if err := validateEnum("forge.name", l.Forge.Name, ValidForges, true); err != nil {
		return err
	}
	if err := validateUpstreamSpec(l.Repo.Upstream); err != nil {
		return err
	}
	if l.Worktree.Dir != "" {
		if err := format.ValidateWorktreeDir(l.Worktree.Dir); err != nil {
			return fmt.Errorf("invalid worktree.dir: %w", err)
		}
	}
	if l.PR.BodyTemplate != "" {
		if err := format.ValidateBodyTemplate(l.PR.BodyTemplate); err != nil {
			return fmt.Errorf("invalid pr.body_template: %w", err)
		}
	}
	for i, argv := range l.Hooks.PostCreate {
		if len(argv) == 0 {
			return fmt.Errorf("hooks.post_create[%d] is empty", i)
		}
	}
	return nil
}
