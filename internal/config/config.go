package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/smorinlabs/worktreeflow/internal/format"
)

// EnvConfigPath overrides the global config file location when set.
const EnvConfigPath = "WTF_CONFIG"

// LocalConfigFileName is the per-repo override file, looked up at the
// repository root.
const LocalConfigFileName = ".wtf.toml"

// RepoConfig identifies the fork pair a repository participates in.
type RepoConfig struct {
	// Upstream is the "owner/name" of the upstream repository. Used as a
	// fallback when no upstream remote is configured; the remote URL wins
	// when both exist.
	Upstream       string `toml:"upstream"`
	BaseBranch     string `toml:"base_branch"`
	OriginRemote   string `toml:"origin_remote"`
	UpstreamRemote string `toml:"upstream_remote"`
}

// BranchConfig controls feature branch naming and safety branches.
type BranchConfig struct {
	Prefix string `toml:"prefix"` // prepended to slugs, e.g. "feat/"
	Backup bool   `toml:"backup"` // backup branches before history rewrites
}

// WorktreeConfig controls where feature worktrees are placed.
type WorktreeConfig struct {
	// Dir is a format string with {repo}, {branch} and {slug} placeholders.
	Dir string `toml:"dir"`
}

// SyncConfig controls how wt-update brings a feature branch up to date.
type SyncConfig struct {
	Strategy  string `toml:"strategy"` // "rebase" or "merge"
	Autostash bool   `toml:"autostash"`
}

// PRConfig holds pull request defaults.
type PRConfig struct {
	Draft bool `toml:"draft"`
	// BodyTemplate supports {commits}, {branch} and {base} placeholders.
	BodyTemplate string `toml:"body_template"`
}

// ForgeConfig selects and configures the hosting provider CLI.
type ForgeConfig struct {
	Name string `toml:"name"` // "github", "gitlab", or empty to detect from host
	Host string `toml:"host"`
	SSH  bool   `toml:"ssh"` // URL scheme for remotes fork-setup adds
}

// HooksConfig lists commands run after a worktree is created.
// Each entry is a discrete argv list, executed inside the new worktree with
// {path}, {branch}, {repo} and {slug} expanded per argument.
type HooksConfig struct {
	PostCreate [][]string `toml:"post_create"`
}

// PreserveConfig lists git-ignored files carried into new worktrees.
type PreserveConfig struct {
	Patterns []string `toml:"patterns"`
	Exclude  []string `toml:"exclude"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	Theme string `toml:"theme"` // "default" or "none"
}

// Config holds the wtf configuration.
type Config struct {
	Repo     RepoConfig     `toml:"repo"`
	Branch   BranchConfig   `toml:"branch"`
	Worktree WorktreeConfig `toml:"worktree"`
	Sync     SyncConfig     `toml:"sync"`
	PR       PRConfig       `toml:"pr"`
	Forge    ForgeConfig    `toml:"forge"`
	Hooks    HooksConfig    `toml:"hooks"`
	Preserve PreserveConfig `toml:"preserve"`
	UI       UIConfig       `toml:"ui"`
}

// DefaultBodyTemplate is the PR body used when none is configured.
const DefaultBodyTemplate = "## Changes\n\n{commits}\n\n## Testing\n\n- [ ] Tests pass\n- [ ] Manual testing completed"

// DefaultWorktreeDir places worktrees in a sibling tree grouped by repo name.
const DefaultWorktreeDir = "../wt/{repo}/{slug}"

// Enum values accepted by Load.
var (
	ValidStrategies = []string{"rebase", "merge"}
	ValidForges     = []string{"github", "gitlab"}
	ValidThemes     = []string{"default", "none"}
)

// Default returns the default configuration.
func Default() Config {
	return Config{
		Repo: RepoConfig{
			BaseBranch:     "main",
			OriginRemote:   "origin",
			UpstreamRemote: "upstream",
		},
		Branch: BranchConfig{
			Prefix: "feat/",
			Backup: true,
		},
		Worktree: WorktreeConfig{
			Dir: DefaultWorktreeDir,
		},
		Sync: SyncConfig{
			Strategy: "rebase",
		},
		PR: PRConfig{
			BodyTemplate: DefaultBodyTemplate,
		},
		Forge: ForgeConfig{
			Host: "github.com",
			SSH:  true,
		},
		UI: UIConfig{
			Theme: "default",
		},
	}
}

// Path returns the global config file location: $WTF_CONFIG when set,
// otherwise ~/.config/wtf/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wtf", "config.toml"), nil
}

// Load reads the global config file. A missing file yields Default() without
// error; a present but invalid file yields Default() and an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes and validates a config document, filling defaults for
// anything left unset.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := validateEnum("sync.strategy", c.Sync.Strategy, ValidStrategies, false); err != nil {
		return err
	}
	if err := validateEnum("forge.name", c.Forge.Name, ValidForges, true); err != nil {
		return err
	}
	if err := validateEnum("ui.theme", c.UI.Theme, ValidThemes, false); err != nil {
		return err
	}
	if err := validateUpstreamSpec(c.Repo.Upstream); err != nil {
		return err
	}
	if err := validateRemoteName("repo.origin_remote", c.Repo.OriginRemote); err != nil {
		return err
	}
	if err := validateRemoteName("repo.upstream_remote", c.Repo.UpstreamRemote); err != nil {
		return err
	}
	if c.Repo.OriginRemote == c.Repo.UpstreamRemote {
		return fmt.Errorf("repo.origin_remote and repo.upstream_remote must differ, both are %q", c.Repo.OriginRemote)
	}
	if strings.ContainsAny(c.Branch.Prefix, "~^:?*[\\ \t") {
		return fmt.Errorf("invalid branch.prefix %q: contains characters not allowed in branch names", c.Branch.Prefix)
	}
	if err := format.ValidateWorktreeDir(c.Worktree.Dir); err != nil {
		return fmt.Errorf("invalid worktree.dir: %w", err)
	}
	if err := format.ValidateBodyTemplate(c.PR.BodyTemplate); err != nil {
		return fmt.Errorf("invalid pr.body_template: %w", err)
	}
	for i, argv := range c.Hooks.PostCreate {
		if len(argv) == 0 {
			return fmt.Errorf("hooks.post_create[%d] is empty: each hook is an argv list like [\"npm\", \"install\"]", i)
		}
	}
	if err := validatePatterns("preserve.patterns", c.Preserve.Patterns); err != nil {
		return err
	}
	if err := validatePatterns("preserve.exclude", c.Preserve.Exclude); err != nil {
		return err
	}
	return nil
}

const defaultConfig = `# wtf configuration

# Identify the fork pair this machine works with. The upstream remote URL
# always wins when the remote exists; repo.upstream is the fallback for
# repositories that have not run "wtf upstream-add" yet.
#
# [repo]
# upstream = "acme/widgets"     # "owner/name" of the upstream repository
# base_branch = "main"
# origin_remote = "origin"
# upstream_remote = "upstream"

# Feature branch naming.
#
# [branch]
# prefix = "feat/"              # wt-new my-thing -> feat/my-thing
# backup = true                 # backup branches before history rewrites

# Where feature worktrees live. Placeholders: {repo}, {branch}, {slug}.
# Relative paths are resolved against the repository root, so the default
# creates a sibling tree: <repo>/../wt/<repo-name>/<slug>.
#
# [worktree]
# dir = "../wt/{repo}/{slug}"

# How wt-update brings a feature branch up to date.
#
# [sync]
# strategy = "rebase"           # rebase or merge
# autostash = false             # stash/unstash around updates automatically

# Pull request defaults for wt-pr. The body template supports {commits}
# (bullet list of subjects), {branch} and {base}.
#
# [pr]
# draft = false
# body_template = """
# ## Changes
#
# {commits}
# """

# Hosting provider CLI. Leave name empty to detect from the origin
# remote's host (github.com -> gh, gitlab -> glab).
#
# [forge]
# name = ""                     # github or gitlab
# host = "github.com"
# ssh = true                    # scheme for remotes added by fork-setup

# Commands run inside a new worktree after wt-new. Each entry is an argv
# list; {path}, {branch}, {repo} and {slug} are expanded per argument.
#
# [hooks]
# post_create = [
#   ["npm", "install"],
#   ["code", "{path}"],
# ]

# Git-ignored files copied from the main checkout into new worktrees.
#
# [preserve]
# patterns = [".env", ".env.*"]
# exclude = [".env.production"]

# [ui]
# theme = "default"             # default or none
`

// Init writes a commented default config file and returns its path.
// Refuses to overwrite an existing file unless force is set.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
