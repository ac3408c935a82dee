package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui"
	"github.com/smorinlabs/worktreeflow/internal/ui/prompt"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage wtf configuration",
		GroupID: GroupSetup,
		Long: `Manage the wtf configuration file.

The global config lives at ~/.config/wtf/config.toml (override with
$WTF_CONFIG). A .wtf.toml at a repository root overrides it per repo.`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if !force {
				path, err := config.Path()
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err == nil {
					if !ui.Interactive() {
						return preconditionf("config file already exists: %s (rerun with --force to overwrite)", path)
					}
					ok, err := prompt.Confirm(fmt.Sprintf("Overwrite %s?", path))
					if err != nil {
						return err
					}
					if !ok {
						out.Println("Aborted")
						return nil
					}
					force = true
				}
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("%s Wrote %s\n", styles.OK(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		Long: `Print the effective configuration as TOML: defaults, the global config
file, and the repository's .wtf.toml merged in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			merged := effectiveConfig(ctx, workDir)
			return toml.NewEncoder(output.FromContext(ctx).Writer()).Encode(merged)
		},
	}
}
