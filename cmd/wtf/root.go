package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smorinlabs/worktreeflow/internal/config"
	"github.com/smorinlabs/worktreeflow/internal/git"
	"github.com/smorinlabs/worktreeflow/internal/log"
	"github.com/smorinlabs/worktreeflow/internal/output"
	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore  = "core"
	GroupSync  = "sync"
	GroupSetup = "setup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wtf",
	Short: "Fork-and-worktree feature branch workflow",
	Long: `wtf drives a fork-based feature workflow on top of git worktrees.

Each feature lives in its own worktree on its own branch, created from an
up-to-date base branch and cleaned up again once the pull request is merged.
wtf sequences the git and forge CLI calls for you: creating worktrees,
publishing branches, opening pull requests, rebasing onto upstream, and
keeping your fork's base branch in sync.

Run 'wtf tutorial' for a walkthrough or 'wtf doctor' to check your setup.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		styles.Init(cfg.UI.Theme)

		// Check git is available
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wtf: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'wtf -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Workflow:"},
		&cobra.Group{ID: GroupSync, Title: "Sync Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup & Diagnostics:"},
	)

	// Core workflow
	rootCmd.AddCommand(newWtNewCmd())
	rootCmd.AddCommand(newWtPublishCmd())
	rootCmd.AddCommand(newWtPRCmd())
	rootCmd.AddCommand(newWtUpdateCmd())
	rootCmd.AddCommand(newWtCleanCmd())
	rootCmd.AddCommand(newWtStatusCmd())
	rootCmd.AddCommand(newWtListCmd())

	// Sync
	rootCmd.AddCommand(newSyncMainCmd())
	rootCmd.AddCommand(newSyncMainForceCmd())
	rootCmd.AddCommand(newSyncRemoteCmd())

	// Setup & diagnostics
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newUpstreamAddCmd())
	rootCmd.AddCommand(newForkSetupCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTutorialCmd())
	rootCmd.AddCommand(newQuickstartCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wtf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.FromContext(cmd.Context()).Println(versionString())
		},
	}
}
