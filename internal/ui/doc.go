// Package ui provides terminal UI components for wtf command output.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// for interactive pieces and styled output:
//
//   - [Select]: fuzzy-filtered picker used when a command that needs a
//     worktree name is run without one
//   - [Spinner]: progress indicator for slow git and forge calls
//   - [Interactive]: reports whether stdin is a terminal; all prompts
//     and pickers are gated on it
//
// Interactive components render to stderr so that stdout carries only
// command output. Styling goes through the styles subpackage and so
// respects the configured theme; the static subpackage renders
// borderless tables for list output.
package ui
