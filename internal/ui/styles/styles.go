// Package styles provides the shared lipgloss palette for terminal output.
//
// Color degradation for NO_COLOR and non-TTY output happens in the lipgloss
// renderer. The "none" theme additionally drops all colors while keeping
// bold and underline, for terminals where even degraded colors are unwanted.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles derived from the active theme. Init rebuilds them when the theme
// changes.
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Primary)
	AccentStyle  = lipgloss.NewStyle().Foreground(DefaultTheme.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(DefaultTheme.Error)
	WarningStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(DefaultTheme.Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(DefaultTheme.Normal)
)
