package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for terminal output.
type Theme struct {
	Primary lipgloss.TerminalColor // headers, titles
	Accent  lipgloss.TerminalColor // selected items, merged PRs
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor // dimmed text
	Normal  lipgloss.TerminalColor
}

var (
	// DefaultTheme is the standard palette.
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),
		Accent:  lipgloss.Color("212"),
		Success: lipgloss.Color("82"),
		Error:   lipgloss.Color("196"),
		Warning: lipgloss.Color("214"),
		Muted:   lipgloss.Color("240"),
		Normal:  lipgloss.Color("252"),
	}

	// NoneTheme renders without any colors (terminal defaults).
	// Bold and underline are kept.
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
	}
)

var currentTheme = DefaultTheme

// Current returns the active theme.
func Current() Theme {
	return currentTheme
}

// Init applies the configured theme name ("default" or "none"). Call after
// loading config and before rendering any output. Config validation rejects
// other names; anything unexpected falls back to the default palette.
func Init(name string) {
	switch name {
	case "none":
		currentTheme = NoneTheme
	default:
		currentTheme = DefaultTheme
	}
	apply(currentTheme)
}

// apply rebuilds the package-level styles from a theme.
func apply(t Theme) {
	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
}
