package styles

import "github.com/smorinlabs/worktreeflow/internal/forge"

// Status symbols used across command output.
const (
	SymbolOK    = "✓"
	SymbolFail  = "✗"
	SymbolWarn  = "⚠"
	SymbolArrow = "→"
)

// OK renders a green check mark.
func OK() string {
	return SuccessStyle.Render(SymbolOK)
}

// Fail renders a red cross.
func Fail() string {
	return ErrorStyle.Render(SymbolFail)
}

// Warn renders a yellow warning sign.
func Warn() string {
	return WarningStyle.Render(SymbolWarn)
}

// Arrow renders a muted arrow, used for suggested actions.
func Arrow() string {
	return MutedStyle.Render(SymbolArrow)
}

// PRState renders a colored PR state word: green open, dimmed draft,
// accented merged, red closed. A nil PR or unknown state renders empty.
func PRState(pr *forge.PR) string {
	label := forge.FormatState(pr)
	switch label {
	case "open":
		return SuccessStyle.Render(label)
	case "draft":
		return MutedStyle.Render(label)
	case "merged":
		return AccentStyle.Render(label)
	case "closed":
		return ErrorStyle.Render(label)
	default:
		return ""
	}
}
