// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Search match highlight (Catppuccin yellow)
	MatchColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}

	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	HelpStyle        = lipgloss.NewStyle().Foreground(TextMutedColor)
	StatusStyle      = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	ErrorStyle       = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	MatchStyle       = lipgloss.NewStyle().Foreground(MatchColor).Underline(true)

	// LabelStyle renders field names in CLI reports (e.g. "length:").
	LabelStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Bold(true)
)
