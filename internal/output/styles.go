package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these rather than inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: kinds, templates, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow marks defaults.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBoldRed is used for failures.
	ColorBoldRed = lipgloss.Color("204")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorHeader is used for table headers.
	ColorHeader = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDefault marks the default entry of a list.
	StyleDefault = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (prefixes, separators, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleFailure styles failure lines.
	StyleFailure = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatFailure renders a red cross with a message.
func FormatFailure(msg string) string {
	return StyleFailure.Render("✘") + " " + msg
}

// FormatDefault appends a dim "(default)" marker when isDefault is set.
func FormatDefault(name string, isDefault bool) string {
	if !isDefault {
		return name
	}
	return StyleDefault.Render(name) + " " + StyleDim.Render("(default)")
}

// FormatArguments renders an argument vector on one line, with the
// executable as a noun and flag names dimmed.
func FormatArguments(executable string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, StyleNoun.Render(executable))
	for _, a := range args {
		if strings.HasPrefix(a, "--") {
			parts = append(parts, StyleDim.Render(a))
			continue
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
