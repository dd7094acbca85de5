package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: bundle names, paths, modules.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "accepted" status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "changed" status and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "rejected" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Parse status constants.
const (
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusChanged   = "changed"
	StatusUnchanged = "unchanged"
)

// StatusStyle returns the lipgloss style for a given status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusAccepted:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusChanged:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusRejected:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// Styles groups the styles used by diff rendering.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// GetStyles returns the default diff styles.
func GetStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
	}
}

// minPackageColumnWidth keeps status words aligned across lines.
const minPackageColumnWidth = 40

// FormatPackageLine renders a package path with a right-aligned,
// color-coded status suffix.
//
// Format: p:<path>  <status>
func FormatPackageLine(path, status string) string {
	padding := minPackageColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("p:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatSummary renders the closing line of a batch run.
func FormatSummary(accepted, rejected int) string {
	return StyleSummary.Render(fmt.Sprintf("%d accepted, %d rejected", accepted, rejected))
}
