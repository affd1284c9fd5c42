// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Common colors for different types of elements
var (
	ColorBlue     = lipgloss.Color("39")
	ColorOrange   = lipgloss.Color("208")
	ColorGreen    = lipgloss.Color("82")
	ColorYellow   = lipgloss.Color("228")
	ColorCyan     = lipgloss.Color("45")
	ColorRed      = lipgloss.Color("196")
	ColorGray     = lipgloss.Color("250")
	ColorWhite    = lipgloss.Color("15")
	ColorDarkGray = lipgloss.Color("240") // branch connectors
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ComponentStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	StagingStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	ProductionStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	EnabledStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, info string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(info),
		),
	)
}

// SlotText renders a deployment slot name, highlighting staging and production differently
func SlotText(slot string) string {
	if slot == "staging" {
		return StagingStyle.Render(slot)
	}
	return ProductionStyle.Render(slot)
}

// ToggleText renders a feature toggle state as "enabled" or "disabled"
func ToggleText(enabled bool) string {
	if enabled {
		return EnabledStyle.Render("enabled")
	}
	return DisabledStyle.Render("disabled")
}

// TruncateString shortens s to at most maxLength runes, marking the cut with "..." when there
// is room for it. A non-positive maxLength yields "".
func TruncateString(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
