package report

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for report rendering.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	NameStyle = lipgloss.NewStyle().
			Bold(true)

	MissingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Quality colors grade locations from well constrained to weak.
var qualityColors = map[string]lipgloss.Color{
	"A": ColorSuccess,
	"B": ColorPrimary,
	"C": ColorWarning,
	"D": ColorError,
}

// QualityStyle returns a foreground style for a location quality code.
// Unknown codes render muted.
func QualityStyle(quality string) lipgloss.Style {
	if color, ok := qualityColors[quality]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return MissingStyle
}
