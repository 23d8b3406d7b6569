// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/u-share/sortflow/internal/model"
)

var (
	// PrimaryColor is the main theme color (sorting green).
	PrimaryColor = lipgloss.Color("#4CAF50")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Category bin colors match the physical dustbin colors.
var categoryStyles = map[model.DisplayClass]lipgloss.Style{
	model.ClassRecyclable: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
	model.ClassHarmful:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F44336")),
	model.ClassKitchen:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50")),
	model.ClassOther:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9E9E9E")),
}

// CategoryStyle returns the style for a display class, falling back to the
// other-waste gray.
func CategoryStyle(class model.DisplayClass) lipgloss.Style {
	if s, ok := categoryStyles[class]; ok {
		return s
	}
	return categoryStyles[model.ClassOther]
}
