package summary

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleYellow is used for warning sections.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for the output location.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// SwatchStyle returns a style painting the background with key and a
// readable foreground. ok is false for keys that are not 6-digit hex.
func SwatchStyle(key string) (style lipgloss.Style, ok bool) {
	c, err := colorful.Hex(key)
	if err != nil {
		return lipgloss.NewStyle(), false
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(ContrastColor(c))), true
}

// ContrastColor picks black or white text for a background.
func ContrastColor(bg colorful.Color) string {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
