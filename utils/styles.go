package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HighColor   = lipgloss.Color("#CC3333") // Dark red
	MediumColor = lipgloss.Color("#FF8800") // Orange
	LowColor    = lipgloss.Color("#228B22") // Forest green
	InfoColor   = lipgloss.Color("#4682B4") // Steel blue
	TextColor   = lipgloss.Color("#CCCCCC") // Light gray
	MutedColor  = lipgloss.Color("#888888") // Medium gray
	BorderColor = lipgloss.Color("#666666") // Dark gray
)

var (
	HighStyle   = lipgloss.NewStyle().Foreground(HighColor).Bold(true)
	MediumStyle = lipgloss.NewStyle().Foreground(MediumColor).Bold(true)
	LowStyle    = lipgloss.NewStyle().Foreground(LowColor).Bold(true)
	GoodStyle   = lipgloss.NewStyle().Foreground(LowColor).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(InfoColor)
	MutedStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	TextStyle   = lipgloss.NewStyle().Foreground(TextColor)
)

var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(InfoColor).
			Padding(0, 1).
			Bold(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	HelpBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Background(lipgloss.Color("#1a1a1a")).
			Padding(0, 1)
)

func GetPriorityStyle(priority string) lipgloss.Style {
	switch strings.ToUpper(priority) {
	case "HIGH":
		return HighStyle
	case "MEDIUM":
		return MediumStyle
	default:
		return LowStyle
	}
}

func GetPriorityIcon(priority string) string {
	switch strings.ToUpper(priority) {
	case "HIGH":
		return "🔴"
	case "MEDIUM":
		return "🟡"
	default:
		return "🟢"
	}
}

// TruncateString truncates a string to fit within maxWidth
func TruncateString(s string, maxWidth int) string {
	if len(s) <= maxWidth {
		return s
	}
	if maxWidth < 4 {
		return strings.Repeat(".", maxWidth)
	}
	return s[:maxWidth-3] + "..."
}

// PadRight pads a string to the right to reach the specified width
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// WrapText wraps text to fit within specified width
func WrapText(text string, width int) []string {
	if width < 10 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var currentLine []string
	currentLength := 0

	for _, word := range words {
		if currentLength+len(word)+len(currentLine) > width && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{word}
			currentLength = len(word)
		} else {
			currentLine = append(currentLine, word)
			currentLength += len(word)
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}

	return lines
}
