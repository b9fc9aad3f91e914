package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Score bands shared by progress bars and percentage labels.
const (
	lowScoreBelow = 33
	midScoreBelow = 66
)

// ScoreStyle returns red, yellow or green for a 0..100 score.
func ScoreStyle(pct int) lipgloss.Style {
	switch {
	case pct < lowScoreBelow:
		return StyleRed
	case pct < midScoreBelow:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Percent renders "58%" in its score color.
func Percent(pct int) string {
	return ScoreStyle(pct).Render(fmt.Sprintf("%d%%", pct))
}

// Pass renders a met criterion line such as "✓ Clear rubric provided".
func Pass(text string) string {
	return StyleGreen.Render("✓ " + text)
}

// Warn renders an unmet criterion line such as "⚠ Add specific evaluation criteria".
func Warn(text string) string {
	return StyleYellow.Render("⚠ " + text)
}

// Success renders a closing congratulation line.
func Success(text string) string {
	return StyleGreen.Bold(true).Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
