package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/assay/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	content = strings.TrimRight(content, "\n")
	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Bullets renders one "  • item" line per entry.
func Bullets(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString("  ")
		b.WriteString(StyleBlue.Render("•"))
		b.WriteString(" ")
		b.WriteString(StyleFg.Render(it))
		b.WriteString("\n")
	}
	return b.String()
}

// Numbered renders "  1. item" lines.
func Numbered(items []string) string {
	var b strings.Builder
	for i, it := range items {
		b.WriteString("  ")
		b.WriteString(Bold(strconv.Itoa(i+1) + "."))
		b.WriteString(" ")
		b.WriteString(StyleFg.Render(it))
		b.WriteString("\n")
	}
	return b.String()
}

// Preview shortens text to at most n runes, adding "..." when cut.
func Preview(text string, n int) string {
	r := []rune(text)
	if n <= 0 || len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}

// TypeBadge returns the purple-styled assessment type name, or a dimmed
// placeholder when no type is selected.
func TypeBadge(t *domain.AssessmentType) string {
	if t == nil || *t == "" {
		return StyleDim.Render("Not selected")
	}
	return StylePurple.Render(t.Name())
}

// YesNo picks the label matching ok and colors it.
func YesNo(ok bool, yes, no string) string {
	if ok {
		return StyleGreen.Render(yes)
	}
	return StyleYellow.Render(no)
}
