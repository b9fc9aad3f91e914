package formatter

import (
	"strings"

	"github.com/alexanderramin/assay/internal/app"
	"github.com/alexanderramin/assay/internal/prompt"
)

// variantPreviewRunes is how much of each variant is shown before "...".
const variantPreviewRunes = 200

// PromptCopiedMessage is shown after a successful clipboard copy.
const PromptCopiedMessage = "Prompt copied to clipboard!"

// FormatPrompt renders the composed prompt followed by variant previews.
func FormatPrompt(res *app.PromptResult) string {
	var b strings.Builder
	b.WriteString(RenderBox("Generated AI Prompt", StyleFg.Render(res.Prompt)))
	b.WriteString("\n\n")
	b.WriteString(FormatVariants(res.Variants))
	return b.String()
}

// FormatVariants renders each variant's title and a short preview.
func FormatVariants(variants []prompt.Variant) string {
	var b strings.Builder
	b.WriteString(Header("Prompt Variations"))
	b.WriteString("\n")
	for _, v := range variants {
		b.WriteString("\n")
		b.WriteString(Bold(v.Title) + " " + Dim("(--variant "+string(v.Name)+")") + "\n")
		b.WriteString(Dim(Preview(v.Text, variantPreviewRunes)) + "\n")
	}
	return b.String()
}

// FormatCopyFailure explains why the prompt could not be copied.
func FormatCopyFailure(err error) string {
	return Warn("Could not copy prompt: " + err.Error())
}
