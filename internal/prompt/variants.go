package prompt

import (
	"fmt"
	"strings"
)

type VariantName string

const (
	VariantQuick      VariantName = "quick"
	VariantDetailed   VariantName = "detailed"
	VariantAIEnhanced VariantName = "ai-enhanced"
)

// Variant is a derived version of the base prompt.
type Variant struct {
	Name  VariantName
	Title string
	Text  string
}

const quickLines = 3

const quickClosing = "Create a simple, accessible assessment with clear instructions and rubric."

const detailedAppendix = `Additionally, include:
- Pre-assessment preparation guide
- Post-assessment reflection prompts
- Peer review components
- Extension activities for advanced students
- Remediation paths for struggling students`

const aiEnhancedAppendix = `Incorporate AI tools for:
- Automated feedback generation
- Adaptive questioning
- Performance analytics
- Plagiarism detection
- Personalized learning recommendations`

// Quick keeps the first three lines of base and adds a closing sentence.
func Quick(base string) string {
	lines := strings.Split(base, "\n")
	if len(lines) > quickLines {
		lines = lines[:quickLines]
	}
	return strings.Join(lines, "\n") + "\n\n" + quickClosing
}

// Detailed appends preparation, reflection and differentiation requests.
func Detailed(base string) string {
	return base + "\n\n" + detailedAppendix
}

// AIEnhanced appends requests for AI-supported assessment features.
func AIEnhanced(base string) string {
	return base + "\n\n" + aiEnhancedAppendix
}

// Variants derives Quick, Detailed and AI-Enhanced versions, in that order.
func Variants(base string) []Variant {
	return []Variant{
		{Name: VariantQuick, Title: "Quick Version", Text: Quick(base)},
		{Name: VariantDetailed, Title: "Detailed Version", Text: Detailed(base)},
		{Name: VariantAIEnhanced, Title: "AI-Enhanced Version", Text: AIEnhanced(base)},
	}
}

// ParseVariantName accepts a variant name; "base" and "" select the base prompt.
func ParseVariantName(s string) (VariantName, error) {
	switch v := VariantName(strings.ToLower(strings.TrimSpace(s))); v {
	case "", "base":
		return "", nil
	case VariantQuick, VariantDetailed, VariantAIEnhanced:
		return v, nil
	case "ai":
		return VariantAIEnhanced, nil
	}
	return "", fmt.Errorf("unknown prompt variant %q (want quick, detailed or ai-enhanced)", s)
}

// Select returns the text of the named variant, or base when name is empty.
func Select(base string, name VariantName) string {
	switch name {
	case VariantQuick:
		return Quick(base)
	case VariantDetailed:
		return Detailed(base)
	case VariantAIEnhanced:
		return AIEnhanced(base)
	}
	return base
}
