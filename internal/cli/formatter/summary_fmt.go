package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/assay/internal/app"
)

// FormatSummary renders the end-of-session overview.
func FormatSummary(s app.Summary) string {
	var b strings.Builder

	typeName := Dim("Not selected")
	if s.TypeName != "" {
		typeName = StylePurple.Render(s.TypeName)
	}
	fmt.Fprintf(&b, "%s %s\n\n", Bold("Assessment Type:"), typeName)

	b.WriteString(Bold("UDL Compliance:") + "\n")
	if s.UDLAssessed {
		fmt.Fprintf(&b, "  %d of %d criteria met\n\n", s.UDLMet, s.UDLTotal)
	} else {
		b.WriteString("  " + Dim("Not yet assessed") + "\n\n")
	}

	b.WriteString(Bold("Quality Matters Alignment:") + "\n")
	fmt.Fprintf(&b, "  Learning objectives: %s\n", YesNo(s.ObjectivesDefined, "Defined", "Not defined"))
	fmt.Fprintf(&b, "  Assessment alignment: %s\n\n", YesNo(s.AlignmentDocumented, "Documented", "Not documented"))

	b.WriteString(Bold("Inclusive Design:") + "\n")
	if s.InclusiveScore != nil {
		fmt.Fprintf(&b, "  Overall inclusivity score: %s\n\n", Percent(*s.InclusiveScore))
	} else {
		b.WriteString("  " + Dim("Not yet assessed") + "\n\n")
	}

	b.WriteString(Bold("AI Prompt:") + "\n")
	b.WriteString("  " + YesNo(s.PromptGenerated, "Generated and ready to use", "Not yet generated") + "\n\n")

	fmt.Fprintf(&b, "%s %s\n", Bold("Progress:"), RenderProgress(s.Progress, DefaultBarWidth))
	return RenderBox("Assessment Design Summary", b.String())
}
