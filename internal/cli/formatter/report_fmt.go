package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/assay/internal/app"
	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/alexanderramin/assay/internal/domain"
)

const (
	udlSuccessMessage       = "Excellent! Your assessment meets all UDL compliance criteria."
	alignmentSuccessMessage = "Excellent! Your assessment fully aligns with Quality Matters standards."
	inclusiveSuccessMessage = "Outstanding! Your assessment design is fully inclusive."
)

// FormatTypeDetails renders the guidance shown after choosing a type.
func FormatTypeDetails(d *app.TypeDetails) string {
	var b strings.Builder
	b.WriteString(Bold("Best Practices:") + "\n")
	b.WriteString(Bullets(d.Practices))
	b.WriteString("\n")
	b.WriteString(Bold("AI Enhancement Opportunities:") + "\n")
	b.WriteString(Bullets(d.AIOpportunities))
	return RenderBox(d.Title, b.String())
}

// FormatTypeList renders the assessment types with their focus.
func FormatTypeList(types []domain.AssessmentType, cat *catalog.Catalog) string {
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		focus := ""
		if content, ok := cat.TypeContent(t); ok && len(content.Practices) > 0 {
			focus = content.Practices[0]
		}
		rows = append(rows, []string{StylePurple.Render(string(t)), Bold(t.Title()), Dim(focus)})
	}
	return RenderTable([]string{"TYPE", "NAME", "KEY PRACTICE"}, rows)
}

// FormatUDLReport renders the UDL compliance report.
func FormatUDLReport(r *app.UDLReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold("Overall Compliance:"), Percent(r.Percentage))
	b.WriteString(RenderProgress(r.Percentage, DefaultBarWidth) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d criteria met", r.Checked, r.Total)) + "\n")

	if r.Compliant() {
		b.WriteString("\n" + Success(udlSuccessMessage) + "\n")
		return RenderBox("UDL Compliance Report", b.String())
	}

	b.WriteString("\n" + Bold("Areas for Improvement:") + "\n")
	b.WriteString(Bullets(r.UncheckedLabels))
	if len(r.Recommendations) > 0 {
		b.WriteString("\n" + Bold("Recommendations:") + "\n")
		b.WriteString(Bullets(r.Recommendations))
	}
	return RenderBox("UDL Compliance Report", b.String())
}

// FormatAlignment renders the Quality Matters alignment feedback.
func FormatAlignment(r *app.AlignmentReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold("QM Alignment Score:"), Percent(r.Percentage))
	b.WriteString(RenderProgress(r.Percentage, DefaultBarWidth) + "\n\n")

	for _, c := range r.Criteria {
		if c.Passed {
			b.WriteString(Pass(c.Message) + "\n")
		} else {
			b.WriteString(Warn(c.Message) + "\n")
		}
	}

	if len(r.SupportLabels) > 0 {
		b.WriteString("\n" + Bold("Learner Support:") + "\n")
		b.WriteString(Bullets(r.SupportLabels))
	}

	if r.FullyAligned {
		b.WriteString("\n" + Success(alignmentSuccessMessage) + "\n")
	} else {
		b.WriteString("\n" + Bold("Next Steps:") + "\n")
		b.WriteString(Bullets(r.NextSteps()))
	}
	return RenderBox("Quality Matters Alignment Feedback", b.String())
}

// FormatInclusive renders the inclusive-design report.
func FormatInclusive(r *app.InclusiveReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold("Overall Inclusivity Score:"), Percent(r.OverallScore))
	b.WriteString(RenderProgress(r.OverallScore, DefaultBarWidth) + "\n\n")

	b.WriteString(Bold("Category Breakdown:") + "\n")
	rows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		rows = append(rows, []string{
			StyleFg.Render(c.Category.Title()),
			fmt.Sprintf("%d/%d", c.Checked, c.Total),
			RenderCompactBar(c.Percentage, 8),
			Percent(c.Percentage),
		})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "CHECKED", "", "SCORE"}, rows))

	if r.FullyInclusive() {
		b.WriteString("\n" + Success(inclusiveSuccessMessage) + "\n")
	} else if len(r.Recommendations) > 0 {
		b.WriteString("\n" + Bold("Recommendations for Improvement:") + "\n")
		b.WriteString(Bullets(r.Recommendations))
	}
	return RenderBox("Inclusive Design Report", b.String())
}

// FormatChecklist lists a checklist's ids and labels. Checked ids are marked.
func FormatChecklist(title string, items []catalog.Item, checked map[string]bool) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		mark := Dim("[ ]")
		if checked[it.ID] {
			mark = StyleGreen.Render("[x]")
		}
		rows = append(rows, []string{mark, StyleBlue.Render(it.ID), StyleFg.Render(it.Label)})
	}
	return Header(title) + "\n" + RenderTable([]string{"", "ID", "LABEL"}, rows)
}
