package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/spf13/pflag"
)

// checklistFlags is the --checked/--all pair shared by the checklist stages.
type checklistFlags struct {
	checked []string
	all     bool
}

func (f *checklistFlags) register(fs *pflag.FlagSet, checklist string) {
	fs.StringSliceVar(&f.checked, "checked", nil,
		fmt.Sprintf("Comma-separated %s item ids that are met (see \"assay checklist %s\")", checklist, checklist))
	fs.BoolVar(&f.all, "all", false, "Mark every item as met")
}

// resolve turns the flags into a checked-id set. Unknown ids are left in
// the set so the session reports them.
func (f *checklistFlags) resolve(items []catalog.Item) map[string]bool {
	checked := make(map[string]bool, len(items))
	if f.all {
		for _, it := range items {
			checked[it.ID] = true
		}
	}
	for _, id := range splitIDs(f.checked) {
		checked[id] = true
	}
	return checked
}

// splitIDs trims and de-duplicates ids, dropping empties.
func splitIDs(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var ids []string
	for _, r := range raw {
		id := strings.TrimSpace(r)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// promptFlags holds the free-text prompt inputs.
type promptFlags struct {
	level   string
	subject string
	outcome string
	context string
}

func (f *promptFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.level, "level", "", "Course level, e.g. Undergraduate or Graduate (required)")
	fs.StringVar(&f.subject, "subject", "", "Subject area (required)")
	fs.StringVar(&f.outcome, "outcome", "", "Learning outcome the assessment measures (required)")
	fs.StringVar(&f.context, "context", "", "Additional context appended to the prompt")
}
