package domain

// ChecklistItem is one checkbox of a checklist. ID is unique within its checklist.
type ChecklistItem struct {
	ID      string
	Label   string
	Checked bool
}

// CategoryTally is the checked/total count for one inclusive-design category.
type CategoryTally struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
}

// CheckedIDs returns the ids of checked items in sequence order.
func CheckedIDs(items []ChecklistItem) []string {
	var ids []string
	for _, it := range items {
		if it.Checked {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
