package catalog

import "github.com/alexanderramin/assay/internal/domain"

// Checklist names used in errors and on the command line.
const (
	ChecklistUDL       = "udl"
	ChecklistInclusive = "inclusive"
	ChecklistSupport   = "support"
)

// UDLItems builds the UDL checklist in catalog order with the given ids checked.
func (c *Catalog) UDLItems(checked map[string]bool) ([]domain.ChecklistItem, error) {
	return buildItems(ChecklistUDL, c.UDL.Items, checked)
}

// InclusiveItems builds the inclusive-design checklist with the given ids checked.
func (c *Catalog) InclusiveItems(checked map[string]bool) ([]domain.ChecklistItem, error) {
	return buildItems(ChecklistInclusive, c.Inclusive.Items, checked)
}

// ValidateSupport checks that every id names a support option.
func (c *Catalog) ValidateSupport(ids []string) error {
	for _, id := range ids {
		if _, ok := c.SupportLabel(id); !ok {
			return &domain.UnknownItemError{Checklist: ChecklistSupport, ID: id}
		}
	}
	return nil
}

// Items returns the configured items of the named checklist.
func (c *Catalog) Items(checklist string) ([]Item, bool) {
	switch checklist {
	case ChecklistUDL:
		return c.UDL.Items, true
	case ChecklistInclusive:
		return c.Inclusive.Items, true
	case ChecklistSupport:
		return c.Support, true
	}
	return nil, false
}

// InclusiveCategory returns the category an inclusive item id belongs to.
func (c *Catalog) InclusiveCategory(id string) (domain.Category, bool) {
	return c.Classifier()(id)
}

func buildItems(checklist string, cfg []Item, checked map[string]bool) ([]domain.ChecklistItem, error) {
	known := make(map[string]bool, len(cfg))
	items := make([]domain.ChecklistItem, 0, len(cfg))
	for _, it := range cfg {
		known[it.ID] = true
		items = append(items, domain.ChecklistItem{
			ID:      it.ID,
			Label:   it.Label,
			Checked: checked[it.ID],
		})
	}
	for id := range checked {
		if !known[id] {
			return nil, &domain.UnknownItemError{Checklist: checklist, ID: id}
		}
	}
	return items, nil
}
