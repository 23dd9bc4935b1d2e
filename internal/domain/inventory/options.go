// Package inventory aggregates raw skill records into dashboard datasets.
package inventory

// Option applies a configuration option to the Inventory.
type Option func(*Inventory)

// WithRecords sets the raw skill records the inventory aggregates.
func WithRecords(records []Record) Option {
	return func(inv *Inventory) {
		inv.records = records
	}
}

// WithCategories sets the skill taxonomy used to form clusters.
func WithCategories(categories []Category) Option {
	return func(inv *Inventory) {
		inv.categories = categories
	}
}

// WithRequirements sets the required employee coverage per skill used
// for gap analysis. Skill names are matched after normalization.
func WithRequirements(requirements map[string]int) Option {
	return func(inv *Inventory) {
		if requirements == nil {
			return
		}
		norm := make(map[string]int, len(requirements))
		for skill, required := range requirements {
			norm[normalizeSkill(skill)] = required
		}
		inv.requirements = norm
	}
}
