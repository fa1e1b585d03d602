package insights

import (
	"strings"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// CategoryOther is assigned when no keyword rule matches a description.
const CategoryOther = "Other"

// Categorizer assigns spending categories by keyword containment. Rules are
// evaluated in declaration order and the first match wins, so rule order in
// the configuration is semantically significant.
type Categorizer struct {
	rules []config.CategoryRule
}

// NewCategorizer builds a categorizer over the given ordered rules.
func NewCategorizer(rules []config.CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Categorize returns the category for one description.
func (c *Categorizer) Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return rule.Name
			}
		}
	}
	return CategoryOther
}

// Apply returns a copy of the dataset with Category set on every record.
// Applying it twice yields identical assignments.
func (c *Categorizer) Apply(ds domain.Dataset) domain.Dataset {
	out := ds.Clone()
	for i := range out {
		out[i].Category = c.Categorize(out[i].Description)
	}
	return out
}
