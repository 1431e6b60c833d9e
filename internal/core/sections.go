package core

import "fmt"

// Section identifies one of the curated homepage lists.
type Section string

const (
	SectionBudget      Section = "budget-firms"
	SectionTop         Section = "top-firms"
	SectionTableReview Section = "table-review"
	SectionExplore     Section = "explore-firms"
)

// Collection names of the membership join tables.
const (
	ColBudgetProp       = "budget_prop"
	ColTop5Prop         = "top5_prop"
	ColTableReviewFirms = "table_review_firms"
	ColExploreFirms     = "explore_firms"
)

// ParseSection resolves a section key from a request, including the
// legacy "cheap-firms" alias for the budget section.
func ParseSection(key string) (Section, error) {
	switch key {
	case "budget-firms", "cheap-firms":
		return SectionBudget, nil
	case "top-firms":
		return SectionTop, nil
	case "table-review":
		return SectionTableReview, nil
	case "explore-firms":
		return SectionExplore, nil
	default:
		return "", fmt.Errorf("invalid section %q", key)
	}
}

// Collection returns the join table backing the section.
func (s Section) Collection() string {
	switch s {
	case SectionBudget:
		return ColBudgetProp
	case SectionTop:
		return ColTop5Prop
	case SectionTableReview:
		return ColTableReviewFirms
	case SectionExplore:
		return ColExploreFirms
	}
	return ""
}

// FirmField returns the relation field pointing at prop_firms. The two
// legacy tables predate the naming cleanup.
func (s Section) FirmField() string {
	switch s {
	case SectionBudget, SectionTop:
		return "propfirm_id"
	default:
		return "firm_id"
	}
}

// LegacySections is the probing order for removals with an untagged
// membership id. Explore is tracked separately at every call site and
// never participates in the probe.
var LegacySections = []Section{SectionBudget, SectionTop, SectionTableReview}

// Sections lists every curated section in display order.
var Sections = []Section{SectionBudget, SectionTop, SectionTableReview, SectionExplore}
