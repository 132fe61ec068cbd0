package scan

import "github.com/beevik/etree"

// BreakPagesPolicy treats the body as a sequence of pages delimited by
// page-forcing breaks. An element carrying such a break closes the
// current page and belongs to it, but is never scheduled for deletion
// itself, so section layout survives the cleanup. A closed page whose
// remaining elements are all empty paragraphs is emitted as one region.
//
// The first page starts at the beginning of the document with no
// preceding break; the final page is closed at document end even when no
// trailing break exists.
type BreakPagesPolicy struct{}

// NewBreakPagesPolicy creates a break-delimited paging policy.
func NewBreakPagesPolicy() *BreakPagesPolicy { return &BreakPagesPolicy{} }

// Name identifies the policy.
func (p *BreakPagesPolicy) Name() string { return "pages" }

// Scan walks the body elements once, O(n), no backtracking.
func (p *BreakPagesPolicy) Scan(elements []*etree.Element) []Region {
	var regions []Region
	var page []int
	empty := true

	flush := func() {
		if empty && len(page) > 0 {
			regions = append(regions, newRegion(page))
		}
		page = page[:0]
		empty = true
	}

	for i, el := range elements {
		// Tables and other non-paragraph block content make a page
		// non-deletable regardless of their text.
		if !IsParagraph(el) {
			empty = false
		} else if !IsEmptyParagraph(el) {
			empty = false
		}

		if HasPageForcingBreak(el) {
			// The breaking element closes the page but stays.
			flush()
			continue
		}
		page = append(page, i)
	}
	flush()

	return regions
}
