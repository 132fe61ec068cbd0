package scan

import "github.com/beevik/etree"

// DefaultMinRun is the default number of consecutive empty paragraphs
// treated as an empty page. A typical page holds roughly 25-30
// single-spaced lines, so 15 catches real blank pages without flagging
// ordinary paragraph spacing.
const DefaultMinRun = 15

// ThresholdPolicy emits maximal runs of at least Min consecutive empty
// paragraphs. A non-paragraph element, a paragraph with visible text, or
// a paragraph carrying a page-forcing break all terminate the current
// run. Runs shorter than Min are dropped without being reported.
type ThresholdPolicy struct {
	Min int
}

// NewThresholdPolicy creates a threshold policy. Values of min below 1
// fall back to DefaultMinRun.
func NewThresholdPolicy(min int) *ThresholdPolicy {
	if min < 1 {
		min = DefaultMinRun
	}
	return &ThresholdPolicy{Min: min}
}

// Name identifies the policy.
func (p *ThresholdPolicy) Name() string { return "threshold" }

// Scan walks the body elements once, O(n), no backtracking.
func (p *ThresholdPolicy) Scan(elements []*etree.Element) []Region {
	var regions []Region
	var run []int

	flush := func() {
		if len(run) >= p.Min {
			regions = append(regions, newRegion(run))
		}
		run = run[:0]
	}

	for i, el := range elements {
		if IsParagraph(el) && IsEmptyParagraph(el) && !HasPageForcingBreak(el) {
			run = append(run, i)
			continue
		}
		flush()
	}
	// A run touching the end of the document counts like any other.
	flush()

	return regions
}
