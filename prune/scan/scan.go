package scan

import "github.com/beevik/etree"

// Region is a maximal run of body elements judged to contain no visible
// content. Indices are positions in the body element list handed to the
// policy; they remain valid until elements are actually removed.
type Region struct {
	// Start and End are the first and last deletable element indices.
	Start int
	End   int

	// Count is the number of deletable elements in the region.
	Count int

	// Indices lists every deletable element index, ascending.
	Indices []int
}

// Policy classifies a document body into empty regions. Implementations
// process the element list in a single forward pass and must not retain
// or mutate the slice. A region list is computed fresh on each call.
type Policy interface {
	// Name identifies the policy in logs and prompts.
	Name() string

	// Scan returns the empty regions found in elements, in document order.
	Scan(elements []*etree.Element) []Region
}

// newRegion builds a Region from a non-empty, ascending index run.
func newRegion(indices []int) Region {
	out := make([]int, len(indices))
	copy(out, indices)
	return Region{
		Start:   out[0],
		End:     out[len(out)-1],
		Count:   len(out),
		Indices: out,
	}
}
