package prune

import "github.com/tenebris-tech/docxprune/prune/scan"

// Selector decides which detected regions get removed. Returning an
// empty slice cancels the run without touching the file; returning an
// error aborts it.
type Selector interface {
	Select(regions []scan.Region) ([]scan.Region, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(regions []scan.Region) ([]scan.Region, error)

// Select calls f.
func (f SelectorFunc) Select(regions []scan.Region) ([]scan.Region, error) {
	return f(regions)
}

// AcceptAll returns a selector that accepts every detected region.
func AcceptAll() Selector {
	return SelectorFunc(func(regions []scan.Region) ([]scan.Region, error) {
		return regions, nil
	})
}

// AcceptNone returns a selector that accepts nothing.
func AcceptNone() Selector {
	return SelectorFunc(func(regions []scan.Region) ([]scan.Region, error) {
		return nil, nil
	})
}

// AcceptOrdinals returns a selector that accepts the regions at the
// given zero-based positions in the detected list. Out-of-range
// positions are ignored.
func AcceptOrdinals(ordinals ...int) Selector {
	want := make(map[int]bool, len(ordinals))
	for _, n := range ordinals {
		want[n] = true
	}
	return SelectorFunc(func(regions []scan.Region) ([]scan.Region, error) {
		var selected []scan.Region
		for i, region := range regions {
			if want[i] {
				selected = append(selected, region)
			}
		}
		return selected, nil
	})
}
