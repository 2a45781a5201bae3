// Package bloom provides input deduplication for batch conversion
// using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for deduplicating source paths across a
// batch run.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an item to the filter.
func (f *Filter) Add(item string) {
	f.f.AddString(item)
}

// Test returns true if the item might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(item string) bool {
	return f.f.TestString(item)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
