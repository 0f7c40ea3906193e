package strvec

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// IndexSet is a set of element positions.
// It wraps a 32-bit Roaring Bitmap.
type IndexSet struct {
	rb *roaring.Bitmap
}

// NewIndexSet creates a set holding the given indices.
// Indices outside [0, math.MaxUint32] panic.
func NewIndexSet(indices ...int) *IndexSet {
	s := &IndexSet{
		rb: roaring.New(),
	}
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Add adds an index to the set.
func (s *IndexSet) Add(i int) {
	if i < 0 || int64(i) > math.MaxUint32 {
		panic(fmt.Sprintf("strvec: index %d cannot be stored in an IndexSet", i))
	}
	s.rb.Add(uint32(i))
}

// Contains checks if an index is in the set.
func (s *IndexSet) Contains(i int) bool {
	if i < 0 || int64(i) > math.MaxUint32 {
		return false
	}
	return s.rb.Contains(uint32(i))
}

// IsEmpty returns true if the set is empty.
func (s *IndexSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of indices in the set.
func (s *IndexSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// Iterator returns the indices in ascending order.
func (s *IndexSet) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the indices in ascending order.
func (s *IndexSet) ToSlice() []int {
	out := make([]int, 0, s.rb.GetCardinality())
	for i := range s.Iterator() {
		out = append(out, i)
	}
	return out
}
