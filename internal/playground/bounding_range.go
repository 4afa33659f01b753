package playground

import (
	"iter"
	"math"
)

// BoundingRange tracks the smallest and largest value of one coordinate seen so far.
type BoundingRange struct {
	low  int
	high int
}

func newBoundingRange(seed int) *BoundingRange {
	return &BoundingRange{low: seed, high: seed}
}

// extend - widens the range to include value. It never narrows.
func (that *BoundingRange) extend(value int) {
	that.low = min(that.low, value)
	that.high = max(that.high, value)
}

func (that *BoundingRange) Low() int {
	return that.low
}

func (that *BoundingRange) High() int {
	return that.high
}

// Len returns the number of integers in [low, high].
func (that *BoundingRange) Len() int {
	return that.high - that.low + 1
}

func (that *BoundingRange) Contains(value int) bool {
	return that.low <= value && value <= that.high
}

// All yields every integer from low to high in ascending order.
// The upper bound is re-read on every step, so widening during iteration is observed.
func (that *BoundingRange) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for pos := that.low; pos <= that.high; pos++ {
			if !yield(pos) || pos == math.MaxInt {
				return
			}
		}
	}
}
