// Package floatutils provides utilities for working with floats.
//
// All comparisons in this package use Compare, which is a total order
// over float64 in which a NaN compares equal to every value. Argmax and
// max operations elsewhere in the module go through this package so
// that no ordering operation can fail or become non-deterministic on
// NaN values.
package floatutils

import (
	"math"
)

// Compare compares two floats, returning -1 if a < b, 1 if a > b, and
// 0 otherwise. If either a or b is NaN, the values are incomparable
// and Compare treats them as equal.
func Compare(a, b float64) int {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return 0
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ArgMax returns the index of the largest value in values. Ties are
// broken in favour of the lowest index. ArgMax returns -1 if values is
// empty.
func ArgMax(values []float64) int {
	if len(values) == 0 {
		return -1
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if Compare(values[i], values[best]) > 0 {
			best = i
		}
	}
	return best
}

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64. MaxSlice panics if values is empty.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		switch Compare(values[i], max) {
		case 1:
			max = values[i]
			indices = []int{i}
		case 0:
			indices = append(indices, i)
		}
	}
	return
}

// Max calculates and returns the maximum float64 in a list, or def
// if the list is empty.
func Max(def float64, floats ...float64) float64 {
	if len(floats) == 0 {
		return def
	}
	return floats[ArgMax(floats)]
}
