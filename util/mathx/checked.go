package mathx

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Mul returns the product of xs,
// which is 1 if xs is empty, or 0 if any of xs is 0.
// The result is false if the product overflows T.
func Mul[T constraints.Unsigned](xs ...T) (T, bool) {
	for i := range xs {
		if xs[i] == 0 {
			return 0, true
		}
	}
	p := uint64(1)
	for i := range xs {
		hi, lo := bits.Mul64(p, uint64(xs[i]))
		if hi != 0 || uint64(T(lo)) != lo {
			return 0, false
		}
		p = lo
	}
	return T(p), true
}

// Add returns the sum of xs.
// The result is false if the sum overflows T.
func Add[T constraints.Unsigned](xs ...T) (T, bool) {
	var s uint64
	for i := range xs {
		var c uint64
		s, c = bits.Add64(s, uint64(xs[i]), 0)
		if c != 0 || uint64(T(s)) != s {
			return 0, false
		}
	}
	return T(s), true
}
