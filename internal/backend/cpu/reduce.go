package cpu

import (
	"github.com/loom-ml/loom/internal/mem"
	"github.com/loom-ml/loom/internal/parallel"
)

// Sum reduces a to the sum of its elements. Chunked partial sums are
// folded in deterministic order.
func Sum[T mem.Scalar](a []T, cfg parallel.Config) T {
	var zero T
	return parallel.Reduce(len(a), zero, func(lo, hi int) T {
		var s T
		for i := lo; i < hi; i++ {
			s += a[i]
		}
		return s
	}, func(x, y T) T { return x + y }, cfg)
}

// Dot computes the inner product of a and b. The slices must have equal
// length.
func Dot[T mem.Scalar](a, b []T, cfg parallel.Config) T {
	var zero T
	return parallel.Reduce(len(a), zero, func(lo, hi int) T {
		var s T
		for i := lo; i < hi; i++ {
			s += a[i] * b[i]
		}
		return s
	}, func(x, y T) T { return x + y }, cfg)
}

// Max returns the largest element of a. Panics on an empty slice.
func Max[T Ordered](a []T, cfg parallel.Config) T {
	if len(a) == 0 {
		panic("cpu: Max of an empty buffer")
	}
	return parallel.Reduce(len(a), a[0], func(lo, hi int) T {
		m := a[lo]
		for i := lo + 1; i < hi; i++ {
			if a[i] > m {
				m = a[i]
			}
		}
		return m
	}, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	}, cfg)
}
