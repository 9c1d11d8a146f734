package cpu

import (
	"github.com/loom-ml/loom/internal/mem"
	"github.com/loom-ml/loom/internal/parallel"
)

// Add computes dst[i] = a[i] + b[i]. The slices must have equal length.
func Add[T mem.Scalar](dst, a, b []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = a[i] + b[i]
		}
	}, cfg)
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T mem.Scalar](dst, a, b []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = a[i] - b[i]
		}
	}, cfg)
}

// Mul computes the element-wise product dst[i] = a[i] * b[i].
func Mul[T mem.Scalar](dst, a, b []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = a[i] * b[i]
		}
	}, cfg)
}

// Scale computes dst[i] = s * a[i].
func Scale[T mem.Scalar](dst, a []T, s T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = s * a[i]
		}
	}, cfg)
}

// Fill sets every element of dst to v.
func Fill[T mem.Scalar](dst []T, v T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = v
		}
	}, cfg)
}
