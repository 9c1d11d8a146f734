// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for Loom's multi-dimensional arrays.
//
// An Array is generic over its element type and its storage handle, so
// the ownership strategy is part of the array's type:
//   - Array[T, *mem.Heap[T]]: regular value-semantic array
//   - Array[T, *mem.SSO[T]]: small arrays without a heap round trip
//   - Array[T, *mem.Stack[T]]: fixed-capacity, allocation-free array
//   - Array[T, *mem.Shared[T]]: reference-counted array
//   - Array[T, *mem.Borrowed[T]]: non-owning view
//
// Example:
//
//	a, _ := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	defer a.Release()
//	b, _ := array.Full[float64](array.Shape{2, 3}, 10)
//	defer b.Release()
//	c, _ := array.Add(a, b)
//	defer c.Release()
package array

import (
	"github.com/loom-ml/loom/internal/array"
	"github.com/loom-ml/loom/internal/mem"
	"github.com/loom-ml/loom/internal/parallel"
)

// Type aliases for public API

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4. The
// empty Shape is a scalar.
type Shape = array.Shape

// Array is a multi-dimensional array over storage handle H.
type Array[T mem.Scalar, H mem.Handle[T]] = array.Array[T, H]

// Creation functions

// New creates a heap-backed array of the given shape.
func New[T mem.Scalar](shape Shape) (*Array[T, *mem.Heap[T]], error) {
	return array.New[T](shape)
}

// Zeros creates a heap-backed array filled with zeros.
func Zeros[T mem.Scalar](shape Shape) (*Array[T, *mem.Heap[T]], error) {
	return array.Zeros[T](shape)
}

// Full creates a heap-backed array filled with v.
func Full[T mem.Scalar](shape Shape, v T) (*Array[T, *mem.Heap[T]], error) {
	return array.Full[T](shape, v)
}

// FromSlice creates a heap-backed array by copying data. The array does
// not alias the input slice.
func FromSlice[T mem.Scalar](data []T, shape Shape) (*Array[T, *mem.Heap[T]], error) {
	return array.FromSlice(data, shape)
}

// Arange creates a 1D array holding 0, 1, ..., n-1.
func Arange[T mem.Scalar](n int) (*Array[T, *mem.Heap[T]], error) {
	return array.Arange[T](n)
}

// NewSSO creates a small-size optimized array. Shapes of up to
// mem.SSOCapacity elements stay inline in the handle.
func NewSSO[T mem.Scalar](shape Shape) (*Array[T, *mem.SSO[T]], error) {
	return array.NewSSO[T](shape)
}

// NewStack creates an allocation-free array over a fixed-capacity
// handle. Shapes above mem.StackCapacity elements are rejected.
func NewStack[T mem.Scalar](shape Shape) (*Array[T, *mem.Stack[T]], error) {
	return array.NewStack[T](shape)
}

// Vector creates a heap-backed 1D array of n elements.
func Vector[T mem.Scalar](n int) (*Array[T, *mem.Heap[T]], error) {
	return array.Vector[T](n)
}

// Matrix creates a heap-backed 2D array.
func Matrix[T mem.Scalar](rows, cols int) (*Array[T, *mem.Heap[T]], error) {
	return array.Matrix[T](rows, cols)
}

// FromHandle wraps an existing storage handle in an array of the given
// shape. The handle must hold at least shape.NumElements() elements.
func FromHandle[T mem.Scalar, H mem.Handle[T]](h H, shape Shape) (*Array[T, H], error) {
	return array.FromHandle[T](h, shape)
}

// Views and sharing

// View creates a borrowed array over a section of a's storage.
func View[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], offset int, shape Shape) (*Array[T, *mem.Borrowed[T]], error) {
	return array.View(a, offset, shape)
}

// Row creates a borrowed view of row i of a 2D array.
func Row[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], i int) (*Array[T, *mem.Borrowed[T]], error) {
	return array.Row(a, i)
}

// Slice creates a borrowed view of a's leading axis range [lo, hi).
func Slice[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], lo, hi int) (*Array[T, *mem.Borrowed[T]], error) {
	return array.Slice(a, lo, hi)
}

// Share creates a reference-counted array over a heap-backed array's
// buffer. The original keeps ownership; the shared array keeps the
// buffer alive past the owner's release.
func Share[T mem.Scalar](a *Array[T, *mem.Heap[T]]) *Array[T, *mem.Shared[T]] {
	return array.Share(a)
}

// Clone deep-copies any array into a fresh heap-backed one.
func Clone[T mem.Scalar, H mem.Handle[T]](a *Array[T, H]) *Array[T, *mem.Heap[T]] {
	return array.Clone(a)
}

// Operations

// Add computes the element-wise sum of two same-shaped arrays.
func Add[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	return array.Add(a, b)
}

// Sub computes the element-wise difference of two same-shaped arrays.
func Sub[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	return array.Sub(a, b)
}

// Mul computes the element-wise product of two same-shaped arrays.
func Mul[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	return array.Mul(a, b)
}

// Scale multiplies every element by s.
func Scale[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], s T) *Array[T, *mem.Heap[T]] {
	return array.Scale(a, s)
}

// Sum reduces an array to the sum of its elements.
func Sum[T mem.Scalar, H mem.Handle[T]](a *Array[T, H]) T {
	return array.Sum(a)
}

// Dot computes the inner product of two 1D arrays.
func Dot[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (T, error) {
	return array.Dot(a, b)
}

// MatMul multiplies two 2D arrays.
func MatMul[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	return array.MatMul(a, b)
}

// Config controls how array operations distribute work across goroutines.
type Config = parallel.Config

// DefaultConfig returns a configuration using all available CPUs.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// Sequential returns a configuration that disables parallel execution.
func Sequential() Config { return parallel.Sequential() }

// SetParallelism installs the parallel configuration used by array
// operations and returns the previous one.
func SetParallelism(c Config) Config {
	return array.SetParallelism(c)
}
