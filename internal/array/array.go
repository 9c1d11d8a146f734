// Package array provides shape-polymorphic, value-semantic containers over
// the storage handles in internal/mem.
//
// An Array is generic over both its element type and its storage handle,
// so the ownership strategy (heap, inline, stack, shared, borrowed) is
// chosen statically at the array's definition site. All storage variants
// present the same access contract, which keeps this package free of
// per-variant code.
package array

import (
	"fmt"

	"github.com/loom-ml/loom/internal/backend/cpu"
	"github.com/loom-ml/loom/internal/mem"
	"github.com/loom-ml/loom/internal/parallel"
)

// cfg is the parallelism applied by the kernels this package dispatches
// to. Override with SetParallelism.
var cfg = parallel.DefaultConfig()

// SetParallelism installs the parallel execution config used by array
// operations and returns the previous one.
func SetParallelism(c parallel.Config) parallel.Config {
	prev := cfg
	cfg = c
	return prev
}

// Array is a multi-dimensional array with element type T stored in a
// handle of type H.
type Array[T mem.Scalar, H mem.Handle[T]] struct {
	storage H
	shape   Shape
	stride  []int
}

// FromHandle wraps an existing storage handle in an array of the given
// shape. The handle must hold at least as many elements as the shape
// needs; stack handles routinely hold more.
func FromHandle[T mem.Scalar, H mem.Handle[T]](h H, shape Shape) (*Array[T, H], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if n := shape.NumElements(); h.Size() < n {
		return nil, fmt.Errorf("storage holds %d elements, shape %v needs %d", h.Size(), shape, n)
	}
	return &Array[T, H]{storage: h, shape: shape.Clone(), stride: shape.Strides()}, nil
}

// Shape returns the array's shape.
func (a *Array[T, H]) Shape() Shape { return a.shape }

// Strides returns the array's row-major strides.
func (a *Array[T, H]) Strides() []int { return a.stride }

// NumElements returns the total number of elements.
func (a *Array[T, H]) NumElements() int { return a.shape.NumElements() }

// Storage returns the underlying handle.
func (a *Array[T, H]) Storage() H { return a.storage }

// Data returns the typed element buffer, restricted to the array's
// extent. The slice is a view, not a copy.
func (a *Array[T, H]) Data() []T {
	return a.storage.Data()[:a.shape.NumElements()]
}

// IsNull reports whether the array's storage references no memory.
func (a *Array[T, H]) IsNull() bool { return a.storage.IsNull() }

// Release ends the storage handle's ownership of its buffer.
func (a *Array[T, H]) Release() { a.storage.Release() }

// offset resolves multi-dimensional indices to a flat element offset.
// Panics if the indices are out of bounds.
func (a *Array[T, H]) offset(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		off += idx * a.stride[i]
	}
	return off
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array[T, H]) At(indices ...int) T {
	return a.storage.At(a.offset(indices))
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array[T, H]) Set(value T, indices ...int) {
	a.storage.Set(a.offset(indices), value)
}

// Item returns the value of a one-element array.
// Panics otherwise.
func (a *Array[T, H]) Item() T {
	if a.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for one-element arrays, got shape %v", a.shape))
	}
	return a.storage.At(0)
}

// Fill sets every element to v.
func (a *Array[T, H]) Fill(v T) {
	cpu.Fill(a.Data(), v, cfg)
}

// String returns a human-readable description of the array.
func (a *Array[T, H]) String() string {
	var z T
	return fmt.Sprintf("Array[%T]%v (%d elements)", z, a.shape, a.NumElements())
}
