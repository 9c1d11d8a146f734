package array

import (
	"fmt"

	"github.com/loom-ml/loom/internal/mem"
)

// New returns a heap-backed array of the given shape.
func New[T mem.Scalar](shape Shape) (*Array[T, *mem.Heap[T]], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return FromHandle[T](mem.NewHeap[T](shape.NumElements()), shape)
}

// Zeros returns a heap-backed array of explicitly zero-filled elements,
// using the allocator's zero-fill path.
func Zeros[T mem.Scalar](shape Shape) (*Array[T, *mem.Heap[T]], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return FromHandle[T](mem.NewHeapZero[T](shape.NumElements()), shape)
}

// Full returns a heap-backed array with every element set to v.
func Full[T mem.Scalar](shape Shape, v T) (*Array[T, *mem.Heap[T]], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	a.Fill(v)
	return a, nil
}

// FromSlice returns a heap-backed array holding a copy of data.
func FromSlice[T mem.Scalar](data []T, shape Shape) (*Array[T, *mem.Heap[T]], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a, err := FromHandle[T](mem.NewHeapUninit[T](len(data)), shape)
	if err != nil {
		return nil, err
	}
	copy(a.Data(), data)
	return a, nil
}

// Arange returns a heap-backed rank-1 array holding 0, 1, ..., n-1.
func Arange[T mem.Scalar](n int) (*Array[T, *mem.Heap[T]], error) {
	a, err := New[T](Shape{n})
	if err != nil {
		return nil, err
	}
	data := a.Data()
	var v T
	for i := range data {
		data[i] = v
		v++
	}
	return a, nil
}

// NewSSO returns an array over small-size-optimized storage: shapes of up
// to mem.SSOCapacity elements live inline in the handle and cost no
// allocation.
func NewSSO[T mem.Scalar](shape Shape) (*Array[T, *mem.SSO[T]], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return FromHandle[T](mem.NewSSO[T](shape.NumElements()), shape)
}

// NewStack returns an array over fixed-capacity stack storage. The shape
// must fit mem.StackCapacity elements.
func NewStack[T mem.Scalar](shape Shape) (*Array[T, *mem.Stack[T]], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if n := shape.NumElements(); n > mem.StackCapacity {
		return nil, fmt.Errorf("shape %v needs %d elements, stack storage holds %d", shape, n, mem.StackCapacity)
	}
	return FromHandle[T](mem.NewStack[T](), shape)
}

// Vector returns a heap-backed rank-1 array of n elements.
func Vector[T mem.Scalar](n int) (*Array[T, *mem.Heap[T]], error) {
	return New[T](Shape{n})
}

// Matrix returns a heap-backed rank-2 array of rows x cols elements.
func Matrix[T mem.Scalar](rows, cols int) (*Array[T, *mem.Heap[T]], error) {
	return New[T](Shape{rows, cols})
}
