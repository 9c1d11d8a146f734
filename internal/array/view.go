package array

import (
	"fmt"

	"github.com/loom-ml/loom/internal/mem"
)

// View returns a borrowed-storage array over a contiguous sub-block of a,
// starting at the given flat element offset. The view is valid only as
// long as a's storage is.
func View[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], offset int, shape Shape) (*Array[T, *mem.Borrowed[T]], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	n := shape.NumElements()
	if offset < 0 || offset+n > a.NumElements() {
		return nil, fmt.Errorf("view [%d, %d) out of range for %d elements", offset, offset+n, a.NumElements())
	}
	return FromHandle[T](mem.Borrow[T](a.storage, offset), shape)
}

// Row returns a view of row i along the first axis. For a rank-1 array
// the result is a one-element scalar view.
func Row[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], i int) (*Array[T, *mem.Borrowed[T]], error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("cannot take a row of a scalar array")
	}
	if i < 0 || i >= a.shape[0] {
		return nil, fmt.Errorf("row %d out of range for first axis of size %d", i, a.shape[0])
	}
	return View(a, i*a.stride[0], Shape(a.shape[1:]).Clone())
}

// Slice returns a view of rows [lo, hi) along the first axis.
func Slice[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], lo, hi int) (*Array[T, *mem.Borrowed[T]], error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("cannot slice a scalar array")
	}
	if lo < 0 || hi > a.shape[0] || lo >= hi {
		return nil, fmt.Errorf("slice [%d, %d) out of range for first axis of size %d", lo, hi, a.shape[0])
	}
	shape := a.shape.Clone()
	shape[0] = hi - lo
	return View(a, lo*a.stride[0], shape)
}

// Share promotes a heap-backed array to shared storage. The returned
// array co-owns the buffer; the original keeps its heap handle and both
// must be released.
func Share[T mem.Scalar](a *Array[T, *mem.Heap[T]]) *Array[T, *mem.Shared[T]] {
	shared, err := FromHandle[T](mem.NewSharedFromHeap(a.storage), a.shape)
	if err != nil {
		// The source array already satisfied the same shape/size check.
		panic(err)
	}
	return shared
}

// Clone returns a heap-backed deep copy of a.
func Clone[T mem.Scalar, H mem.Handle[T]](a *Array[T, H]) *Array[T, *mem.Heap[T]] {
	c, err := FromHandle[T](mem.NewHeapUninit[T](a.NumElements()), a.shape)
	if err != nil {
		panic(err)
	}
	copy(c.Data(), a.Data())
	return c
}
