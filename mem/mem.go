// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mem provides the public API for Loom's storage handles.
//
// The package exposes the five ownership strategies for array storage:
//   - Heap[T]: exclusively owned buffer from an allocator
//   - SSO[T]: small-size optimized, inline up to SSOCapacity elements
//   - Stack[T]: fixed StackCapacity-element buffer inside the handle
//   - Shared[T]: reference-counted buffer, native or foreign
//   - Borrowed[T]: non-owning view into another handle
//
// Example:
//
//	h := mem.NewHeap[float64](128)
//	defer h.Release()
//	h.Set(0, 3.14)
//	s := mem.NewSharedFromHeap(h) // h keeps ownership, s keeps it alive
package mem

import (
	"unsafe"

	"github.com/loom-ml/loom/internal/mem"
)

// Type aliases for public API

// Scalar is the constraint on storable element types.
// Supported types: float32, float64, int32, int64, uint8, complex64, complex128.
type Scalar = mem.Scalar

// Handle is the interface all storage handles satisfy.
type Handle[T Scalar] = mem.Handle[T]

// Heap is an exclusively owned allocator-backed handle.
type Heap[T Scalar] = mem.Heap[T]

// SSO is a small-size optimized handle: buffers of up to SSOCapacity
// elements live inline, larger ones on the heap.
type SSO[T Scalar] = mem.SSO[T]

// Stack is a handle whose buffer is a fixed-size field of the handle itself.
type Stack[T Scalar] = mem.Stack[T]

// Shared is a reference-counted handle over a native or foreign buffer.
type Shared[T Scalar] = mem.Shared[T]

// Borrowed is a non-owning view into another handle's buffer.
type Borrowed[T Scalar] = mem.Borrowed[T]

// Capacity constants.
const (
	SSOCapacity   = mem.SSOCapacity
	StackCapacity = mem.StackCapacity
)

// Allocator abstracts raw block allocation for heap-backed handles.
type Allocator = mem.Allocator

// Block is a raw allocation as returned by an Allocator.
type Block = mem.Block

// Mallocator is the default Go-heap allocator.
type Mallocator = mem.Mallocator

// Counting wraps an allocator and counts allocations and frees.
type Counting = mem.Counting

// LeakCheck wraps an allocator and tracks outstanding blocks.
type LeakCheck = mem.LeakCheck

// Creation functions

// NewHeap creates a heap handle of n elements with the default allocator.
func NewHeap[T Scalar](n int) *Heap[T] { return mem.NewHeap[T](n) }

// NewHeapAlloc creates a heap handle of n elements with allocator a.
func NewHeapAlloc[T Scalar](n int, a Allocator) *Heap[T] { return mem.NewHeapAlloc[T](n, a) }

// NewHeapUninit creates a heap handle without clearing its elements.
func NewHeapUninit[T Scalar](n int) *Heap[T] { return mem.NewHeapUninit[T](n) }

// NewHeapZero creates a heap handle with all elements set to zero.
func NewHeapZero[T Scalar](n int) *Heap[T] { return mem.NewHeapZero[T](n) }

// NewHeapFromShared deep-copies a shared handle's buffer into a fresh
// heap handle.
func NewHeapFromShared[T Scalar](s *Shared[T]) *Heap[T] { return mem.NewHeapFromShared(s) }

// NewSSO creates a small-size optimized handle of n elements.
func NewSSO[T Scalar](n int) *SSO[T] { return mem.NewSSO[T](n) }

// NewSSOUninit creates an SSO handle without clearing heap-spilled elements.
func NewSSOUninit[T Scalar](n int) *SSO[T] { return mem.NewSSOUninit[T](n) }

// NewSSOZero creates an SSO handle with all elements set to zero.
func NewSSOZero[T Scalar](n int) *SSO[T] { return mem.NewSSOZero[T](n) }

// NewStack creates a stack handle. Its capacity is always StackCapacity.
func NewStack[T Scalar]() *Stack[T] { return mem.NewStack[T]() }

// NewShared creates a null shared handle.
func NewShared[T Scalar]() *Shared[T] { return mem.NewShared[T]() }

// NewSharedFromHeap creates a shared handle over a heap handle's buffer.
// The heap handle keeps ownership; the shared handle keeps the buffer
// alive past the owner's release.
func NewSharedFromHeap[T Scalar](h *Heap[T]) *Shared[T] { return mem.NewSharedFromHeap(h) }

// NewSharedForeign adopts an externally owned buffer of n elements.
// When the last holder releases, release(ctx) is called instead of a
// Loom allocator.
func NewSharedForeign[T Scalar](ptr unsafe.Pointer, n int, ctx unsafe.Pointer, release func(unsafe.Pointer)) *Shared[T] {
	return mem.NewSharedForeign[T](ptr, n, ctx, release)
}

// Borrow creates a non-owning view into h starting at offset.
func Borrow[T Scalar](h Handle[T], offset int) *Borrowed[T] { return mem.Borrow(h, offset) }

// BorrowSlice creates a non-owning view over an arbitrary slice.
func BorrowSlice[T Scalar](data []T) *Borrowed[T] { return mem.BorrowSlice(data) }

// Allocator plumbing

// Default returns the process-wide default allocator.
func Default() Allocator { return mem.Default() }

// SetDefault installs a as the default allocator and returns the previous one.
func SetDefault(a Allocator) Allocator { return mem.SetDefault(a) }

// NewCounting wraps inner with allocation counters.
func NewCounting(inner Allocator) *Counting { return mem.NewCounting(inner) }

// NewLeakCheck wraps inner with outstanding-block tracking.
func NewLeakCheck(inner Allocator) *LeakCheck { return mem.NewLeakCheck(inner) }
