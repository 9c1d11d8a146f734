package mem

import (
	"sync/atomic"
	"unsafe"
)

// Heap is the sole-owner storage handle: a buffer allocated through an
// Allocator, released when the handle is. A heap handle can be promoted
// to shared ownership; promotion is lazy, so handles that are never
// shared carry no reference-count state beyond a zero id.
type Heap[T Scalar] struct {
	data  []T
	block Block
	alloc Allocator // nil = package default

	// id in the shared reference-count table, 0 while unshared. Written
	// through the promotion path even when the handle is otherwise used
	// read-only, hence atomic.
	id atomic.Int64
}

// NewHeap returns a heap handle of n elements. n == 0 yields a null
// handle with no allocation. Complex element types go through the
// zero-filling allocation path when ZeroInitComplex is set.
func NewHeap[T Scalar](n int) *Heap[T] {
	return NewHeapAlloc[T](n, nil)
}

// NewHeapAlloc is NewHeap with an explicit allocator. a == nil means the
// package default.
func NewHeapAlloc[T Scalar](n int, a Allocator) *Heap[T] {
	h := &Heap[T]{alloc: a}
	if n == 0 {
		return h
	}
	var blk Block
	if isComplex[T]() && ZeroInitComplex {
		blk = h.allocator().AllocateZero(n * sizeOf[T]())
	} else {
		blk = h.allocator().Allocate(n * sizeOf[T]())
	}
	h.adopt(blk, n)
	return h
}

// NewHeapUninit returns a heap handle of n elements with no guarantee
// about its contents. The caller must write elements before reading them.
func NewHeapUninit[T Scalar](n int) *Heap[T] {
	h := &Heap[T]{}
	if n == 0 {
		return h
	}
	h.adopt(h.allocator().Allocate(n*sizeOf[T]()), n)
	return h
}

// NewHeapZero returns a heap handle of n zero-valued elements, using the
// allocator's explicit zero-fill path.
func NewHeapZero[T Scalar](n int) *Heap[T] {
	h := &Heap[T]{}
	if n == 0 {
		return h
	}
	h.adopt(h.allocator().AllocateZero(n*sizeOf[T]()), n)
	return h
}

// NewHeapFromShared clones the contents of a shared handle into a fresh
// sole-owner heap handle.
func NewHeapFromShared[T Scalar](s *Shared[T]) *Heap[T] {
	h := NewHeapUninit[T](s.Size())
	copy(h.data, s.Data())
	return h
}

func (h *Heap[T]) adopt(blk Block, n int) {
	h.block = blk
	h.data = unsafe.Slice((*T)(blk.Ptr()), n)
}

func (h *Heap[T]) allocator() Allocator {
	if h.alloc != nil {
		return h.alloc
	}
	return Default()
}

// Clone returns a handle of equal size and contents backed by its own
// freshly allocated block.
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{alloc: h.alloc}
	if h.IsNull() {
		return c
	}
	n := len(h.data)
	c.adopt(c.allocator().Allocate(n*sizeOf[T]()), n)
	copy(c.data, h.data)
	return c
}

// Move transfers ownership into a new handle and leaves h null. The
// buffer, its size and any shared-table id travel with the new handle;
// no elements are copied.
func (h *Heap[T]) Move() *Heap[T] {
	m := &Heap[T]{data: h.data, block: h.block, alloc: h.alloc}
	m.id.Store(h.id.Load())
	h.data = nil
	h.block = Block{}
	h.id.Store(0)
	return m
}

// Release ends this handle's ownership. If the buffer was never shared it
// is deallocated. If it was promoted and other shared holders remain,
// ownership transfers to them and the memory is left untouched; the last
// holder's release frees it. Safe to call on a null handle, and the
// handle is null afterwards.
func (h *Heap[T]) Release() {
	if h.IsNull() {
		return
	}
	block := h.block
	id := h.id.Load()
	h.data = nil
	h.block = Block{}
	h.id.Store(0)
	if id != 0 && !rtable.decref(id) {
		return
	}
	h.allocator().Deallocate(block)
}

// shareID returns the reference-count table id for h, registering it on
// first use. Two goroutines racing to promote the same handle converge on
// a single id: check, lock, re-check, assign.
func (h *Heap[T]) shareID() int64 {
	if id := h.id.Load(); id != 0 {
		return id
	}
	rtable.mu.Lock()
	defer rtable.mu.Unlock()
	if id := h.id.Load(); id != 0 {
		return id
	}
	id := rtable.getLocked()
	h.id.Store(id)
	return id
}

// Data returns the typed buffer. The slice is a view, not a copy.
func (h *Heap[T]) Data() []T { return h.data }

// Size returns the element count.
func (h *Heap[T]) Size() int { return len(h.data) }

// At returns the element at index i.
func (h *Heap[T]) At(i int) T { return h.data[i] }

// Set stores v at index i.
func (h *Heap[T]) Set(i int, v T) { h.data[i] = v }

// IsNull reports whether the handle references no memory.
func (h *Heap[T]) IsNull() bool {
	if Debug {
		if h.data == nil && h.id.Load() != 0 {
			panic("mem: null heap handle with a shared-table id")
		}
		if (h.data == nil) != h.block.IsNull() {
			panic("mem: heap handle data and block descriptor disagree")
		}
	}
	return h.data == nil
}
