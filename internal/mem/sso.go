package mem

import "unsafe"

// SSOCapacity is the number of elements an SSO handle stores inline
// before falling back to the heap. Go generics cannot carry a length as a
// type parameter, so the threshold is a package constant rather than a
// per-instantiation size.
const SSOCapacity = 16

// SSO is the small-size-optimized storage handle: buffers of up to
// SSOCapacity elements live inside the handle itself and cost no
// allocator call, larger ones are heap-allocated through the default
// allocator.
//
// SSO handles must not be copied by value; the data slice aliases the
// inline buffer of the instance it was created in. Constructors return
// pointers for that reason.
type SSO[T Scalar] struct {
	inline [SSOCapacity]T
	data   []T
	block  Block // null on the inline path
}

// NewSSO returns an SSO handle of n elements. n == 0 yields a null
// handle. Complex element types go through the zero-filling allocation
// path on the heap when ZeroInitComplex is set.
func NewSSO[T Scalar](n int) *SSO[T] {
	h := &SSO[T]{}
	h.init(n, isComplex[T]() && ZeroInitComplex)
	return h
}

// NewSSOUninit returns an SSO handle of n elements with no guarantee
// about the heap path's contents.
func NewSSOUninit[T Scalar](n int) *SSO[T] {
	h := &SSO[T]{}
	h.init(n, false)
	return h
}

// NewSSOZero returns an SSO handle of n zero-valued elements, using the
// allocator's explicit zero-fill path when the buffer spills to the heap.
func NewSSOZero[T Scalar](n int) *SSO[T] {
	h := &SSO[T]{}
	h.init(n, true)
	return h
}

func (h *SSO[T]) init(n int, zero bool) {
	if n == 0 {
		return
	}
	if n <= SSOCapacity {
		// Inline buffer, zeroed by construction. No allocator call.
		h.data = h.inline[:n]
		return
	}
	if zero {
		h.block = Default().AllocateZero(n * sizeOf[T]())
	} else {
		h.block = Default().Allocate(n * sizeOf[T]())
	}
	h.data = unsafe.Slice((*T)(h.block.Ptr()), n)
}

// OnHeap reports whether the buffer currently lives on the heap rather
// than in the inline storage.
func (h *SSO[T]) OnHeap() bool { return len(h.data) > SSOCapacity }

// Clone returns a handle of equal size and element-wise-equal contents.
// Copies are element-wise regardless of residency.
func (h *SSO[T]) Clone() *SSO[T] {
	c := NewSSOUninit[T](len(h.data))
	copy(c.data, h.data)
	return c
}

// Move transfers the buffer into a new handle and leaves h null. A
// heap-resident buffer is stolen in O(1); an inline-resident buffer is
// copied element-wise into the destination's own inline storage, since
// two handles cannot share one inline buffer.
func (h *SSO[T]) Move() *SSO[T] {
	m := &SSO[T]{}
	if n := len(h.data); n > 0 {
		if h.OnHeap() {
			m.data = h.data
			m.block = h.block
		} else {
			m.data = m.inline[:n]
			copy(m.data, h.data)
		}
	}
	h.data = nil
	h.block = Block{}
	return m
}

// Release frees the heap path and nulls the handle either way, so
// null-ness keeps tracking the data pointer alone.
func (h *SSO[T]) Release() {
	if h.IsNull() {
		return
	}
	if h.OnHeap() {
		Default().Deallocate(h.block)
	}
	h.data = nil
	h.block = Block{}
}

// Data returns the typed buffer. The slice is a view, not a copy.
func (h *SSO[T]) Data() []T { return h.data }

// Size returns the element count.
func (h *SSO[T]) Size() int { return len(h.data) }

// At returns the element at index i.
func (h *SSO[T]) At(i int) T { return h.data[i] }

// Set stores v at index i.
func (h *SSO[T]) Set(i int, v T) { h.data[i] = v }

// IsNull reports whether the handle references no memory.
func (h *SSO[T]) IsNull() bool {
	if Debug {
		if (h.data == nil) != (len(h.data) == 0 && h.block.IsNull()) {
			panic("mem: sso handle data and block descriptor disagree")
		}
	}
	return h.data == nil
}
