package mem

// StackCapacity is the fixed element capacity of a Stack handle. As with
// SSOCapacity, the size is a package constant because Go generics cannot
// parameterize over a length.
const StackCapacity = 8

// Stack is the fixed-capacity inline storage handle: the buffer is always
// part of the handle, it never allocates, and it is never null. Intended
// for arrays whose static element count fits StackCapacity.
//
// Like SSO handles, Stack handles are used through pointers so the buffer
// keeps a fixed identity.
type Stack[T Scalar] struct {
	buf [StackCapacity]T
}

// NewStack returns a zero-valued stack handle.
func NewStack[T Scalar]() *Stack[T] {
	return &Stack[T]{}
}

// Clone returns a handle with an element-wise copy of the buffer.
func (h *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{}
	c.buf = h.buf
	return c
}

// Move returns a handle with a copy of the buffer. There is no separate
// backing store to steal, so a stack move is always a full copy and the
// source stays valid.
func (h *Stack[T]) Move() *Stack[T] {
	return h.Clone()
}

// Release is a no-op; the buffer lives and dies with the handle.
func (h *Stack[T]) Release() {}

// Data returns the typed buffer. The slice is a view, not a copy.
func (h *Stack[T]) Data() []T { return h.buf[:] }

// Size returns StackCapacity.
func (h *Stack[T]) Size() int { return StackCapacity }

// At returns the element at index i.
func (h *Stack[T]) At(i int) T { return h.buf[i] }

// Set stores v at index i.
func (h *Stack[T]) Set(i int, v T) { h.buf[i] = v }

// IsNull always reports false; a stack handle always has storage.
func (h *Stack[T]) IsNull() bool { return false }
