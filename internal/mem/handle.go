package mem

// Handle is the uniform access contract every storage variant satisfies.
// Array code is generic over it: the variant is chosen statically at the
// array's definition site, and kernels fetch Data once per operation, so
// there is no per-element dispatch.
//
// Release ends the handle's ownership of its buffer, whatever that means
// for the variant: deallocation, a reference-count decrement, a foreign
// release callback, or nothing at all for inline and borrowed storage.
type Handle[T Scalar] interface {
	Data() []T
	Size() int
	IsNull() bool
	At(i int) T
	Set(i int, v T)
	Release()
}

var (
	_ Handle[float64]    = (*Heap[float64])(nil)
	_ Handle[complex128] = (*SSO[complex128])(nil)
	_ Handle[int32]      = (*Stack[int32])(nil)
	_ Handle[float32]    = (*Shared[float32])(nil)
	_ Handle[uint8]      = (*Borrowed[uint8])(nil)
)
