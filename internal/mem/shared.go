package mem

import "unsafe"

// Shared is the reference-counted storage handle. Copies share one buffer
// whose lifetime is governed by the process-wide reference-count table;
// the last holder's release frees it, exactly once, regardless of which
// goroutine that turns out to be.
//
// A shared handle either co-owns a natively allocated buffer (built from
// a Heap handle) or a foreign one adopted from an external owner, in
// which case the release callback runs instead of the allocator.
type Shared[T Scalar] struct {
	data []T
	id   int64 // reference-count table id; 0 iff data == nil

	// Set only for adopted foreign buffers. foreignRelease non-nil marks
	// the foreign case; foreignCtx is the opaque value handed back to it.
	foreignCtx     unsafe.Pointer
	foreignRelease func(unsafe.Pointer)
}

// NewShared returns a null shared handle.
func NewShared[T Scalar]() *Shared[T] {
	return &Shared[T]{}
}

// NewSharedFromHeap promotes a heap handle to shared ownership and
// returns a handle co-owning its buffer. The heap handle is registered in
// the reference-count table on first promotion; promoting the same handle
// again, even concurrently, reuses the same id. Only heap handles built
// on the default allocator may be promoted, since the last holder frees
// through it.
func NewSharedFromHeap[T Scalar](h *Heap[T]) *Shared[T] {
	if h.IsNull() {
		return &Shared[T]{}
	}
	if Debug && h.alloc != nil {
		panic("mem: only default-allocator heap handles can be shared")
	}
	s := &Shared[T]{data: h.data, id: h.shareID()}
	rtable.incref(s.id)
	return s
}

// NewSharedForeign adopts a buffer of n elements owned by an external
// library. The handle registers a fresh id with count 1; when the last
// holder releases, release(ctx) is invoked instead of deallocating, since
// the memory's allocation strategy belongs to the foreign owner.
func NewSharedForeign[T Scalar](ptr unsafe.Pointer, n int, ctx unsafe.Pointer, release func(unsafe.Pointer)) *Shared[T] {
	if ptr == nil || n == 0 {
		return &Shared[T]{}
	}
	return &Shared[T]{
		data:           unsafe.Slice((*T)(ptr), n),
		id:             rtable.get(),
		foreignCtx:     ctx,
		foreignRelease: release,
	}
}

// Clone returns a handle co-owning the same buffer, incrementing the
// reference count.
func (s *Shared[T]) Clone() *Shared[T] {
	c := &Shared[T]{data: s.data, id: s.id, foreignCtx: s.foreignCtx, foreignRelease: s.foreignRelease}
	if !c.IsNull() {
		rtable.incref(c.id)
	}
	return c
}

// Move transfers this handle's reference into a new handle and leaves s
// null. The count is unchanged.
func (s *Shared[T]) Move() *Shared[T] {
	c := &Shared[T]{data: s.data, id: s.id, foreignCtx: s.foreignCtx, foreignRelease: s.foreignRelease}
	s.reset()
	return c
}

// Release drops this handle's reference. If it was the last one, the
// buffer is released: the foreign callback for adopted buffers, the
// default allocator for native ones. Safe on a null handle, and the
// handle is null afterwards.
func (s *Shared[T]) Release() {
	if s.IsNull() {
		return
	}
	data, id := s.data, s.id
	ctx, release := s.foreignCtx, s.foreignRelease
	s.reset()
	if !rtable.decref(id) {
		return
	}
	if release != nil {
		release(ctx)
		return
	}
	Default().Deallocate(blockOf(data))
}

func (s *Shared[T]) reset() {
	s.data = nil
	s.id = 0
	s.foreignCtx = nil
	s.foreignRelease = nil
}

// Refcount returns the current count for this handle's buffer, or 0 for a
// null handle. Diagnostic only: the value may be stale by the time the
// caller looks at it.
func (s *Shared[T]) Refcount() int64 {
	if s.IsNull() {
		return 0
	}
	return rtable.refcount(s.id)
}

// Data returns the typed buffer. The slice is a view, not a copy.
func (s *Shared[T]) Data() []T { return s.data }

// Size returns the element count.
func (s *Shared[T]) Size() int { return len(s.data) }

// At returns the element at index i.
func (s *Shared[T]) At(i int) T { return s.data[i] }

// Set stores v at index i.
func (s *Shared[T]) Set(i int, v T) { s.data[i] = v }

// IsNull reports whether the handle references no memory.
func (s *Shared[T]) IsNull() bool {
	if Debug {
		if (s.data == nil) != (s.id == 0) {
			panic("mem: shared handle data and id disagree")
		}
	}
	return s.data == nil
}
