package mem

// Borrowed is the non-owning storage handle: a view into memory owned by
// one of the owning variants. It never allocates and never frees, and it
// is valid only while the owner is alive; that lifetime is the caller's
// responsibility.
//
// A view taken from a Heap handle remembers its owner, so code holding
// only the view can still promote the underlying buffer to shared
// ownership through Parent.
type Borrowed[T Scalar] struct {
	data   []T
	parent *Heap[T] // set only when borrowed from a heap handle
}

// Borrow returns a view into h starting at the given element offset. When
// h is a heap handle the view records it as parent.
func Borrow[T Scalar](h Handle[T], offset int) *Borrowed[T] {
	b := &Borrowed[T]{data: h.Data()[offset:]}
	if p, ok := h.(*Heap[T]); ok {
		b.parent = p
	}
	return b
}

// BorrowSlice returns a view over an arbitrary typed buffer.
func BorrowSlice[T Scalar](data []T) *Borrowed[T] {
	return &Borrowed[T]{data: data}
}

// Offset returns a view shifted k elements into b. The parent reference
// is carried along so promotion stays possible from sub-views.
func (b *Borrowed[T]) Offset(k int) *Borrowed[T] {
	return &Borrowed[T]{data: b.data[k:], parent: b.parent}
}

// Parent returns the heap handle this view was taken from, or nil when
// the view came from any other storage.
func (b *Borrowed[T]) Parent() *Heap[T] { return b.parent }

// Release is a no-op; a borrowed handle owns nothing.
func (b *Borrowed[T]) Release() {}

// Data returns the viewed buffer. The slice is a view, not a copy.
func (b *Borrowed[T]) Data() []T { return b.data }

// Size returns the element count of the view.
func (b *Borrowed[T]) Size() int { return len(b.data) }

// At returns the element at index i.
func (b *Borrowed[T]) At(i int) T { return b.data[i] }

// Set stores v at index i.
func (b *Borrowed[T]) Set(i int, v T) { b.data[i] = v }

// IsNull reports whether the view references no memory. Only the pointer
// matters; ownership state is invisible to a view.
func (b *Borrowed[T]) IsNull() bool { return b.data == nil }
