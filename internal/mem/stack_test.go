package mem

import "testing"

func TestStackNeverAllocates(t *testing.T) {
	c := NewCounting(Mallocator{})
	prev := SetDefault(c)
	defer SetDefault(prev)

	h := NewStack[float64]()
	h.Set(0, 1.5)
	h.Release()

	if got := c.Allocations(); got != 0 {
		t.Errorf("stack handle made %d allocator calls, want 0", got)
	}
}

func TestStackContract(t *testing.T) {
	h := NewStack[int32]()
	if h.IsNull() {
		t.Error("a stack handle is never null")
	}
	if h.Size() != StackCapacity {
		t.Errorf("Size() = %d, want %d", h.Size(), StackCapacity)
	}
	for i := 0; i < h.Size(); i++ {
		if h.At(i) != 0 {
			t.Fatalf("element %d = %d, want zero-initialized", i, h.At(i))
		}
	}
}

func TestStackMoveIsCopy(t *testing.T) {
	h := NewStack[int32]()
	for i := 0; i < h.Size(); i++ {
		h.Set(i, int32(i+1))
	}

	m := h.Move()
	if &m.Data()[0] == &h.Data()[0] {
		t.Fatal("stack move must never share storage with its source")
	}
	for i := 0; i < m.Size(); i++ {
		if m.At(i) != h.At(i) {
			t.Fatalf("element %d lost in move", i)
		}
	}

	// The copy is independent.
	m.Set(0, -1)
	if h.At(0) != 1 {
		t.Error("write to moved handle visible in source")
	}
}
