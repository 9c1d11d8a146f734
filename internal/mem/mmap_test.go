//go:build linux || darwin

package mem

import "testing"

func TestMmapAllocator(t *testing.T) {
	var a MmapAllocator

	b := a.Allocate(1 << 20)
	if b.IsNull() || b.Size() != 1<<20 {
		t.Fatalf("Allocate(1MiB) = (%v, %d bytes)", b.IsNull(), b.Size())
	}
	// Anonymous pages arrive zeroed.
	buf := b.Bytes()
	for _, off := range []int{0, 4096, len(buf) - 1} {
		if buf[off] != 0 {
			t.Errorf("byte %d = %d, want 0", off, buf[off])
		}
	}
	buf[0] = 0xff
	a.Deallocate(b)

	if !a.Allocate(0).IsNull() {
		t.Error("Allocate(0) must return a null block")
	}
}

func TestHeapOverMmap(t *testing.T) {
	h := NewHeapAlloc[float64](1024, MmapAllocator{})
	if h.Size() != 1024 {
		t.Fatalf("Size() = %d, want 1024", h.Size())
	}
	for i := range h.Data() {
		h.Set(i, float64(i))
	}
	if h.At(1023) != 1023 {
		t.Errorf("At(1023) = %v, want 1023", h.At(1023))
	}
	h.Release()
	if !h.IsNull() {
		t.Error("handle must be null after Release")
	}
}
