package mem

import (
	"testing"
)

func TestMallocatorBasics(t *testing.T) {
	var a Mallocator

	b := a.Allocate(64)
	if b.IsNull() {
		t.Fatal("Allocate(64) returned a null block")
	}
	if b.Size() != 64 {
		t.Errorf("block size = %d, want 64", b.Size())
	}
	if b.Ptr() == nil {
		t.Error("non-null block with nil base pointer")
	}
	a.Deallocate(b)

	z := a.AllocateZero(32)
	for i, v := range z.Bytes() {
		if v != 0 {
			t.Fatalf("AllocateZero byte %d = %d, want 0", i, v)
		}
	}
	a.Deallocate(z)

	if !a.Allocate(0).IsNull() {
		t.Error("Allocate(0) must return a null block")
	}
}

func TestCountingAllocator(t *testing.T) {
	c := NewCounting(Mallocator{})

	b1 := c.Allocate(16)
	b2 := c.AllocateZero(16)
	if got := c.Allocations(); got != 2 {
		t.Errorf("Allocations() = %d, want 2", got)
	}

	c.Deallocate(b1)
	c.Deallocate(b2)
	if got := c.Frees(); got != 2 {
		t.Errorf("Frees() = %d, want 2", got)
	}
}

func TestLeakCheckReportsOutstanding(t *testing.T) {
	l := NewLeakCheck(Mallocator{})

	b1 := l.Allocate(100)
	b2 := l.AllocateZero(50)

	blocks, bytes := l.Outstanding()
	if blocks != 2 || bytes != 150 {
		t.Errorf("Outstanding() = (%d, %d), want (2, 150)", blocks, bytes)
	}

	l.Deallocate(b1)
	l.Deallocate(b2)

	blocks, bytes = l.Outstanding()
	if blocks != 0 || bytes != 0 {
		t.Errorf("Outstanding() after frees = (%d, %d), want (0, 0)", blocks, bytes)
	}
}

func TestLeakCheckUnknownBlockPanics(t *testing.T) {
	l := NewLeakCheck(Mallocator{})
	b := Mallocator{}.Allocate(8)

	defer func() {
		if recover() == nil {
			t.Error("deallocating a block the decorator never handed out must panic")
		}
	}()
	l.Deallocate(b)
}

func TestDefaultAllocatorSwap(t *testing.T) {
	c := NewCounting(Mallocator{})
	prev := SetDefault(c)
	defer SetDefault(prev)

	if Default() != Allocator(c) {
		t.Fatal("Default() does not return the installed allocator")
	}
	Default().Deallocate(Default().Allocate(8))
	if c.Allocations() != 1 || c.Frees() != 1 {
		t.Error("installed default allocator did not observe the calls")
	}
}

func TestBlockOfRoundTrip(t *testing.T) {
	h := NewHeap[float64](4)
	blk := blockOf(h.Data())
	if blk.Ptr() != h.block.Ptr() {
		t.Error("blockOf must reconstruct the original base pointer")
	}
	if blk.Size() != h.block.Size() {
		t.Errorf("blockOf size = %d, want %d", blk.Size(), h.block.Size())
	}
	h.Release()
}
