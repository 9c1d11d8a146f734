// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mem_test

import (
	"testing"

	"github.com/loom-ml/loom/mem"
)

// TestHandleInterface verifies every handle kind satisfies mem.Handle.
func TestHandleInterface(_ *testing.T) {
	var _ mem.Handle[float64] = (*mem.Heap[float64])(nil)
	var _ mem.Handle[float64] = (*mem.SSO[float64])(nil)
	var _ mem.Handle[float64] = (*mem.Stack[float64])(nil)
	var _ mem.Handle[float64] = (*mem.Shared[float64])(nil)
	var _ mem.Handle[float64] = (*mem.Borrowed[float64])(nil)
}

// TestHeapAPI verifies the heap handle alias exposes the expected API.
func TestHeapAPI(t *testing.T) {
	h := mem.NewHeap[float32](10)
	defer h.Release()

	if h.Size() != 10 {
		t.Errorf("Size() = %d, want 10", h.Size())
	}
	if h.IsNull() {
		t.Error("fresh heap handle must not be null")
	}

	h.Set(4, 2.5)
	if got := h.At(4); got != 2.5 {
		t.Errorf("At(4) = %v, want 2.5", got)
	}
}

// TestSharingAPI verifies shared handles keep a heap buffer alive.
func TestSharingAPI(t *testing.T) {
	h := mem.NewHeap[int64](4)
	h.Set(2, 77)

	s := mem.NewSharedFromHeap(h)
	if got := s.Refcount(); got != 2 {
		t.Errorf("Refcount() = %d, want 2", got)
	}

	h.Release()
	if got := s.At(2); got != 77 {
		t.Errorf("At(2) after owner release = %v, want 77", got)
	}
	s.Release()
}

// TestAllocatorAPI verifies the allocator decorators compose through the
// public surface.
func TestAllocatorAPI(t *testing.T) {
	lc := mem.NewLeakCheck(mem.Mallocator{})
	prev := mem.SetDefault(lc)
	defer mem.SetDefault(prev)

	h := mem.NewHeap[uint8](100)
	if blocks, _ := lc.Outstanding(); blocks != 1 {
		t.Errorf("outstanding blocks = %d, want 1", blocks)
	}
	h.Release()
	if blocks, bytes := lc.Outstanding(); blocks != 0 || bytes != 0 {
		t.Errorf("outstanding after release = (%d, %d), want (0, 0)", blocks, bytes)
	}
}
