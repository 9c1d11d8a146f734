//go:build linux || darwin

package mem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator obtains page-granular anonymous mappings straight from
// the OS. Useful for large buffers: pages come back zeroed, and
// deallocation returns them to the kernel immediately instead of waiting
// for the garbage collector.
type MmapAllocator struct{}

// Allocate maps size bytes of anonymous memory.
func (MmapAllocator) Allocate(size int) Block {
	if size <= 0 {
		return Block{}
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Sprintf("mem: mmap of %d bytes failed: %v", size, err))
	}
	return Block{buf: buf}
}

// AllocateZero maps size bytes of anonymous memory. Fresh anonymous pages
// are zero-filled by the kernel, so this is the same as Allocate.
func (m MmapAllocator) AllocateZero(size int) Block {
	return m.Allocate(size)
}

// Deallocate unmaps the block. The block must be exactly as returned by
// Allocate.
func (MmapAllocator) Deallocate(b Block) {
	if b.IsNull() {
		return
	}
	if err := unix.Munmap(b.buf); err != nil {
		panic(fmt.Sprintf("mem: munmap failed: %v", err))
	}
}
