//go:build (linux || darwin) && (amd64 || arm64)

// Package foreign adopts buffers owned by the C heap into loom's shared
// storage handles.
//
// The C allocator is reached through purego, without cgo: libc is opened
// once and malloc/free are registered as function bindings. A buffer
// adopted with Adopt is released back to the C heap by the last shared
// holder, through the handle's foreign release callback; loom's own
// allocators never touch it.
package foreign

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/loom-ml/loom/internal/mem"
)

var (
	loadOnce sync.Once
	loadErr  error

	cMalloc func(size uintptr) unsafe.Pointer
	cFree   func(ptr unsafe.Pointer)
)

// load opens libc and registers the allocator bindings. Safe to call
// multiple times; subsequent calls are no-ops.
func load() error {
	loadOnce.Do(func() {
		lib, err := purego.Dlopen(libcName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("foreign: loading %s: %w", libcName, err)
			return
		}
		purego.RegisterLibFunc(&cMalloc, lib, "malloc")
		purego.RegisterLibFunc(&cFree, lib, "free")
	})
	return loadErr
}

// Alloc reserves size bytes on the C heap. The memory is uninitialized
// and must be released with Free or through an adopting handle.
func Alloc(size int) (unsafe.Pointer, error) {
	if err := load(); err != nil {
		return nil, err
	}
	ptr := cMalloc(uintptr(size))
	if ptr == nil {
		return nil, fmt.Errorf("foreign: C malloc of %d bytes failed", size)
	}
	return ptr, nil
}

// Free returns ptr to the C heap. ptr must have come from Alloc and must
// not be reachable through any live handle.
func Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	if err := load(); err == nil {
		cFree(ptr)
	}
}

// Adopt wraps a C-owned buffer of n elements of type T in a shared
// handle. The last holder's release returns the buffer to the C heap.
func Adopt[T mem.Scalar](ptr unsafe.Pointer, n int) (*mem.Shared[T], error) {
	if err := load(); err != nil {
		return nil, err
	}
	return mem.NewSharedForeign[T](ptr, n, ptr, func(p unsafe.Pointer) {
		cFree(p)
	}), nil
}

// AllocShared allocates n elements of type T on the C heap and adopts
// the buffer in one step. The memory is uninitialized.
func AllocShared[T mem.Scalar](n int) (*mem.Shared[T], error) {
	var z T
	ptr, err := Alloc(n * int(unsafe.Sizeof(z)))
	if err != nil {
		return nil, err
	}
	return Adopt[T](ptr, n)
}
