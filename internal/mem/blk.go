package mem

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Block is the untyped unit of currency between handles and allocators:
// a base pointer plus a byte size.
type Block struct {
	buf []byte
}

// Ptr returns the base pointer of the block, or nil for a null block.
func (b Block) Ptr() unsafe.Pointer {
	if len(b.buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.buf[0])
}

// Bytes returns the raw byte view of the block.
func (b Block) Bytes() []byte { return b.buf }

// Size returns the byte size of the block.
func (b Block) Size() int { return len(b.buf) }

// IsNull reports whether the block references no memory.
func (b Block) IsNull() bool { return b.buf == nil }

// blockOf reconstructs the block descriptor for a typed buffer. Used by
// shared handles, which carry only the typed view of the memory they
// co-own but must hand the original block back to the allocator.
func blockOf[T Scalar](data []T) Block {
	if len(data) == 0 {
		return Block{}
	}
	n := len(data) * sizeOf[T]()
	return Block{buf: unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), n)}
}

// Allocator is the pluggable allocation contract handles are built on.
//
// Allocate returns a block of at least size bytes with no guarantee about
// its contents; AllocateZero returns one that is zero-filled. Allocation
// failure is fatal: numeric kernels assume memory is available, so
// allocators panic rather than return an error. Deallocate releases a
// block previously returned by the same allocator.
type Allocator interface {
	Allocate(size int) Block
	AllocateZero(size int) Block
	Deallocate(b Block)
}

// Mallocator is the stateless default allocator, backed by the Go heap.
// Both allocation paths hand out zeroed memory (the runtime zeroes for
// us); the two entry points are kept distinct so decorators and allocators
// with a real calloc path can tell them apart.
type Mallocator struct{}

// Allocate returns a block of size bytes.
func (Mallocator) Allocate(size int) Block {
	if size <= 0 {
		return Block{}
	}
	return Block{buf: make([]byte, size)}
}

// AllocateZero returns a zero-filled block of size bytes.
func (Mallocator) AllocateZero(size int) Block {
	if size <= 0 {
		return Block{}
	}
	return Block{buf: make([]byte, size)}
}

// Deallocate drops the block. The backing memory is reclaimed by the
// garbage collector once no handle references it.
func (Mallocator) Deallocate(Block) {}

// Counting wraps an allocator and counts calls. Test instrumentation for
// the "inline storage never allocates" properties.
type Counting struct {
	inner      Allocator
	allocs     atomic.Int64
	zeroAllocs atomic.Int64
	frees      atomic.Int64
}

// NewCounting returns a counting decorator around inner.
func NewCounting(inner Allocator) *Counting {
	return &Counting{inner: inner}
}

// Allocate forwards to the wrapped allocator and counts the call.
func (c *Counting) Allocate(size int) Block {
	c.allocs.Add(1)
	return c.inner.Allocate(size)
}

// AllocateZero forwards to the wrapped allocator and counts the call.
func (c *Counting) AllocateZero(size int) Block {
	c.zeroAllocs.Add(1)
	return c.inner.AllocateZero(size)
}

// Deallocate forwards to the wrapped allocator and counts the call.
func (c *Counting) Deallocate(b Block) {
	c.frees.Add(1)
	c.inner.Deallocate(b)
}

// Allocations returns the total number of Allocate and AllocateZero calls.
func (c *Counting) Allocations() int64 {
	return c.allocs.Load() + c.zeroAllocs.Load()
}

// Frees returns the number of Deallocate calls.
func (c *Counting) Frees() int64 { return c.frees.Load() }

// LeakCheck wraps an allocator and tracks outstanding blocks by base
// address. Diagnostic only; not meant for production paths.
type LeakCheck struct {
	inner Allocator
	mu    sync.Mutex
	live  map[uintptr]int // base address -> byte size
}

// NewLeakCheck returns a leak-checking decorator around inner.
func NewLeakCheck(inner Allocator) *LeakCheck {
	return &LeakCheck{inner: inner, live: make(map[uintptr]int)}
}

// Allocate forwards to the wrapped allocator and records the block.
func (l *LeakCheck) Allocate(size int) Block {
	b := l.inner.Allocate(size)
	l.record(b)
	return b
}

// AllocateZero forwards to the wrapped allocator and records the block.
func (l *LeakCheck) AllocateZero(size int) Block {
	b := l.inner.AllocateZero(size)
	l.record(b)
	return b
}

// Deallocate forgets the block and forwards to the wrapped allocator.
// Releasing a block this decorator never handed out is a programming
// error and panics.
func (l *LeakCheck) Deallocate(b Block) {
	if !b.IsNull() {
		key := uintptr(b.Ptr())
		l.mu.Lock()
		if _, ok := l.live[key]; !ok {
			l.mu.Unlock()
			panic(fmt.Sprintf("mem: deallocating unknown block %#x (%d bytes)", key, b.Size()))
		}
		delete(l.live, key)
		l.mu.Unlock()
	}
	l.inner.Deallocate(b)
}

func (l *LeakCheck) record(b Block) {
	if b.IsNull() {
		return
	}
	l.mu.Lock()
	l.live[uintptr(b.Ptr())] = b.Size()
	l.mu.Unlock()
}

// Outstanding returns the number of live blocks and their total byte size.
// Both are zero when every allocation has been released.
func (l *LeakCheck) Outstanding() (blocks int, bytes int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, size := range l.live {
		bytes += size
	}
	return len(l.live), bytes
}

// allocBox wraps the default allocator so it can be swapped atomically.
type allocBox struct {
	a Allocator
}

var defaultAlloc atomic.Pointer[allocBox]

func init() {
	defaultAlloc.Store(&allocBox{a: Mallocator{}})
}

// Default returns the process-wide default allocator. Handles constructed
// without an explicit allocator go through it.
func Default() Allocator {
	return defaultAlloc.Load().a
}

// SetDefault installs a as the default allocator and returns the previous
// one, so diagnostic decorators can observe production paths.
func SetDefault(a Allocator) Allocator {
	prev := defaultAlloc.Swap(&allocBox{a: a})
	return prev.a
}
