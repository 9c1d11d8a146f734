package mem

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// refTable is the process-wide registry of shared-buffer reference counts.
// Id 0 is reserved and means "not shared".
//
// Only id allocation and retirement take the lock. Steady-state incref and
// decref are plain atomic operations on an already-assigned slot: the hot
// paths of copy and release never contend.
//
// The table lives for the whole process; retired ids go on a free list and
// are handed out again by later registrations.
type refTable struct {
	mu    sync.Mutex
	slots atomic.Pointer[[]*atomic.Int64] // index = id; slot 0 unused
	free  []int64
}

// rtable is the singleton used by every shared-capable handle.
var rtable = newRefTable()

func newRefTable() *refTable {
	t := &refTable{}
	s := make([]*atomic.Int64, 1, 64)
	t.slots.Store(&s)
	return t
}

// get registers a fresh id with count 1.
func (t *refTable) get() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getLocked()
}

// getLocked is get for callers already holding t.mu, such as the lazy
// heap-promotion path which re-checks the handle's id under the lock.
func (t *refTable) getLocked() int64 {
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		(*t.slots.Load())[id].Store(1)
		return id
	}
	s := *t.slots.Load()
	id := int64(len(s))
	grown := append(s, new(atomic.Int64))
	grown[id].Store(1)
	// Publish the grown slice; readers of the old header never index the
	// new slot because their length predates it.
	t.slots.Store(&grown)
	return id
}

// slot resolves an id to its counter.
func (t *refTable) slot(id int64) *atomic.Int64 {
	s := *t.slots.Load()
	if Debug && (id <= 0 || id >= int64(len(s)) || s[id] == nil) {
		panic(fmt.Sprintf("mem: refcount table access with invalid id %d", id))
	}
	return s[id]
}

// incref atomically increments the count for id.
func (t *refTable) incref(id int64) {
	t.slot(id).Add(1)
}

// decref atomically decrements the count for id. It returns true iff this
// call made the count reach zero: the caller is the last holder and must
// release the underlying resource. Exactly one concurrent decref observes
// the zero crossing.
func (t *refTable) decref(id int64) bool {
	n := t.slot(id).Add(-1)
	if Debug && n < 0 {
		panic(fmt.Sprintf("mem: refcount underflow for id %d", id))
	}
	if n != 0 {
		return false
	}
	t.mu.Lock()
	t.free = append(t.free, id)
	t.mu.Unlock()
	return true
}

// refcount reads the current count for id. Diagnostic only.
func (t *refTable) refcount(id int64) int64 {
	return t.slot(id).Load()
}
