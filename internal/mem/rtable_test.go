package mem

import (
	"sync"
	"testing"
)

func TestRefTableFreshID(t *testing.T) {
	tbl := newRefTable()

	id := tbl.get()
	if id == 0 {
		t.Fatal("get() must never hand out the reserved id 0")
	}
	if got := tbl.refcount(id); got != 1 {
		t.Errorf("fresh id refcount = %d, want 1", got)
	}

	id2 := tbl.get()
	if id2 == id {
		t.Errorf("two live registrations share id %d", id)
	}
}

func TestRefTableIncrefDecref(t *testing.T) {
	tbl := newRefTable()
	id := tbl.get()

	tbl.incref(id)
	tbl.incref(id)
	if got := tbl.refcount(id); got != 3 {
		t.Fatalf("refcount = %d, want 3", got)
	}

	if tbl.decref(id) {
		t.Error("decref with holders remaining must return false")
	}
	if tbl.decref(id) {
		t.Error("decref with holders remaining must return false")
	}
	if !tbl.decref(id) {
		t.Error("last decref must return true")
	}
}

func TestRefTableIDReuse(t *testing.T) {
	tbl := newRefTable()

	id := tbl.get()
	tbl.decref(id)

	// A retired id goes back on the free list and is handed out again
	// with a fresh count.
	reused := tbl.get()
	if reused != id {
		t.Errorf("retired id %d not reused, got %d", id, reused)
	}
	if got := tbl.refcount(reused); got != 1 {
		t.Errorf("reused id refcount = %d, want 1", got)
	}
}

func TestRefTableConcurrentSteadyState(t *testing.T) {
	tbl := newRefTable()
	id := tbl.get()

	const goroutines = 32
	const perG = 1000

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				tbl.incref(id)
			}
		}()
	}
	wg.Wait()

	if got := tbl.refcount(id); got != 1+goroutines*perG {
		t.Fatalf("refcount after concurrent incref = %d, want %d", got, 1+goroutines*perG)
	}

	// Exactly one concurrent decref may observe the zero crossing.
	last := make(chan bool, goroutines*perG+1)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				if tbl.decref(id) {
					last <- true
				}
			}
		}()
	}
	wg.Wait()
	if tbl.decref(id) {
		last <- true
	}
	close(last)

	count := 0
	for range last {
		count++
	}
	if count != 1 {
		t.Errorf("zero crossing observed %d times, want exactly 1", count)
	}
}

func TestRefTableConcurrentRegistration(t *testing.T) {
	tbl := newRefTable()

	const goroutines = 64
	ids := make([]int64, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids[g] = tbl.get()
		}(g)
	}
	wg.Wait()

	seen := make(map[int64]bool, goroutines)
	for _, id := range ids {
		if id == 0 {
			t.Fatal("reserved id 0 handed out")
		}
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
	}
}
