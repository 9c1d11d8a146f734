//go:build (linux || darwin) && (amd64 || arm64)

package foreign

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfNoLibc skips the test when the C library cannot be loaded, e.g.
// on static-only systems.
func skipIfNoLibc(t *testing.T) {
	t.Helper()
	if err := load(); err != nil {
		t.Skipf("C library unavailable: %v", err)
	}
}

func TestAllocFree(t *testing.T) {
	skipIfNoLibc(t)

	ptr, err := Alloc(256)
	require.NoError(t, err)
	require.NotNil(t, ptr)

	// The memory is writable.
	b := (*byte)(ptr)
	*b = 0xab
	assert.Equal(t, byte(0xab), *b)

	Free(ptr)
}

func TestAdoptSharesCBuffer(t *testing.T) {
	skipIfNoLibc(t)

	ptr, err := Alloc(8 * 8)
	require.NoError(t, err)

	s, err := Adopt[float64](ptr, 8)
	require.NoError(t, err)
	require.Equal(t, 8, s.Size())

	s.Set(3, 1.5)
	assert.Equal(t, 1.5, *(*float64)(unsafe.Add(ptr, 3*8)), "handle must view the C buffer in place")

	c := s.Clone()
	assert.Equal(t, int64(2), c.Refcount())

	// The last holder returns the buffer to the C heap.
	s.Release()
	c.Release()
}

func TestAllocShared(t *testing.T) {
	skipIfNoLibc(t)

	s, err := AllocShared[int32](64)
	require.NoError(t, err)
	require.Equal(t, 64, s.Size())

	for i := 0; i < s.Size(); i++ {
		s.Set(i, int32(i))
	}
	assert.Equal(t, int32(63), s.At(63))
	s.Release()
}
