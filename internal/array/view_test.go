package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowView(t *testing.T) {
	a, err := FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, Shape{2, 3})
	require.NoError(t, err)
	defer a.Release()

	r, err := Row(a, 1)
	require.NoError(t, err)

	assert.True(t, r.Shape().Equal(Shape{3}))
	assert.Equal(t, 5.0, r.At(1))
	assert.Same(t, &a.Data()[3], &r.Data()[0], "row view must alias the owner")

	// Writes through the view land in the owner.
	r.Set(-5, 1)
	assert.Equal(t, -5.0, a.At(1, 1))

	_, err = Row(a, 2)
	assert.Error(t, err)
}

func TestSliceView(t *testing.T) {
	a, err := Arange[int64](10)
	require.NoError(t, err)
	defer a.Release()

	s, err := Slice(a, 3, 7)
	require.NoError(t, err)

	assert.True(t, s.Shape().Equal(Shape{4}))
	assert.Equal(t, int64(3), s.At(0))
	assert.Equal(t, int64(6), s.At(3))

	_, err = Slice(a, 7, 3)
	assert.Error(t, err)
	_, err = Slice(a, 0, 11)
	assert.Error(t, err)
}

func TestViewOutOfRange(t *testing.T) {
	a, err := New[float32](Shape{4})
	require.NoError(t, err)
	defer a.Release()

	_, err = View(a, 2, Shape{3})
	assert.Error(t, err)
	_, err = View(a, -1, Shape{1})
	assert.Error(t, err)
}

func TestViewParentPromotion(t *testing.T) {
	a, err := Arange[float64](8)
	require.NoError(t, err)

	v, err := View(a, 2, Shape{4})
	require.NoError(t, err)

	// A view of a heap-backed array records its owner, so shared
	// promotion is possible from the view alone.
	parent := v.Storage().Parent()
	require.NotNil(t, parent)
	assert.Same(t, a.Storage(), parent)

	s := Share(a)
	a.Release()
	// The shared holder keeps the buffer, and with it the view, alive.
	assert.Equal(t, 3.0, v.At(1))
	s.Release()
}

func TestShareRefcounts(t *testing.T) {
	a, err := New[float64](Shape{5})
	require.NoError(t, err)

	s1 := Share(a)
	s2 := Share(a)
	assert.Equal(t, int64(3), s1.Storage().Refcount())

	s1.Release()
	s2.Release()
	a.Release()
}

func TestViewOfSSOArray(t *testing.T) {
	a, err := NewSSO[int32](Shape{4})
	require.NoError(t, err)
	defer a.Release()
	a.Fill(9)

	v, err := View(a, 1, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, int32(9), v.At(0))
	assert.Nil(t, v.Storage().Parent(), "only heap storage has a parent")
}
