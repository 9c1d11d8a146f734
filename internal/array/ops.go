package array

import (
	"fmt"

	"github.com/loom-ml/loom/internal/backend/cpu"
	"github.com/loom-ml/loom/internal/mem"
)

// Add returns the element-wise sum of a and b in a fresh heap-backed
// array. Shapes must match exactly; there is no broadcasting.
func Add[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	dst, err := elementwiseDst(a, b)
	if err != nil {
		return nil, err
	}
	cpu.Add(dst.Data(), a.Data(), b.Data(), cfg)
	return dst, nil
}

// Sub returns the element-wise difference of a and b.
func Sub[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	dst, err := elementwiseDst(a, b)
	if err != nil {
		return nil, err
	}
	cpu.Sub(dst.Data(), a.Data(), b.Data(), cfg)
	return dst, nil
}

// Mul returns the element-wise product of a and b.
func Mul[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	dst, err := elementwiseDst(a, b)
	if err != nil {
		return nil, err
	}
	cpu.Mul(dst.Data(), a.Data(), b.Data(), cfg)
	return dst, nil
}

// Scale returns s * a in a fresh heap-backed array.
func Scale[T mem.Scalar, H mem.Handle[T]](a *Array[T, H], s T) *Array[T, *mem.Heap[T]] {
	dst, err := FromHandle[T](mem.NewHeapUninit[T](a.NumElements()), a.shape)
	if err != nil {
		panic(err)
	}
	cpu.Scale(dst.Data(), a.Data(), s, cfg)
	return dst
}

// Sum reduces a to the sum of its elements.
func Sum[T mem.Scalar, H mem.Handle[T]](a *Array[T, H]) T {
	return cpu.Sum(a.Data(), cfg)
}

// Dot computes the inner product of two rank-1 arrays of equal length.
func Dot[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (T, error) {
	var zero T
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return zero, fmt.Errorf("dot requires rank-1 arrays, got shapes %v and %v", a.shape, b.shape)
	}
	if a.shape[0] != b.shape[0] {
		return zero, fmt.Errorf("dot length mismatch: %d vs %d", a.shape[0], b.shape[0])
	}
	return cpu.Dot(a.Data(), b.Data(), cfg), nil
}

// MatMul computes the matrix product of two rank-2 arrays.
func MatMul[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	if len(a.shape) != 2 || len(b.shape) != 2 {
		return nil, fmt.Errorf("matmul requires rank-2 arrays, got shapes %v and %v", a.shape, b.shape)
	}
	m, k := a.shape[0], a.shape[1]
	k2, n := b.shape[0], b.shape[1]
	if k != k2 {
		return nil, fmt.Errorf("matmul inner dimensions differ: %v x %v", a.shape, b.shape)
	}
	dst, err := FromHandle[T](mem.NewHeapUninit[T](m*n), Shape{m, n})
	if err != nil {
		return nil, err
	}
	cpu.MatMul(dst.Data(), a.Data(), b.Data(), m, k, n, cfg)
	return dst, nil
}

func elementwiseDst[T mem.Scalar, HA mem.Handle[T], HB mem.Handle[T]](a *Array[T, HA], b *Array[T, HB]) (*Array[T, *mem.Heap[T]], error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("shape mismatch: %v vs %v", a.shape, b.shape)
	}
	return FromHandle[T](mem.NewHeapUninit[T](a.NumElements()), a.shape)
}
