package mem

import "unsafe"

// Scalar is the constraint for element types a handle can store.
// It covers the numeric types loom arrays are built from, including the
// complex types used heavily in spectral and Green's-function workloads.
type Scalar interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~complex64 | ~complex128
}

// Debug enables the extra invariant checks relating null-ness, size and
// shared-table state. Element access is always bounds-checked by the
// runtime regardless of this flag.
var Debug = false

// ZeroInitComplex selects the zero-filling allocation path for complex
// element types in the default construction mode, letting allocators that
// distinguish the two use a faster zeroing path.
var ZeroInitComplex = false

// isComplex reports whether T is a complex type.
func isComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	}
	return false
}

// sizeOf returns the width of T in bytes.
func sizeOf[T Scalar]() int {
	var z T
	return int(unsafe.Sizeof(z))
}
