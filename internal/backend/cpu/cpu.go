// Package cpu implements the CPU kernels loom arrays dispatch to.
//
// Kernels are generic over the element type and operate on plain slices:
// the array layer fetches each handle's buffer once with Data(), so no
// storage dispatch happens inside element loops. Parallelism is chunked
// through internal/parallel and controlled by the caller's Config.
package cpu

// Ordered is the subset of element types with a total order. Complex
// types support the arithmetic kernels but not Max.
type Ordered interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}
