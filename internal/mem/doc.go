// Package mem implements the storage handles underlying loom arrays.
//
// A handle owns or references a typed, fixed-identity buffer of Scalar
// elements together with its element count. Five variants cover the
// ownership strategies an array can pick at its definition site:
//
//   - Heap: sole owner of a buffer obtained from an Allocator.
//   - SSO: buffer held inline up to SSOCapacity elements, on the heap above.
//   - Stack: buffer always inline at StackCapacity elements, never allocates.
//   - Shared: reference-counted ownership, including buffers adopted from
//     foreign (C-owned) memory with a caller-supplied release callback.
//   - Borrowed: a non-owning view into storage owned by one of the above.
//
// All variants satisfy the Handle interface, so array code is generic over
// the storage strategy without runtime dispatch in element loops: kernels
// fetch Data() once and work on the slice.
//
// Shared ownership is tracked in a process-wide reference-count table.
// A Heap handle is promoted lazily: the first Shared handle built from it
// registers it in the table, so unshared heap buffers pay nothing.
package mem
