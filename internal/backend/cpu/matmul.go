package cpu

import (
	"github.com/loom-ml/loom/internal/mem"
	"github.com/loom-ml/loom/internal/parallel"
)

// MatMul computes the (m x n) product of a (m x k) and b (k x n), all
// row-major and contiguous, into dst. Rows are distributed across
// workers; the inner loops run over contiguous memory.
func MatMul[T mem.Scalar](dst, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		row := dst[i*n : (i+1)*n]
		for j := range row {
			row[j] = 0
		}
		for l := 0; l < k; l++ {
			aik := a[i*k+l]
			if aik == 0 {
				continue
			}
			brow := b[l*n : (l+1)*n]
			for j, bv := range brow {
				row[j] += aik * bv
			}
		}
	}, cfg)
}
