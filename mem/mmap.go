// Copyright 2025 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build linux || darwin

package mem

import (
	"github.com/loom-ml/loom/internal/mem"
)

// MmapAllocator allocates page-aligned blocks with anonymous mmap.
type MmapAllocator = mem.MmapAllocator
