// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import "github.com/gviegas/rast/internal/bitm"

// poolNBit is the granularity of a pool's validity bitmap: each Grow
// call extends the backing slice by this many slots at once.
const poolNBit = 64

// pool is an append-only, handle-indexed vector of T. It never frees
// a slot once allocated, matching the device's append-only resource
// tables (§4.C): indices remain stable for the pool's lifetime.
type pool[T any] struct {
	items []T
	valid bitm.Bitm[uint64]
}

// alloc appends v and returns the index it was stored at.
func (p *pool[T]) alloc(v T) uint32 {
	var idx int
	if i, ok := p.valid.Search(); ok {
		idx = i
	} else {
		var z [poolNBit]T
		p.items = append(p.items, z[:]...)
		idx = p.valid.Grow(1)
	}
	p.valid.Set(idx)
	p.items[idx] = v
	return uint32(idx)
}

// at returns a pointer to the element at idx. It panics if idx is out
// of range, the precondition-violation failure mode named in §4.C for
// indexing with a stale or foreign handle.
func (p *pool[T]) at(idx uint32) *T {
	if int(idx) >= len(p.items) || !p.valid.IsSet(int(idx)) {
		panic("driver: invalid resource handle")
	}
	return &p.items[idx]
}
