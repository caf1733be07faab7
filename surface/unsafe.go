// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package surface

import "unsafe"

// sizeOf returns the in-memory size of v's type.
func sizeOf[T any](v T) uintptr { return unsafe.Sizeof(v) }

// asBytes returns a byte view over *v, valid only for the lifetime
// of v and only for plain-old-data types (no pointers, no slices).
func asBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
