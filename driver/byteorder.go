// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"encoding/binary"
	"math"
)

// bytesToF32 decodes a little-endian float32 from the front of b,
// the same encoding used throughout the vertex/shader byte buffers
// (matches the teacher's encoding/binary + math.Float32frombits use
// for vertex attribute conversion).
func bytesToF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// f32ToBytes encodes v as a little-endian float32 into the front of b.
func f32ToBytes(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
