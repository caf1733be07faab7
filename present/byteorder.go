// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package present

import (
	"encoding/binary"
	"math"
)

// bytesToF32 decodes a little-endian float32 from the front of b.
func bytesToF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
