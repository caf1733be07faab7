// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// textureElemSize is the element size of every Texture2D: one BGRA
// pixel (§3).
const textureElemSize = 4

// textureData is the resource-table entry for a 2D texture.
type textureData struct {
	bufIdx uint32
	w, h   int
}

// CreateTexture2D creates a w×h BGRA texture. If pixels is non-nil it
// must hold exactly w*h*4 bytes in row-major BGRA order and seeds the
// texture's contents; otherwise the texture starts zeroed.
func (d *Device) CreateTexture2D(w, h int, pixels []byte) Handle {
	bufIdx := d.allocBuffer(w, h, textureElemSize, 4)
	if pixels != nil {
		if len(pixels) != w*h*textureElemSize {
			panic("driver: texture pixel data has the wrong length")
		}
		buf := *d.buffers.at(bufIdx)
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				off := (r*w + c) * textureElemSize
				copy(buf.At(r, c), pixels[off:off+textureElemSize])
			}
		}
	}
	idx := d.textures.alloc(textureData{bufIdx: bufIdx, w: w, h: h})
	return d.handle(tagTexture2D, idx)
}

// Texture2DSize returns the texture's width and height in texels.
func (d *Device) Texture2DSize(h Handle) (w, ht int) {
	h.check(d, tagTexture2D)
	t := d.textures.at(h.index)
	return t.w, t.h
}

// mod wraps a possibly-negative x into [0, n).
func mod(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// Sample returns the (B, G, R) channels at (u, v), each normalized to
// [0, 1], wrapping u and v and with no filtering (§3).
func (d *Device) Sample(h Handle, u, v float32) (b, g, r float32) {
	h.check(d, tagTexture2D)
	t := d.textures.at(h.index)
	col := mod(int(u*float32(t.w)), t.w)
	row := mod(int(v*float32(t.h)), t.h)
	buf := *d.buffers.at(t.bufIdx)
	px := buf.At(row, col)
	const scale = 1.0 / 255.0
	return float32(px[0]) * scale, float32(px[1]) * scale, float32(px[2]) * scale
}

// WriteTexel overwrites the BGRA bytes at (row, col) directly, letting
// a caller seed individual texels without going through
// CreateTexture2D's single full-image path.
func (d *Device) WriteTexel(h Handle, row, col int, bgra [4]byte) {
	h.check(d, tagTexture2D)
	t := d.textures.at(h.index)
	buf := *d.buffers.at(t.bufIdx)
	copy(buf.At(row, col), bgra[:])
}
