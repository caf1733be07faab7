// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package surface implements the aligned 2D byte buffer that backs
// every pixel, depth and stencil surface in the driver package.
package surface

import "fmt"

// alignUp rounds n up to the next multiple of a (a must be a power
// of two, matching the row-alignment contract).
func alignUp(n, a int) int { return (n + a - 1) &^ (a - 1) }

// Buffer2D is a contiguous, row-padded, aligned byte matrix with a
// fixed element size. Rows are stored with stride Stride() bytes,
// where Stride() = ceil(Width()*ElemSize(), align). It has no
// exported constructor other than New: callers must not copy a
// Buffer2D value, since doing so aliases the same backing array
// under two owners; pass it by pointer instead.
type Buffer2D struct {
	data   []byte
	w, h   int
	elem   int
	stride int
}

// New constructs a zero-initialized buffer of w columns by h rows,
// elem bytes per element, with rows padded to a multiple of align
// bytes. align must be a power of two no smaller than 1.
func New(w, h, elem, align int) *Buffer2D {
	if w < 0 || h < 0 || elem <= 0 || align <= 0 {
		panic("surface: invalid buffer dimensions")
	}
	stride := alignUp(w*elem, align)
	return &Buffer2D{
		data:   make([]byte, stride*h),
		w:      w,
		h:      h,
		elem:   elem,
		stride: stride,
	}
}

// Width returns the number of columns.
func (b *Buffer2D) Width() int { return b.w }

// Height returns the number of rows.
func (b *Buffer2D) Height() int { return b.h }

// ElemSize returns the size in bytes of a single element.
func (b *Buffer2D) ElemSize() int { return b.elem }

// Stride returns the row stride in bytes.
func (b *Buffer2D) Stride() int { return b.stride }

// Count returns the total number of elements (Width * Height).
func (b *Buffer2D) Count() int { return b.w * b.h }

// Size returns the total size of the backing store in bytes.
func (b *Buffer2D) Size() int { return len(b.data) }

// Bytes returns the entire backing store. Mutations through the
// returned slice are visible to subsequent At calls.
func (b *Buffer2D) Bytes() []byte { return b.data }

// At returns the elem-byte slice for the element at (row r, column
// c). It panics if (r, c) is out of bounds.
func (b *Buffer2D) At(r, c int) []byte {
	if r < 0 || r >= b.h || c < 0 || c >= b.w {
		panic(fmt.Sprintf("surface: index (%d,%d) out of bounds for %dx%d buffer", r, c, b.w, b.h))
	}
	off := r*b.stride + c*b.elem
	return b.data[off : off+b.elem]
}

// Offset returns the byte offset of element (r, c) without bounds
// checking the slice (still validates r, c themselves).
func (b *Buffer2D) Offset(r, c int) int {
	if r < 0 || r >= b.h || c < 0 || c >= b.w {
		panic(fmt.Sprintf("surface: index (%d,%d) out of bounds for %dx%d buffer", r, c, b.w, b.h))
	}
	return r*b.stride + c*b.elem
}

// FillAll sets every byte in the backing store to v.
func (b *Buffer2D) FillAll(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// FillAllAs sets every element to a copy of v, whose in-memory size
// must equal b.ElemSize(). It panics otherwise.
func FillAllAs[T any](b *Buffer2D, v T) {
	var zero T
	size := int(sizeOf(zero))
	if size != b.elem {
		panic(fmt.Sprintf("surface: element size mismatch: buffer has %d, type has %d", b.elem, size))
	}
	src := asBytes(&v)
	for r := 0; r < b.h; r++ {
		for c := 0; c < b.w; c++ {
			copy(b.At(r, c), src)
		}
	}
}
