// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package surface

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewZeroed(t *testing.T) {
	b := New(3, 2, 4, 4)
	require.Equal(t, 3, b.Width())
	require.Equal(t, 2, b.Height())
	require.Equal(t, 4, b.ElemSize())
	for _, v := range b.Bytes() {
		require.Zero(t, v)
	}
}

func TestStrideAlignment(t *testing.T) {
	// 3 columns * 3 bytes = 9, rounded up to a multiple of 4 is 12.
	b := New(3, 5, 3, 4)
	require.Equal(t, 12, b.Stride())
	require.Equal(t, 60, b.Size())
}

func TestAtOffset(t *testing.T) {
	b := New(4, 4, 4, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, r*b.Stride()+c*4, b.Offset(r, c))
		}
	}
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	b := New(2, 2, 4, 4)
	require.Panics(t, func() { b.At(2, 0) })
	require.Panics(t, func() { b.At(0, -1) })
}

func TestFillAll(t *testing.T) {
	b := New(2, 2, 4, 4)
	b.FillAll(0xAB)
	for _, v := range b.Bytes() {
		require.Equal(t, byte(0xAB), v)
	}
}

func TestFillAllAs(t *testing.T) {
	b := New(2, 2, 4, 4)
	FillAllAs(b, float32(1.5))
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			bits := b.At(r, c)
			require.Len(t, bits, 4)
		}
	}
}

func TestFillAllAsMismatchPanics(t *testing.T) {
	b := New(2, 2, 4, 4)
	require.Panics(t, func() { FillAllAs(b, uint8(1)) })
}
