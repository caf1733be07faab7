// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTexture2DSeedsPixels(t *testing.T) {
	d := NewDevice()
	pixels := []byte{
		10, 20, 30, 255, 40, 50, 60, 255,
		70, 80, 90, 255, 100, 110, 120, 255,
	}
	tex := d.CreateTexture2D(2, 2, pixels)
	w, h := d.Texture2DSize(tex)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)

	b, g, r := d.Sample(tex, 0.25, 0.25)
	assert.InDelta(t, 10.0/255, b, 1e-6)
	assert.InDelta(t, 20.0/255, g, 1e-6)
	assert.InDelta(t, 30.0/255, r, 1e-6)

	b, g, r = d.Sample(tex, 0.75, 0.75)
	assert.InDelta(t, 100.0/255, b, 1e-6)
	assert.InDelta(t, 110.0/255, g, 1e-6)
	assert.InDelta(t, 120.0/255, r, 1e-6)
}

func TestCreateTexture2DWrongLengthPanics(t *testing.T) {
	d := NewDevice()
	require.Panics(t, func() { d.CreateTexture2D(2, 2, []byte{1, 2, 3}) })
}

func TestCreateTexture2DNilPixelsStartsZeroed(t *testing.T) {
	d := NewDevice()
	tex := d.CreateTexture2D(1, 1, nil)
	b, g, r := d.Sample(tex, 0.5, 0.5)
	assert.Equal(t, float32(0), b)
	assert.Equal(t, float32(0), g)
	assert.Equal(t, float32(0), r)
}

func TestSampleWrapsCoordinates(t *testing.T) {
	d := NewDevice()
	pixels := []byte{
		1, 2, 3, 255, 4, 5, 6, 255,
		7, 8, 9, 255, 10, 11, 12, 255,
	}
	tex := d.CreateTexture2D(2, 2, pixels)

	// Adding a whole UV period reaches the same texel.
	bIn, gIn, rIn := d.Sample(tex, 0.25, 0.25)
	bWrap, gWrap, rWrap := d.Sample(tex, 1.25, 1.25)
	assert.Equal(t, bIn, bWrap)
	assert.Equal(t, gIn, gWrap)
	assert.Equal(t, rIn, rWrap)

	// A negative coordinate still resolves to a texel within bounds
	// rather than panicking or indexing out of range.
	assert.NotPanics(t, func() { d.Sample(tex, -0.75, -0.75) })
	bNeg, gNeg, rNeg := d.Sample(tex, -0.75, -0.75)
	bPos, gPos, rPos := d.Sample(tex, 0.75, 0.75)
	assert.Equal(t, bPos, bNeg)
	assert.Equal(t, gPos, gNeg)
	assert.Equal(t, rPos, rNeg)
}

func TestWriteTexelOverwritesSample(t *testing.T) {
	d := NewDevice()
	tex := d.CreateTexture2D(2, 2, nil)
	d.WriteTexel(tex, 1, 0, [4]byte{200, 100, 50, 255})
	b, g, r := d.Sample(tex, 0.25, 0.75)
	assert.InDelta(t, 200.0/255, b, 1e-6)
	assert.InDelta(t, 100.0/255, g, 1e-6)
	assert.InDelta(t, 50.0/255, r, 1e-6)
}
