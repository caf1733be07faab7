// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package bmp

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestLoadBMPRoundTrip(t *testing.T) {
	const w, h = 4, 3
	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.Set(x, y, color.NRGBA{R: byte(x * 10), G: byte(y * 10), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))

	path := filepath.Join(t.TempDir(), "test.bmp")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	gotW, gotH, pixels, err := LoadBMP(path)
	require.NoError(t, err)
	require.Equal(t, w, gotW)
	require.Equal(t, h, gotH)
	require.Len(t, pixels, w*h*4)

	off := (1*w + 2) * 4
	require.Equal(t, byte(200), pixels[off+0]) // B
	require.Equal(t, byte(10), pixels[off+1])  // G
	require.Equal(t, byte(20), pixels[off+2])  // R
}
