// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package bmp implements the image-loader collaborator (§6): it
// decodes a BMP file from disk into the BGRA byte layout
// driver.CreateTexture2D expects.
package bmp

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"
)

// LoadBMP decodes the BMP file at path, returning its width, height
// and pixel data as row-major BGRA bytes (§6 "LoadBMP(path) →
// (width, height, BGRA bytes)"). Decode and I/O failures are
// external-failure errors (§7), returned rather than panicked.
func LoadBMP(path string) (width, height int, pixels []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("bmp: %w", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("bmp: decode %s: %w", path, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*4)

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == w*4 {
		for i := 0; i < w*h; i++ {
			r := nrgba.Pix[i*4+0]
			g := nrgba.Pix[i*4+1]
			bl := nrgba.Pix[i*4+2]
			a := nrgba.Pix[i*4+3]
			pix[i*4+0] = bl
			pix[i*4+1] = g
			pix[i*4+2] = r
			pix[i*4+3] = a
		}
		return w, h, pix, nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			off := (y*w + x) * 4
			pix[off+0] = byte(bl >> 8)
			pix[off+1] = byte(g >> 8)
			pix[off+2] = byte(r >> 8)
			pix[off+3] = byte(a >> 8)
		}
	}
	return w, h, pix, nil
}
