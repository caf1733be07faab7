// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package present

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gviegas/rast/surface"
)

// ScalingSink wraps an inner Sink, nearest-neighbor resampling every
// blit to a fixed destination extent before forwarding it (§9
// supplemented feature 1, `Source/Core/RenderWindow.cpp`'s WM_SIZE
// handler: rather than recreate the swap chain on every resize, the
// present path resamples to the sink's current size and leaves
// drawing targeting the render target's own rectangle).
type ScalingSink struct {
	Inner         Sink
	Width, Height int
}

// NewScalingSink creates a sink resampling to w×h before forwarding
// to inner.
func NewScalingSink(inner Sink, w, h int) *ScalingSink {
	return &ScalingSink{Inner: inner, Width: w, Height: h}
}

// Blit resamples surf to the sink's current extent when it differs
// from surf's own, then forwards the result as BGRA.
func (s *ScalingSink) Blit(surf *surface.Buffer2D, mode Mode, flipH, flipV bool) error {
	if surf.Width() == s.Width && surf.Height() == s.Height {
		return s.Inner.Blit(surf, mode, flipH, flipV)
	}

	src := image.NewRGBA(image.Rect(0, 0, surf.Width(), surf.Height()))
	for r := 0; r < surf.Height(); r++ {
		for c := 0; c < surf.Width(); c++ {
			px := surf.At(r, c)
			off := src.PixOffset(c, r)
			switch mode {
			case BGRA:
				src.Pix[off], src.Pix[off+1], src.Pix[off+2], src.Pix[off+3] = px[2], px[1], px[0], px[3]
			case BGR:
				src.Pix[off], src.Pix[off+1], src.Pix[off+2], src.Pix[off+3] = px[2], px[1], px[0], 255
			case GreyU8:
				src.Pix[off], src.Pix[off+1], src.Pix[off+2], src.Pix[off+3] = px[0], px[0], px[0], 255
			case GreyF32:
				v := bytesToF32(px)
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				g := byte(v * 255)
				src.Pix[off], src.Pix[off+1], src.Pix[off+2], src.Pix[off+3] = g, g, g, 255
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	scaled := surface.New(s.Width, s.Height, 4, 4)
	for r := 0; r < s.Height; r++ {
		for c := 0; c < s.Width; c++ {
			off := dst.PixOffset(c, r)
			px := scaled.At(r, c)
			px[0], px[1], px[2], px[3] = dst.Pix[off+2], dst.Pix[off+1], dst.Pix[off], dst.Pix[off+3]
		}
	}
	return s.Inner.Blit(scaled, BGRA, flipH, flipV)
}

// Resize updates the destination extent and propagates to the inner
// sink.
func (s *ScalingSink) Resize(w, h int) {
	s.Width, s.Height = w, h
	s.Inner.Resize(w, h)
}
