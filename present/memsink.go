// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package present

import (
	"fmt"

	"github.com/gviegas/rast/surface"
)

// MemSink is an in-memory Sink: it keeps the most recent Blit as
// packed RGBA bytes and records every Resize call, standing in for a
// real OS window
// (§9 supplemented feature 1: the windowing collaborator stays an
// interface with an in-memory test double, never a real window).
type MemSink struct {
	Width, Height int
	RGBA          []byte
	Resizes       [][2]int
}

// NewMemSink creates a sink with no prior blit, sized w×h.
func NewMemSink(w, h int) *MemSink {
	return &MemSink{Width: w, Height: h}
}

// Blit converts surf to packed RGBA under mode, honoring flipH/flipV,
// and stores the result in RGBA.
func (s *MemSink) Blit(surf *surface.Buffer2D, mode Mode, flipH, flipV bool) error {
	w, h := surf.Width(), surf.Height()
	out := make([]byte, w*h*4)
	for r := 0; r < h; r++ {
		sr := r
		if flipV {
			sr = h - 1 - r
		}
		for c := 0; c < w; c++ {
			sc := c
			if flipH {
				sc = w - 1 - c
			}
			px := surf.At(sr, sc)
			off := (r*w + c) * 4
			switch mode {
			case BGRA:
				out[off+0], out[off+1], out[off+2], out[off+3] = px[2], px[1], px[0], px[3]
			case BGR:
				out[off+0], out[off+1], out[off+2], out[off+3] = px[2], px[1], px[0], 255
			case GreyU8:
				out[off+0], out[off+1], out[off+2], out[off+3] = px[0], px[0], px[0], 255
			case GreyF32:
				v := bytesToF32(px)
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				g := byte(v * 255)
				out[off+0], out[off+1], out[off+2], out[off+3] = g, g, g, 255
			default:
				return fmt.Errorf("present: MemSink.Blit: unknown mode %d", mode)
			}
		}
	}
	s.Width, s.Height, s.RGBA = w, h, out
	return nil
}

// Resize records the new extent.
func (s *MemSink) Resize(w, h int) {
	s.Resizes = append(s.Resizes, [2]int{w, h})
}
