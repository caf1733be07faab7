// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package present implements the frame loop's external edge (§4.J):
// the Display sink collaborator (§6), a PPM writer for persisted
// output, and the resize-aware plumbing tying a swap chain to a
// sink (§9 supplemented feature 1).
package present

import "github.com/gviegas/rast/surface"

// Mode identifies the pixel layout a Sink should interpret surf as,
// matching §6's "Display sink" collaborator.
type Mode int

const (
	// BGRA is 4 bytes per pixel, as produced by Texture2D.
	BGRA Mode = iota
	// BGR is 3 bytes per pixel, the swap chain/render target layout.
	BGR
	// GreyF32 is 4-byte little-endian float32 depth, visualized as
	// greyscale.
	GreyF32
	// GreyU8 is single-byte greyscale, e.g. a stencil mask.
	GreyU8
)

// Sink is the Display sink collaborator (§6): a routine that blits a
// surface's bytes to some external destination (an OS window, an
// in-memory test double, a file), and a resize hook that a frame loop
// calls when the destination's extent changes.
type Sink interface {
	// Blit presents surf's contents, interpreted under mode, optionally
	// flipping horizontally and/or vertically. For on-screen sinks the
	// bytes behind surf are expected to be the swap chain's front
	// buffer as copied into its render target (driver.Device.Present);
	// for off-screen sinks they are whatever the caller copied into
	// the target buffer.
	Blit(surf *surface.Buffer2D, mode Mode, flipH, flipV bool) error
	// Resize notifies the sink that the destination's extent changed
	// to w×h.
	Resize(w, h int)
}
