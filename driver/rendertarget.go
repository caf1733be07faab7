// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import "github.com/gviegas/rast/surface"

// renderTargetElemSize is the per-pixel size of a render target's
// underlying surface: BGR, 3 bytes (§3 swap chain / present path).
const renderTargetElemSize = 3

// renderTargetData is the resource-table entry for a render target: a
// rectangle into a shared backing surface.
type renderTargetData struct {
	bufIdx uint32
	rect   Rect
}

// CreateRenderTarget creates a w×h off-screen surface and a render
// target covering it entirely.
func (d *Device) CreateRenderTarget(w, h int) Handle {
	bufIdx := d.allocBuffer(w, h, renderTargetElemSize, 4)
	idx := d.renderTargets.alloc(renderTargetData{bufIdx: bufIdx, rect: Rect{0, 0, w, h}})
	return d.handle(tagRenderTarget, idx)
}

// CreateSubRenderTarget creates a render target over rect, a
// sub-rectangle of parent's rectangle, sharing parent's backing
// surface (§3: "sub-rectangles may be created from an existing render
// target"). It panics if rect is not fully contained in parent's
// rectangle.
func (d *Device) CreateSubRenderTarget(parent Handle, rect Rect) Handle {
	parent.check(d, tagRenderTarget)
	p := d.renderTargets.at(parent.index)
	if !p.rect.contains(rect) {
		panic("driver: sub render target rectangle exceeds parent bounds")
	}
	idx := d.renderTargets.alloc(renderTargetData{bufIdx: p.bufIdx, rect: rect})
	return d.handle(tagRenderTarget, idx)
}

// RenderTargetRect returns the target's rectangle.
func (d *Device) RenderTargetRect(h Handle) Rect {
	h.check(d, tagRenderTarget)
	return d.renderTargets.at(h.index).rect
}

// renderTargetSurface returns the target's underlying backing buffer
// (the full surface, not just its rectangle).
func (d *Device) renderTargetSurface(h Handle) *surface.Buffer2D {
	h.check(d, tagRenderTarget)
	rt := d.renderTargets.at(h.index)
	return *d.buffers.at(rt.bufIdx)
}

// RenderTargetSurface returns the backing surface for render target
// h, giving external callers (the present package's Blit path) read
// access to a drawn frame's pixels (§6 Display sink, off-screen
// target case).
func (d *Device) RenderTargetSurface(h Handle) *surface.Buffer2D {
	return d.renderTargetSurface(h)
}

// ResizeRenderTarget reallocates a root render target's backing
// surface to w×h, resetting its rectangle to cover the new extent. It
// panics if h is a sub render target, since its backing is shared
// with a parent (§9 supplemented: window resize recreates the back
// buffer, never a sub-rectangle view onto it).
func (d *Device) ResizeRenderTarget(h Handle, w, ht int) {
	h.check(d, tagRenderTarget)
	rt := d.renderTargets.at(h.index)
	// A sub render target is always created after the target whose
	// backing it shares, so an earlier entry with the same buffer marks
	// h as a sub render target.
	for i := uint32(0); i < h.index; i++ {
		if d.renderTargets.at(i).bufIdx == rt.bufIdx {
			panic("driver: cannot resize a sub render target")
		}
	}
	*d.buffers.at(rt.bufIdx) = surface.New(w, ht, renderTargetElemSize, 4)
	rt.rect = Rect{0, 0, w, ht}
}
