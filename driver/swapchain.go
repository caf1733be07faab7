// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import "github.com/gviegas/rast/surface"

// swapChainElemSize matches a render target's BGR, 3-byte layout.
const swapChainElemSize = renderTargetElemSize

// swapChainData is the resource-table entry for a swap chain: two
// equally-sized BGR buffers, the index of the currently-visible one,
// and the render target it presents into.
type swapChainData struct {
	bufIdx [2]uint32
	front  int
	target Handle
}

// CreateSwapChain creates a swap chain sized to target's current
// rectangle (§3: "two BGR byte buffers sized to a bound render
// target's rectangle").
func (d *Device) CreateSwapChain(target Handle) Handle {
	rect := d.RenderTargetRect(target)
	var bufIdx [2]uint32
	bufIdx[0] = d.allocBuffer(rect.W, rect.H, swapChainElemSize, 4)
	bufIdx[1] = d.allocBuffer(rect.W, rect.H, swapChainElemSize, 4)
	idx := d.swapChains.alloc(swapChainData{bufIdx: bufIdx, target: target})
	return d.handle(tagSwapChain, idx)
}

// FrontIndex returns the swap chain's current front-buffer index (0
// or 1).
func (d *Device) FrontIndex(h Handle) int {
	h.check(d, tagSwapChain)
	return d.swapChains.at(h.index).front
}

// BackBuffer returns the buffer the rasterizer should draw into: the
// one currently not front-facing.
func (d *Device) BackBuffer(h Handle) *surface.Buffer2D {
	h.check(d, tagSwapChain)
	sc := d.swapChains.at(h.index)
	return *d.buffers.at(sc.bufIdx[1-sc.front])
}

// Swap flips the front-buffer index. Two successive calls return to
// the same index (§8: swap-chain idempotence over a pair of swaps).
func (d *Device) Swap(h Handle) {
	h.check(d, tagSwapChain)
	sc := d.swapChains.at(h.index)
	sc.front = 1 - sc.front
}

// Present copies the front buffer into its render target's
// underlying surface, at the target's rectangle.
func (d *Device) Present(h Handle) {
	h.check(d, tagSwapChain)
	sc := d.swapChains.at(h.index)
	front := *d.buffers.at(sc.bufIdx[sc.front])
	rect := d.RenderTargetRect(sc.target)
	surf := d.renderTargetSurface(sc.target)
	for r := 0; r < rect.H; r++ {
		for c := 0; c < rect.W; c++ {
			copy(surf.At(rect.Y+r, rect.X+c), front.At(r, c))
		}
	}
}

// ResizeSwapChain recreates h's two buffers to match its render
// target's (already-resized) rectangle (§9 supplemented: window
// resize recreates the swap chain's back buffers).
func (d *Device) ResizeSwapChain(h Handle) {
	h.check(d, tagSwapChain)
	sc := d.swapChains.at(h.index)
	rect := d.RenderTargetRect(sc.target)
	sc.bufIdx[0] = d.allocBuffer(rect.W, rect.H, swapChainElemSize, 4)
	sc.bufIdx[1] = d.allocBuffer(rect.W, rect.H, swapChainElemSize, 4)
	sc.front = 0
}
