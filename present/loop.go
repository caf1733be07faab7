// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package present

import "github.com/gviegas/rast/driver"

// Loop ties a device's render target/swap chain pair to a Sink,
// implementing the frame loop's present step (§4.J) and propagating
// a destination resize into the device (§9 supplemented feature 1).
type Loop struct {
	d    *driver.Device
	rt   driver.Handle
	sc   driver.Handle
	sink Sink
	mode Mode
}

// NewLoop creates a loop presenting rt/sc's frames to sink under
// mode (normally BGR, matching the render target's own layout).
func NewLoop(d *driver.Device, rt, sc driver.Handle, sink Sink, mode Mode) *Loop {
	return &Loop{d: d, rt: rt, sc: sc, sink: sink, mode: mode}
}

// Present flips the swap chain, copies its new front buffer into the
// render target's surface, and blits that surface to the sink.
func (l *Loop) Present(flipH, flipV bool) error {
	l.d.Swap(l.sc)
	l.d.Present(l.sc)
	surf := l.d.RenderTargetSurface(l.rt)
	return l.sink.Blit(surf, l.mode, flipH, flipV)
}

// Resize recreates the render target and swap chain at the new
// extent, then notifies the sink.
func (l *Loop) Resize(w, h int) {
	l.d.ResizeRenderTarget(l.rt, w, h)
	l.d.ResizeSwapChain(l.sc)
	l.sink.Resize(w, h)
}
