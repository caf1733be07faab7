// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import "github.com/gviegas/rast/surface"

// Device owns every resource reachable through a Handle: it holds one
// append-only pool per resource kind plus a single pool of backing
// byte buffers (§4.C). A process may use more than one Device; a
// Handle from one Device must never be passed to another's methods.
type Device struct {
	buffers       pool[*surface.Buffer2D]
	vertexFormats pool[VertexFormat]
	vertexBuffers pool[vertexBufferData]
	textures      pool[textureData]
	swapChains    pool[swapChainData]
	depthStencils pool[depthStencilData]
	renderTargets pool[renderTargetData]
	vertexShaders pool[vertexShaderData]
	pixelShaders  pool[pixelShaderData]
	contexts      pool[contextData]
}

// NewDevice returns a freshly initialized, empty Device.
func NewDevice() *Device { return &Device{} }

// allocBuffer creates a new aligned 2D buffer and returns the index
// it was stored at in the device's shared buffer pool.
func (d *Device) allocBuffer(w, h, elem, align int) uint32 {
	return d.buffers.alloc(surface.New(w, h, elem, align))
}

func (d *Device) handle(t tag, idx uint32) Handle {
	return Handle{tag: t, index: idx, dev: d}
}
