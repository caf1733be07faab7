// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver implements the device-owned resource table and the
// software rasterizer that drives it: buffers, textures, swap chains,
// depth/stencil surfaces, vertex formats, shader slots, render
// targets and the render context that binds them together.
package driver

import "fmt"

// tag discriminates the pool a Handle's index refers to.
type tag uint8

const (
	tagVertexFormat tag = iota
	tagVertexBuffer
	tagTexture2D
	tagSwapChain
	tagDepthStencil
	tagRenderTarget
	tagVertexShader
	tagPixelShader
	tagContext
)

// Handle is an opaque reference to a device resource: a pool tag, an
// index stable for the device's lifetime, and a back-pointer to the
// owning device. The zero Handle refers to no resource.
type Handle struct {
	tag   tag
	index uint32
	dev   *Device
}

// IsValid reports whether h was produced by a Create call (as
// opposed to being the zero Handle).
func (h Handle) IsValid() bool { return h.dev != nil }

// check panics if h does not belong to d or does not carry the
// expected tag. Passing a foreign device's handle to a Device method
// is a precondition violation (§7); this is the "may detect it"
// failure mode named in the resource-table design.
func (h Handle) check(d *Device, want tag) {
	if h.dev != d {
		panic("driver: handle belongs to a different device")
	}
	if h.tag != want {
		panic(fmt.Sprintf("driver: handle has tag %d, want %d", h.tag, want))
	}
}
