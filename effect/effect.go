// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package effect bundles a vertex/pixel shader pair, their formats
// and a typed constant block behind a single Apply operation (§4.H).
package effect

import (
	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/linear"
)

// Effect is a prebuilt VS/PS pair plus the constant blocks its
// shaders read. The concrete constructors (NewFlatRGB, NewTextured,
// NewBlinnPhong) lay out the constants block for their own shaders;
// callers only ever set named fields through the Set* methods.
type Effect struct {
	vs, ps         driver.Handle
	inFmt, outFmt  driver.VertexFormat
	vsConsts       []byte
	psConsts       []byte
}

// InFormat returns the VS-in vertex format the effect's vertex
// buffers must be created with.
func (e *Effect) InFormat() driver.VertexFormat { return e.inFmt }

// Apply binds the effect's shaders and constant blocks to ctx,
// leaving every other piece of context state (render target, swap
// chain, depth/stencil, blend) to the caller.
func (e *Effect) Apply(d *driver.Device, ctx driver.Handle) {
	d.BindShaders(ctx, e.vs, e.ps)
	d.BindConstants(ctx, e.vsConsts, e.psConsts)
}

func writeM4(b []byte, off int, m *linear.M4) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			f32ToBytes(b[off+(i*4+j)*4:], m[i][j])
		}
	}
}

func writeV3(b []byte, off int, v linear.V3) {
	f32ToBytes(b[off:], v[0])
	f32ToBytes(b[off+4:], v[1])
	f32ToBytes(b[off+8:], v[2])
}

func readV3(b []byte, off int) linear.V3 {
	return linear.V3{bytesToF32(b[off:]), bytesToF32(b[off+4:]), bytesToF32(b[off+8:])}
}

func readM4(b []byte, off int) (m linear.M4) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = bytesToF32(b[off+(i*4+j)*4:])
		}
	}
	return
}
