// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/effect"
	"github.com/gviegas/rast/linear"
)

// runStencilMask implements §8 scenario 3: reset stencil to 0, draw a
// rectangle with depth-write=ZERO and stencilWriteMask=0xFF, then
// enable stencil test and draw a covering triangle — only pixels
// overlapping the rectangle should end up drawn.
func runStencilMask(args []string) error {
	const w, h = 64, 64
	const zNear, zFar = float32(0.1), float32(1000)

	d := driver.NewDevice()
	rt := d.CreateRenderTarget(w, h)
	sc := d.CreateSwapChain(rt)
	ds := d.CreateDepthStencilBuffer(w, h)
	ctx := d.CreateContext()
	d.BindRenderTarget(ctx, rt)
	d.BindSwapChain(ctx, sc)
	d.BindDepthStencilBuffer(ctx, ds)
	d.ResetStencil(ds, 0)

	fx := effect.NewFlatRGB(d)
	var identity linear.M4
	identity.I()
	fx.SetModel(identity)
	fx.SetView(identity)
	fx.SetProj(linear.PerspectiveFovLH(math32.Pi/2, 1, zNear, zFar))
	fx.Apply(d, ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.Color)
	vb := d.CreateVertexBuffer(fmtH)

	// Left half of the frustum's cross-section at z=3.
	rectTri0 := effect.NewTriangleMesh(
		effect.TriangleVertex{Pos: linear.V3{-3, -3, 3}, Color: linear.V3{0.2, 0.2, 0.2}},
		effect.TriangleVertex{Pos: linear.V3{-3, 3, 3}, Color: linear.V3{0.2, 0.2, 0.2}},
		effect.TriangleVertex{Pos: linear.V3{0, 3, 3}, Color: linear.V3{0.2, 0.2, 0.2}},
	)
	rectTri1 := effect.NewTriangleMesh(
		effect.TriangleVertex{Pos: linear.V3{-3, -3, 3}, Color: linear.V3{0.2, 0.2, 0.2}},
		effect.TriangleVertex{Pos: linear.V3{0, 3, 3}, Color: linear.V3{0.2, 0.2, 0.2}},
		effect.TriangleVertex{Pos: linear.V3{0, -3, 3}, Color: linear.V3{0.2, 0.2, 0.2}},
	)
	// A triangle covering the whole frustum cross-section at z=3.
	cover := effect.NewTriangleMesh(
		effect.TriangleVertex{Pos: linear.V3{-10, -10, 3}, Color: linear.V3{0, 0, 1}},
		effect.TriangleVertex{Pos: linear.V3{0, 14, 3}, Color: linear.V3{0, 0, 1}},
		effect.TriangleVertex{Pos: linear.V3{10, -10, 3}, Color: linear.V3{0, 0, 1}},
	)

	start := d.AllocVertices(vb, 9)
	for i := 0; i < 3; i++ {
		copy(d.VertexSlot(vb, start+i), rectTri0[i*24:i*24+24])
		copy(d.VertexSlot(vb, start+3+i), rectTri1[i*24:i*24+24])
		copy(d.VertexSlot(vb, start+6+i), cover[i*24:i*24+24])
	}

	d.SetDepthStencilState(ctx, driver.DepthStencilState{
		DepthWriteMask:   driver.DepthWriteZero,
		StencilWriteMask: 0xff,
	})
	d.Draw(ctx, vb, start, 6)

	d.SetDepthStencilState(ctx, driver.DepthStencilState{
		DepthWriteMask:     driver.DepthWriteZero,
		StencilTestEnabled: true,
	})
	d.Draw(ctx, vb, start+6, 3)

	d.Swap(sc)
	d.Present(sc)

	surf := d.RenderTargetSurface(rt)
	inside := surf.At(h/2, w/4)  // inside the rectangle's footprint
	outside := surf.At(h/2, w-1) // outside it

	if inside[2] != 0 || inside[1] != 0 || inside[0] == 0 {
		return fmt.Errorf("stencil-mask: pixel inside mask = (r=%d,g=%d,b=%d), want blue", inside[2], inside[1], inside[0])
	}
	if outside[0] != 0 || outside[1] != 0 || outside[2] != 0 {
		return fmt.Errorf("stencil-mask: pixel outside mask = (r=%d,g=%d,b=%d), want untouched black", outside[2], outside[1], outside[0])
	}
	return nil
}
