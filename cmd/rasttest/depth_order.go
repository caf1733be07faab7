// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/effect"
	"github.com/gviegas/rast/linear"
)

// ndcDepth computes the NDC depth PerspectiveFovLH assigns to
// camera-space depth z, matching its own fRange = zFar/(zFar-zNear)
// and zNDC = fRange*(z-zNear)/z derivation.
func ndcDepth(z, zNear, zFar float32) float32 {
	fRange := zFar / (zFar - zNear)
	return fRange * (z - zNear) / z
}

func absDiffF(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}

// runDepthOrder implements §8 scenario 2: draw two overlapping
// triangles, a red one at z=3 behind a green one at z=2; overlapping
// pixels must end up green, and the depth buffer must hold the
// nearer triangle's NDC depth.
func runDepthOrder(args []string) error {
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
	d.SetDepthStencilState(ctx, driver.DepthStencilState{DepthTestEnabled: true, DepthWriteMask: driver.DepthWriteAll})

	fx := effect.NewFlatRGB(d)
	var identity linear.M4
	identity.I()
	fx.SetModel(identity)
	fx.SetView(identity)
	fx.SetProj(linear.PerspectiveFovLH(math32.Pi/2, 1, zNear, zFar))
	fx.Apply(d, ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.Color)
	vb := d.CreateVertexBuffer(fmtH)

	red := effect.NewTriangleMesh(
		effect.TriangleVertex{Pos: linear.V3{-10, -10, 3}, Color: linear.V3{1, 0, 0}},
		effect.TriangleVertex{Pos: linear.V3{0, 14, 3}, Color: linear.V3{1, 0, 0}},
		effect.TriangleVertex{Pos: linear.V3{10, -10, 3}, Color: linear.V3{1, 0, 0}},
	)
	green := effect.NewTriangleMesh(
		effect.TriangleVertex{Pos: linear.V3{-10, -10, 2}, Color: linear.V3{0, 1, 0}},
		effect.TriangleVertex{Pos: linear.V3{0, 14, 2}, Color: linear.V3{0, 1, 0}},
		effect.TriangleVertex{Pos: linear.V3{10, -10, 2}, Color: linear.V3{0, 1, 0}},
	)

	start := d.AllocVertices(vb, 6)
	for i := 0; i < 3; i++ {
		copy(d.VertexSlot(vb, start+i), red[i*24:i*24+24])
		copy(d.VertexSlot(vb, start+3+i), green[i*24:i*24+24])
	}

	d.Draw(ctx, vb, start, 3)
	d.Draw(ctx, vb, start+3, 3)
	d.Swap(sc)
	d.Present(sc)

	surf := d.RenderTargetSurface(rt)
	px := surf.At(h/2, w/2)
	b, g, r := px[0], px[1], px[2]
	if !(g > r && g > b) {
		return fmt.Errorf("depth-order: centroid pixel (r=%d,g=%d,b=%d) is not green", r, g, b)
	}

	depth := d.DepthBuffer(ds)
	stored := bytesToF32(depth.At(h/2, w/2))
	want := ndcDepth(2, zNear, zFar)
	if absDiffF(stored, want) > 1e-3 {
		return fmt.Errorf("depth-order: stored depth %v, want %v", stored, want)
	}
	return nil
}
