// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/effect"
	"github.com/gviegas/rast/linear"
	"github.com/gviegas/rast/present"
)

// runTrianglePPM implements §8 scenario 1: draw one RGB-interpolated
// triangle into an 800×600 swap chain and write the front buffer to a
// PPM file. args[0], if given, overrides the output path (default
// "output.ppm").
func runTrianglePPM(args []string) error {
	out := "output.ppm"
	if len(args) > 0 {
		out = args[0]
	}

	const w, h = 800, 600
	d := driver.NewDevice()
	rt := d.CreateRenderTarget(w, h)
	sc := d.CreateSwapChain(rt)
	ctx := d.CreateContext()
	d.BindRenderTarget(ctx, rt)
	d.BindSwapChain(ctx, sc)

	fx := effect.NewFlatRGB(d)
	var identity linear.M4
	identity.I()
	fx.SetModel(identity)
	fx.SetView(identity)
	fx.SetProj(linear.PerspectiveFovLH(math32.Pi/2, 4.0/3.0, 0.1, 1000))
	fx.Apply(d, ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.Color)
	vb := d.CreateVertexBuffer(fmtH)
	raw := effect.NewTriangleMesh(
		effect.TriangleVertex{Pos: linear.V3{-1, -1, 3}, Color: linear.V3{1, 0, 0}},
		effect.TriangleVertex{Pos: linear.V3{0, 1, 3}, Color: linear.V3{0, 1, 0}},
		effect.TriangleVertex{Pos: linear.V3{1, -1, 3}, Color: linear.V3{0, 0, 1}},
	)
	start := d.AllocVertices(vb, 3)
	for i := 0; i < 3; i++ {
		copy(d.VertexSlot(vb, start+i), raw[i*24:i*24+24])
	}

	d.Draw(ctx, vb, start, 3)
	d.Swap(sc)
	d.Present(sc)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("triangle-ppm: %w", err)
	}
	defer f.Close()
	surf := d.RenderTargetSurface(rt)
	if err := present.WritePPM(f, surf); err != nil {
		return fmt.Errorf("triangle-ppm: %w", err)
	}

	// The corners project to (w*3/8, h*2/3), (w/2, h/3) and
	// (w*5/8, h*2/3), so the centroid lies at column w/2, row 5h/9.
	px := surf.At(h*5/9, w/2)
	b, g, r := int(px[0]), int(px[1]), int(px[2])
	for _, c := range []int{b, g, r} {
		if absDiff(c, 85) > 5 {
			return fmt.Errorf("triangle-ppm: centroid pixel (r=%d,g=%d,b=%d) not within 5/255 of (85,85,85)", r, g, b)
		}
	}
	return nil
}
