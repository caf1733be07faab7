// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/linear"
)

// testCtx bundles the handles a test needs to both draw and inspect
// the result.
type testCtx struct {
	ctx, rt, sc driver.Handle
}

func newTestContext(t *testing.T, d *driver.Device, w, h int) testCtx {
	t.Helper()
	rt := d.CreateRenderTarget(w, h)
	sc := d.CreateSwapChain(rt)
	ds := d.CreateDepthStencilBuffer(w, h)
	ctx := d.CreateContext()
	d.BindRenderTarget(ctx, rt)
	d.BindSwapChain(ctx, sc)
	d.BindDepthStencilBuffer(ctx, ds)
	d.SetDepthStencilState(ctx, driver.DepthStencilState{DepthTestEnabled: true, DepthWriteMask: driver.DepthWriteAll})
	return testCtx{ctx: ctx, rt: rt, sc: sc}
}

func TestFlatRGBTriangle(t *testing.T) {
	d := driver.NewDevice()
	const w, h = 64, 64
	tc := newTestContext(t, d, w, h)

	fx := NewFlatRGB(d)
	var m linear.M4
	m.I()
	fx.SetModel(m)
	fx.SetView(m)
	fx.SetProj(linear.PerspectiveFovLH(1.5707963, 1, 0.1, 1000))
	fx.Apply(d, tc.ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.Color)
	in := fx.InFormat()
	reg := d.VertexFormat(fmtH)
	assert.True(t, reg.Equal(&in))

	vb := d.CreateVertexBuffer(fmtH)
	raw := NewTriangleMesh(
		TriangleVertex{linear.V3{-1, -1, 3}, linear.V3{1, 0, 0}},
		TriangleVertex{linear.V3{0, 1, 3}, linear.V3{0, 1, 0}},
		TriangleVertex{linear.V3{1, -1, 3}, linear.V3{0, 0, 1}},
	)
	start := d.AllocVertices(vb, 3)
	for i := 0; i < 3; i++ {
		copy(d.VertexSlot(vb, start+i), raw[i*24:i*24+24])
	}

	d.Draw(tc.ctx, vb, start, 3)
	d.Swap(tc.sc)
	d.Present(tc.sc)
}
