// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/effect"
	"github.com/gviegas/rast/linear"
)

func TestLoopPresentBlitsDrawnFrame(t *testing.T) {
	d := driver.NewDevice()
	const w, h = 16, 16
	rt := d.CreateRenderTarget(w, h)
	sc := d.CreateSwapChain(rt)
	ds := d.CreateDepthStencilBuffer(w, h)
	ctx := d.CreateContext()
	d.BindRenderTarget(ctx, rt)
	d.BindSwapChain(ctx, sc)
	d.BindDepthStencilBuffer(ctx, ds)
	d.SetDepthStencilState(ctx, driver.DepthStencilState{DepthTestEnabled: true, DepthWriteMask: driver.DepthWriteAll})

	fx := effect.NewFlatRGB(d)
	var m linear.M4
	m.I()
	fx.SetModel(m)
	fx.SetView(m)
	fx.SetProj(linear.PerspectiveFovLH(1.5707963, 1, 0.1, 1000))
	fx.Apply(d, ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.Color)
	vb := d.CreateVertexBuffer(fmtH)
	raw := effect.NewTriangleMesh(
		effect.TriangleVertex{linear.V3{-1, -1, 3}, linear.V3{1, 0, 0}},
		effect.TriangleVertex{linear.V3{0, 1, 3}, linear.V3{0, 1, 0}},
		effect.TriangleVertex{linear.V3{1, -1, 3}, linear.V3{0, 0, 1}},
	)
	start := d.AllocVertices(vb, 3)
	for i := 0; i < 3; i++ {
		copy(d.VertexSlot(vb, start+i), raw[i*24:i*24+24])
	}
	d.Draw(ctx, vb, start, 3)

	sink := NewMemSink(w, h)
	loop := NewLoop(d, rt, sc, sink, BGR)
	require.NoError(t, loop.Present(false, false))
	assert.Equal(t, w, sink.Width)
	assert.Equal(t, h, sink.Height)
	assert.Len(t, sink.RGBA, w*h*4)
}

func TestLoopResizeRecreatesBuffersAndNotifiesSink(t *testing.T) {
	d := driver.NewDevice()
	rt := d.CreateRenderTarget(8, 8)
	sc := d.CreateSwapChain(rt)
	sink := NewMemSink(8, 8)
	loop := NewLoop(d, rt, sc, sink, BGR)

	loop.Resize(16, 12)

	require.Len(t, sink.Resizes, 1)
	assert.Equal(t, [2]int{16, 12}, sink.Resizes[0])
	assert.Equal(t, driver.Rect{0, 0, 16, 12}, d.RenderTargetRect(rt))
}
