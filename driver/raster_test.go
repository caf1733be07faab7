// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/rast/linear"
)

// buildFlatPipeline wires a minimal flat-color vertex/pixel shader
// pair (mirroring the effect layer's "Flat RGB" shape, §4.H) so the
// rasterizer can be exercised without the effect package.
func buildFlatPipeline(t *testing.T, d *Device, proj linear.M4) (vsH, psH Handle, inFmt, outFmt VertexFormat) {
	t.Helper()
	inFmt = NewVertexFormat(Position, Color)
	outFmt = NewVertexFormat(Position, SVPosition, Color)
	colorOut, _ := outFmt.Find(Color)
	colorIn, _ := inFmt.Find(Color)
	posIn, _ := inFmt.Find(Position)
	posOut, _ := outFmt.Find(Position)
	svOut, _ := outFmt.Find(SVPosition)

	vs := func(out, in, consts []byte) {
		x, y, z := readVec3(in, posIn.Offset)
		writeVec3(out, posOut.Offset, x, y, z)
		var p linear.V4
		v := linear.V4{x, y, z, 1}
		p.Mul(&v, &proj)
		writeVec3(out, svOut.Offset, p[0]/p[3], p[1]/p[3], p[2]/p[3])
		cx, cy, cz := readVec3(in, colorIn.Offset)
		writeVec3(out, colorOut.Offset, cx, cy, cz)
	}
	ps := func(out, in, consts []byte) {
		cx, cy, cz := readVec3(in, colorOut.Offset)
		writeVec3(out, 0, cx, cy, cz)
	}

	psOutFmt := NewVertexFormat(Color)
	vsH = d.CreateVertexShader(vs, inFmt, outFmt)
	psH = d.CreatePixelShader(ps, outFmt, psOutFmt)
	return
}

func TestDrawSingleTriangleCentroid(t *testing.T) {
	d := NewDevice()
	const w, h = 800, 600

	proj := linear.PerspectiveFovLH(1.5707963, float32(w)/float32(h), 0.1, 1000)
	vsH, psH, inFmt, _ := buildFlatPipeline(t, d, proj)

	rt := d.CreateRenderTarget(w, h)
	sc := d.CreateSwapChain(rt)
	ds := d.CreateDepthStencilBuffer(w, h)
	ctx := d.CreateContext()
	d.BindRenderTarget(ctx, rt)
	d.BindSwapChain(ctx, sc)
	d.BindDepthStencilBuffer(ctx, ds)
	d.BindShaders(ctx, vsH, psH)
	d.SetDepthStencilState(ctx, DepthStencilState{DepthTestEnabled: true, DepthWriteMask: DepthWriteAll})

	vb := d.CreateVertexBuffer(d.CreateVertexFormat(Position, Color))
	start := d.AllocVertices(vb, 3)
	positions := [3][3]float32{{-1, -1, 3}, {0, 1, 3}, {1, -1, 3}}
	colors := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	posF, _ := inFmt.Find(Position)
	colF, _ := inFmt.Find(Color)
	for i := 0; i < 3; i++ {
		slot := d.VertexSlot(vb, start+i)
		writeVec3(slot, posF.Offset, positions[i][0], positions[i][1], positions[i][2])
		writeVec3(slot, colF.Offset, colors[i][0], colors[i][1], colors[i][2])
	}

	d.Draw(ctx, vb, start, 3)
	d.Swap(sc)
	d.Present(sc)

	surf := d.renderTargetSurface(rt)
	// The corners project to (300,400), (400,200) and (500,400), so the
	// centroid lies at column 400, row 333.
	px := surf.At(333, 400)
	for _, ch := range px {
		assert.InDelta(t, 85, int(ch), 5)
	}
}

func TestSwapIdempotence(t *testing.T) {
	d := NewDevice()
	rt := d.CreateRenderTarget(4, 4)
	sc := d.CreateSwapChain(rt)
	before := d.FrontIndex(sc)
	d.Swap(sc)
	d.Swap(sc)
	require.Equal(t, before, d.FrontIndex(sc))
}
