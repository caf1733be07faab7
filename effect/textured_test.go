// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import (
	"testing"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/linear"
)

func TestTexturedQuad(t *testing.T) {
	d := driver.NewDevice()
	const w, h = 64, 64
	tc := newTestContext(t, d, w, h)

	pixels := make([]byte, 4*4*4)
	for i := range pixels {
		pixels[i] = 0xff
	}
	tex := d.CreateTexture2D(4, 4, pixels)

	fx := NewTextured(d, tex)
	var m linear.M4
	m.I()
	fx.SetModel(m)
	fx.SetView(m)
	fx.SetProj(linear.PerspectiveFovLH(1.5707963, 1, 0.1, 1000))
	fx.Apply(d, tc.ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.TexCoord)
	vb := d.CreateVertexBuffer(fmtH)
	raw := NewTexturedQuad(linear.V3{0, 0, 3}, 2, 2, 0, 1, 0, 1)
	start := d.AllocVertices(vb, 6)
	const stride = 20
	for i := 0; i < 6; i++ {
		copy(d.VertexSlot(vb, start+i), raw[i*stride:i*stride+stride])
	}

	d.Draw(tc.ctx, vb, start, 6)
	d.Swap(tc.sc)
	d.Present(tc.sc)
}

func TestTexturedCube(t *testing.T) {
	d := driver.NewDevice()
	const w, h = 64, 64
	tc := newTestContext(t, d, w, h)

	pixels := make([]byte, 2*2*4)
	tex := d.CreateTexture2D(2, 2, pixels)

	fx := NewTextured(d, tex)
	var model linear.M4
	model.I()
	var view linear.M4
	view.I()
	fx.SetModel(model)
	fx.SetView(view)
	fx.SetProj(linear.PerspectiveFovLH(1.5707963, 1, 0.1, 1000))
	fx.Apply(d, tc.ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.TexCoord)
	vb := d.CreateVertexBuffer(fmtH)
	raw := NewCube(linear.V3{0, 0, 3}, 1)
	start := d.AllocVertices(vb, 36)
	const stride = 20
	for i := 0; i < 36; i++ {
		copy(d.VertexSlot(vb, start+i), raw[i*stride:i*stride+stride])
	}

	d.Draw(tc.ctx, vb, start, 36)
}
