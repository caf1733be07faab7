// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import (
	"testing"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/linear"
)

func TestBlinnPhongCube(t *testing.T) {
	d := driver.NewDevice()
	const w, h = 64, 64
	tc := newTestContext(t, d, w, h)

	fx := NewBlinnPhong(d)
	var model, view linear.M4
	model.I()
	view.I()
	fx.SetModel(model)
	fx.SetView(view)
	fx.SetProj(linear.PerspectiveFovLH(1.5707963, 1, 0.1, 1000))
	fx.SetLight(linear.V3{2, 2, 0}, linear.V3{1, 1, 1}, linear.V3{1, 0, 0})
	fx.SetEye(linear.V3{0, 0, 0})
	fx.SetMaterial(linear.V3{0.1, 0.1, 0.1}, linear.V3{0.6, 0.6, 0.6}, linear.V3{0.3, 0.3, 0.3})
	fx.Apply(d, tc.ctx)

	fmtH := d.CreateVertexFormat(driver.Position, driver.Normal)
	vb := d.CreateVertexBuffer(fmtH)
	raw := NewBlinnPhongCube(linear.V3{0, 0, 3}, 1)
	start := d.AllocVertices(vb, 36)
	const stride = 24
	for i := 0; i < 36; i++ {
		copy(d.VertexSlot(vb, start+i), raw[i*stride:i*stride+stride])
	}

	d.Draw(tc.ctx, vb, start, 36)
	d.Swap(tc.sc)
	d.Present(tc.sc)
}

func TestNormalMatrixIdentity(t *testing.T) {
	var model linear.M4
	model.I()
	n := normalMatrix(model)
	var id linear.M3
	id.I()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if n[i][j] != id[i][j] {
				t.Fatalf("normalMatrix(I)[%d][%d] = %v, want %v", i, j, n[i][j], id[i][j])
			}
		}
	}
}
