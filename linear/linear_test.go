// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV3Ops(t *testing.T) {
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	var u V3
	u.Add(&v, &w)
	assert.Equal(t, V3{1, 1, 6}, u)

	u.Sub(&v, &w)
	assert.Equal(t, V3{1, 3, 2}, u)

	u.Scale(-1, &v)
	assert.Equal(t, V3{-1, -2, -4}, u)

	assert.InDelta(t, 6, v.Dot(&w), Epsilon)
	assert.InDelta(t, 21, v.Dot(&v), Epsilon)

	z := V3{0, 0, -2}
	var n V3
	n.Norm(&z)
	assert.Equal(t, V3{0, 0, -1}, n)
}

func TestCross(t *testing.T) {
	x := V3{1, 0, 0}
	y := V3{0, 1, 0}
	var c V3
	c.Cross(&x, &y)
	assert.Equal(t, V3{0, 0, 1}, c)
}

func TestRecipGuard(t *testing.T) {
	require.InDelta(t, 1e4, Recip(1e-6), 1)
	require.InDelta(t, -1e4, Recip(-1e-6), 1)
	require.InDelta(t, 0.5, Recip(2), 1e-6)
}

func TestM4Identity(t *testing.T) {
	var m M4
	m.I()
	var v, out V3
	v = V3{3, 4, 5}
	out.Mul(&v, &m)
	assert.Equal(t, v, out)
}

func TestM4MulOrder(t *testing.T) {
	t4 := Translation(1, 0, 0)
	rot := RotationAxisLH(V3{0, 0, 1}, 0)
	var m M4
	m.Mul(&t4, &rot)
	var v, out V3
	v = V3{0, 0, 0}
	out.Mul(&v, &m)
	assert.InDelta(t, 1, out[0], Epsilon)
}

func TestM4InvertRoundTrip(t *testing.T) {
	a := Translation(2, -3, 7)
	rot := RotationAxisLH(V3{0, 1, 0}, 0.4)
	var m M4
	m.Mul(&a, &rot)

	var inv, id M4
	inv.Invert(&m)
	id.Mul(&m, &inv)

	var want M4
	want.I()
	for i := range id {
		for j := range id[i] {
			assert.InDelta(t, want[i][j], id[i][j], 1e-3)
		}
	}
}

func TestPerspectiveFovLH(t *testing.T) {
	p := PerspectiveFovLH(1.5707963, 4.0/3.0, 0.1, 1000)
	var v, out V4
	v = V4{0, 0, 3, 1}
	out.Mul(&v, &p)
	// w equals camera-space z.
	assert.InDelta(t, 3, out[3], 1e-3)
}

func TestEdgeFunction(t *testing.T) {
	a := V2{0, 0}
	b := V2{0, 1}
	c := V2{1, 0}
	// Counter-clockwise in screen space (y-down) should be positive.
	e := EdgeFunction(a, b, c)
	assert.Greater(t, e, float32(0))
}

func TestMirrorRayPlaneReflectsAcrossOrigin(t *testing.T) {
	posPlane := V3{0, 0, 0}
	normPlane := V3{0, 0, -1}
	posRay := V3{0, 0, -5}
	dirRay := V3{0, 0, 1}

	mp, md := MirrorRayPlane(posPlane, normPlane, posRay, dirRay)
	assert.InDelta(t, 0, mp[0], Epsilon)
	assert.InDelta(t, 0, mp[1], Epsilon)
	assert.InDelta(t, 5, mp[2], Epsilon)
	assert.InDelta(t, -1, md[2], Epsilon)
}
