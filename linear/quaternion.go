// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "github.com/chewxy/math32"

// Q is a quaternion of float32: an imaginary vector part V and a
// real part R.
type Q struct {
	V V3
	R float32
}

// QIdentity returns the identity quaternion (no rotation).
func QIdentity() Q { return Q{V: V3{0, 0, 0}, R: 1} }

// QRotationAxisLH returns the left-handed rotation quaternion for a
// rotation of theta radians about axis, mirroring RotationAxisLH's
// axis-angle contract: axis must be normalized.
func QRotationAxisLH(axis V3, theta float32) Q {
	s, c := math32.Sin(0.5*theta), math32.Cos(0.5*theta)
	var v V3
	v.Scale(s, &axis)
	return Q{V: v, R: c}
}

// Mul sets q to contain the Hamilton product l ⋅ r (apply r first,
// then l: rotating a vector by Mul(l, r) equals rotating by r, then
// by l, the reverse of M4.Mul's row-vector composition order).
func (q *Q) Mul(l, r *Q) {
	var v, w V3
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	v.Add(&v, &w)
	w.Cross(&l.V, &r.V)
	d := l.V.Dot(&r.V)
	q.V.Add(&v, &w)
	q.R = l.R*r.R - d
}

// Dot returns q ⋅ p.
func (q *Q) Dot(p *Q) float32 { return q.V.Dot(&p.V) + q.R*p.R }

// Len returns the length of q.
func (q *Q) Len() float32 { return math32.Sqrt(q.Dot(q)) }

// Norm sets q to contain p normalized. p must not be the zero
// quaternion.
func (q *Q) Norm(p *Q) {
	l := 1 / p.Len()
	q.V.Scale(l, &p.V)
	q.R = p.R * l
}

// Conjugate sets q to contain p's conjugate: the imaginary part
// negated, the real part unchanged. For a unit quaternion, this is
// also its inverse.
func (q *Q) Conjugate(p *Q) {
	q.V.Scale(-1, &p.V)
	q.R = p.R
}

// Mat returns the row-major rotation matrix q represents, laid out
// the same way RotationAxisLH's result is (m[row][col], applied to a
// row vector as v*m). q must be a unit quaternion.
func (q *Q) Mat() (m M4) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	m[0] = V4{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0}
	m[1] = V4{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0}
	m[2] = V4{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0}
	m[3] = V4{0, 0, 0, 1}
	return
}

// RotateV3 returns v rotated by q, via the sandwich product
// q⋅(v,0)⋅q⁻¹. q must be a unit quaternion, so its conjugate serves
// as its inverse.
func (q *Q) RotateV3(v V3) V3 {
	p := Q{V: v, R: 0}
	var inv, t, out Q
	inv.Conjugate(q)
	t.Mul(q, &p)
	out.Mul(&t, &inv)
	return out.V
}
