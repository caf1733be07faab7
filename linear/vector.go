// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements the math kernel used throughout the
// renderer: vectors, row-major 4x4 matrices, projections and a
// handful of intersection/scalar utilities.
package linear

import (
	"github.com/chewxy/math32"
)

// Epsilon is the tolerance used by the reciprocal guard Recip.
const Epsilon = 1e-4

// Recip returns 1/w, clamping |w| to Epsilon first so that callers on
// the homogeneous-divide path never divide by (near) zero.
func Recip(w float32) float32 {
	switch {
	case w < 0 && -w < Epsilon:
		return -1 / Epsilon
	case w >= 0 && w < Epsilon:
		return 1 / Epsilon
	}
	return 1 / w
}

// V2 is a 2-component vector of float32.
type V2 [2]float32

// Add sets v to contain l + r.
func (v *V2) Add(l, r *V2) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V2) Sub(l, r *V2) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V2) Scale(s float32, w *V2) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Lerp sets v to contain l + t*(r-l).
func (v *V2) Lerp(l, r *V2, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// V3 is a 3-component vector of float32.
type V3 [3]float32

// Add sets v to contain l + r.
func (v *V3) Add(l, r *V3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3) Sub(l, r *V3) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3) Scale(s float32, w *V3) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3) Dot(w *V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized. w must not be the zero vector.
func (v *V3) Norm(w *V3) { v.Scale(1/w.Len(), w) }

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) {
	v[0] = l[1]*r[2] - l[2]*r[1]
	v[1] = l[2]*r[0] - l[0]*r[2]
	v[2] = l[0]*r[1] - l[1]*r[0]
}

// Lerp sets v to contain l + t*(r-l).
func (v *V3) Lerp(l, r *V3, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Reflect sets v to contain i reflected about the unit normal n:
// v = i - 2*dot(i,n)*n.
func (v *V3) Reflect(i, n *V3) {
	var s V3
	s.Scale(2*i.Dot(n), n)
	v.Sub(i, &s)
}

// Mul sets v to contain w transformed by m, treating w as a row
// vector extended with a 1 in the fourth component: v = [w 1] * m.
func (v *V3) Mul(w *V3, m *M4) {
	var r V3
	for j := 0; j < 3; j++ {
		r[j] = w[0]*m[0][j] + w[1]*m[1][j] + w[2]*m[2][j] + m[3][j]
	}
	*v = r
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// Add sets v to contain l + r.
func (v *V4) Add(l, r *V4) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V4) Sub(l, r *V4) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V4) Scale(s float32, w *V4) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V4) Dot(w *V4) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V4) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
func (v *V4) Norm(w *V4) { v.Scale(1/w.Len(), w) }

// Mul sets v to contain w * m, treating w as a row vector.
func (v *V4) Mul(w *V4, m *M4) {
	*v = V4{}
	for j := range v {
		for i := range w {
			v[j] += w[i] * m[i][j]
		}
	}
}
