// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQIdentityRotatesNothing(t *testing.T) {
	q := QIdentity()
	v := V3{1, 2, 3}
	out := q.RotateV3(v)
	for i := range v {
		assert.InDelta(t, v[i], out[i], Epsilon)
	}
}

func TestQMulComposesRotations(t *testing.T) {
	a := QRotationAxisLH(V3{0, 1, 0}, 0.3)
	b := QRotationAxisLH(V3{0, 1, 0}, 0.2)
	var c Q
	c.Mul(&a, &b)
	want := QRotationAxisLH(V3{0, 1, 0}, 0.5)
	assert.InDelta(t, want.R, c.R, 1e-5)
	for i := range want.V {
		assert.InDelta(t, want.V[i], c.V[i], 1e-5)
	}
}

func TestQMatMatchesRotationAxisLH(t *testing.T) {
	axis := V3{0, 0, 1}
	theta := float32(0.7)
	q := QRotationAxisLH(axis, theta)
	qm := q.Mat()
	rm := RotationAxisLH(axis, theta)
	for i := range qm {
		for j := range qm[i] {
			assert.InDelta(t, rm[i][j], qm[i][j], 1e-5)
		}
	}
}

func TestQRotateV3MatchesMat(t *testing.T) {
	axis := V3{1, 0, 0}
	theta := float32(1.1)
	q := QRotationAxisLH(axis, theta)
	v := V3{0, 2, 3}

	viaRotate := q.RotateV3(v)

	m := q.Mat()
	var viaMat V3
	viaMat.Mul(&v, &m)

	for i := range viaRotate {
		assert.InDelta(t, viaMat[i], viaRotate[i], 1e-5)
	}
}

func TestQConjugateIsInverseForUnitQuaternion(t *testing.T) {
	q := QRotationAxisLH(V3{0, 1, 0}, 0.9)
	var inv, id Q
	inv.Conjugate(&q)
	id.Mul(&q, &inv)
	assert.InDelta(t, 1, id.R, 1e-5)
	assert.InDelta(t, 0, id.V[0], 1e-5)
	assert.InDelta(t, 0, id.V[1], 1e-5)
	assert.InDelta(t, 0, id.V[2], 1e-5)
}

func TestQNormProducesUnitLength(t *testing.T) {
	p := Q{V: V3{1, 2, 3}, R: 4}
	var q Q
	q.Norm(&p)
	assert.InDelta(t, 1, q.Len(), 1e-5)
}
