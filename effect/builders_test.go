// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gviegas/rast/linear"
)

func TestNewTriangleMeshLayout(t *testing.T) {
	raw := NewTriangleMesh(
		TriangleVertex{linear.V3{1, 2, 3}, linear.V3{0.1, 0.2, 0.3}},
		TriangleVertex{linear.V3{4, 5, 6}, linear.V3{0.4, 0.5, 0.6}},
		TriangleVertex{linear.V3{7, 8, 9}, linear.V3{0.7, 0.8, 0.9}},
	)
	assert.Len(t, raw, 3*24)
	assert.Equal(t, linear.V3{1, 2, 3}, readV3(raw, 0))
	assert.Equal(t, linear.V3{0.1, 0.2, 0.3}, readV3(raw, 12))
	assert.Equal(t, linear.V3{7, 8, 9}, readV3(raw, 2*24))
}

func TestNewCubeVertexCount(t *testing.T) {
	raw := NewCube(linear.V3{0, 0, 0}, 2)
	assert.Len(t, raw, 36*20)
	// Every position component must be scaled by size=2 from the
	// [-0.5, 0.5] unit-cube range, landing in [-1, 1].
	for i := 0; i < 36; i++ {
		p := readV3(raw, i*20)
		for _, c := range p {
			assert.LessOrEqual(t, c, float32(1))
			assert.GreaterOrEqual(t, c, float32(-1))
		}
	}
}

func TestNewBlinnPhongCubeNormalsAreUnit(t *testing.T) {
	raw := NewBlinnPhongCube(linear.V3{0, 0, 0}, 1)
	for i := 0; i < 36; i++ {
		n := readV3(raw, i*24+12)
		l := n.Len()
		assert.InDelta(t, 1, l, 1e-6)
	}
}
