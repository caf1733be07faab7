// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/effect"
	"github.com/gviegas/rast/linear"
)

// Camera is a non-drawable object that derives a view matrix from
// its node's world transform and owns its own projection matrix
// (§4.I). Its Object methods are the embedded no-ops, so DrawAll draws
// nothing for it; cameras are driven explicitly by the caller's render
// loop.
type Camera struct {
	baseObject
	node *Node
	proj linear.M4
}

// NewCamera creates a camera attached to node n with the given
// projection matrix.
func NewCamera(n *Node, proj linear.M4) *Camera {
	return &Camera{node: n, proj: proj}
}

// View returns the camera's view matrix: the inverse of its node's
// current world transform.
func (c *Camera) View() linear.M4 {
	w := c.node.World()
	var v linear.M4
	v.Invert(&w)
	return v
}

// Proj returns the camera's projection matrix.
func (c *Camera) Proj() linear.M4 { return c.proj }

// SetProj replaces the camera's projection matrix.
func (c *Camera) SetProj(proj linear.M4) { c.proj = proj }

// Observe draws subtree's nodes through fx using this camera's view
// and projection, set on fx before the traversal (§4.I: "a
// camera may observe a subtree and draw just that subtree through a
// supplied effect").
func (c *Camera) Observe(subtree *Node, d *driver.Device, ctx driver.Handle, fx *effect.Effect) {
	fx.SetView(c.View())
	fx.SetProj(c.proj)
	DrawAll(subtree, d, ctx, fx)
}

// GetInvertedMirroredMatrix computes the view matrix for a mirror
// pass: the camera's eye, look direction and up vector are each
// reflected about the plane through posPlane with unit normal
// normPlane, and a fresh look-to matrix is built from the mirrored
// basis (§4.I, grounded on Source/Core/Scene.cpp
// Transform::GetInvertedMirroredMatrix).
func (c *Camera) GetInvertedMirroredMatrix(posPlane, normPlane linear.V3) linear.M4 {
	w := c.node.World()
	eye := linear.V3{w[3][0], w[3][1], w[3][2]}
	fwd := linear.V3{w[2][0], w[2][1], w[2][2]}
	up := linear.V3{w[1][0], w[1][1], w[1][2]}

	mirrEye, mirrFwd := linear.MirrorRayPlane(posPlane, normPlane, eye, fwd)
	_, mirrUp := linear.MirrorRayPlane(posPlane, normPlane, eye, up)

	return linear.LookToLH(mirrEye, mirrFwd, mirrUp)
}
