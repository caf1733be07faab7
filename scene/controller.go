// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/rast/linear"
)

// controllerSpeed is the controller's fixed move speed, in world
// units per second (`Source/Scene.h` Controller.speed).
const controllerSpeed = 10

// mouseSensitivity converts pixel deltas to degrees
// (`Source/Camera.cpp` CameraController::OnMouseMove: 0.2 deg/px).
const mouseSensitivity = 0.2

// maxPitchDeg clamps the vertical look angle to avoid the camera
// flipping past straight up or down.
const maxPitchDeg = 90

// Controller is a mouse-look, WASD-move object meant to sit on a
// camera or player node: OnMouseMove/OnKeyDown/OnKeyUp update its
// intent fields, and Update(dt) turns that intent into a new local
// transform (§9 supplemented feature 2, grounded on `Source/Scene.h`
// Controller and `Source/Camera.cpp` CameraController).
type Controller struct {
	baseObject

	init bool
	// pixelX, pixelY hold the last seen mouse position.
	pixelX, pixelY int
	// hRotDeg, vRotDeg are the accumulated yaw/pitch, in degrees.
	hRotDeg, vRotDeg float32

	// forwardFactor, rightFactor are in {-1, 0, 1}, set by WASD.
	forwardFactor, rightFactor float32

	pos linear.V3
}

// NewController creates a controller starting at pos with zero look
// angles.
func NewController(pos linear.V3) *Controller {
	return &Controller{init: true, pos: pos}
}

// OnMouseMove accumulates yaw/pitch from a pixel-space mouse delta,
// ignoring the first call after creation (there is no previous
// position to diff against yet).
func (c *Controller) OnMouseMove(pixelX, pixelY int) {
	if c.init {
		c.init = false
	} else {
		c.hRotDeg += mouseSensitivity * float32(pixelX-c.pixelX)
		c.vRotDeg -= mouseSensitivity * float32(pixelY-c.pixelY)
		if c.vRotDeg > maxPitchDeg {
			c.vRotDeg = maxPitchDeg
		}
		if c.vRotDeg < -maxPitchDeg {
			c.vRotDeg = -maxPitchDeg
		}
	}
	c.pixelX, c.pixelY = pixelX, pixelY
}

// OnKeyDown sets the move intent for 'w'/'s'/'a'/'d' (case
// insensitive); other keys are ignored.
func (c *Controller) OnKeyDown(key rune) {
	switch key {
	case 'w', 'W':
		c.forwardFactor = 1
	case 's', 'S':
		c.forwardFactor = -1
	case 'a', 'A':
		c.rightFactor = -1
	case 'd', 'D':
		c.rightFactor = 1
	}
}

// OnKeyUp clears the move intent for 'w'/'s'/'a'/'d'.
func (c *Controller) OnKeyUp(key rune) {
	switch key {
	case 'w', 'W', 's', 'S':
		c.forwardFactor = 0
	case 'a', 'A', 'd', 'D':
		c.rightFactor = 0
	}
}

// Update turns the controller's accumulated look angles and move
// intent into a fresh local transform: a yaw/pitch rotation about
// the updated pos.
func (c *Controller) Update(dt float64) (linear.M4, bool) {
	hRad := c.hRotDeg * (math32.Pi / 180)
	vRad := c.vRotDeg * (math32.Pi / 180)

	forward := linear.V3{math32.Sin(hRad) * math32.Cos(vRad), math32.Sin(vRad), math32.Cos(hRad) * math32.Cos(vRad)}
	var flatForward linear.V3
	flatForward.Norm(&linear.V3{forward[0], 0, forward[2]})
	up := linear.V3{0, 1, 0}
	var right linear.V3
	right.Cross(&up, &flatForward)
	right.Norm(&right)

	if c.forwardFactor != 0 || c.rightFactor != 0 {
		d := float32(dt) * controllerSpeed
		var move linear.V3
		move[0] = (c.forwardFactor*flatForward[0] + c.rightFactor*right[0]) * d
		move[1] = 0
		move[2] = (c.forwardFactor*flatForward[2] + c.rightFactor*right[2]) * d
		c.pos.Add(&c.pos, &move)
	}

	m := linear.LookToLH(c.pos, forward, up)
	var inv linear.M4
	inv.Invert(&m)
	return inv, true
}
