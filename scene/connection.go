// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import "github.com/gviegas/rast/linear"

// ConnectType selects how a connection master's transform is applied
// to a connected slave object each frame (§4.I, `Source/Scene.h`
// ConnectType).
type ConnectType int

const (
	// Default copies the master's world transform onto the slave
	// unchanged.
	Default ConnectType = iota
	// Player copies position and yaw/roll but drops pitch, keeping
	// the slave level (used for a controllable player body that
	// should not tip over with the camera).
	Player
	// FirstPersonView copies the master's world transform unchanged,
	// for a camera riding exactly at the master's eye.
	FirstPersonView
	// ThirdPersonView copies the master's orientation but offsets
	// the position backward along the master's local -Z axis.
	ThirdPersonView
	// MiniMapView takes the master's X/Z position, fixes the height
	// and looks straight down.
	MiniMapView
)

// thirdPersonOffset is the fixed backward distance a ThirdPersonView
// connection holds its camera at.
const thirdPersonOffset = 5

// miniMapHeight is the fixed altitude a MiniMapView connection holds
// its camera at.
const miniMapHeight = 20

// Connection links a slave Node to whatever ConnectType rule
// its master applies during UpdateAll.
type Connection struct {
	Type  ConnectType
	Slave *Node
}

// applyConnection derives the slave's new local transform from the
// master's world transform, per connType (§4.I). UpdateAll passes the
// world transform computed by the previous UpdateAll.
func applyConnection(connType ConnectType, masterWorld linear.M4) linear.M4 {
	switch connType {
	case Default, FirstPersonView:
		return masterWorld
	case Player:
		m := masterWorld
		// Zero the X and Z components of the local-up basis row to keep
		// the slave from inheriting the master's pitch.
		m[1][0], m[1][2] = 0, 0
		if m[1][1] < 0 {
			m[1][1] = 0
		}
		return m
	case ThirdPersonView:
		fwd := linear.V3{masterWorld[2][0], masterWorld[2][1], masterWorld[2][2]}
		var back linear.V3
		back.Scale(-thirdPersonOffset, &fwd)
		m := masterWorld
		m[3][0] += back[0]
		m[3][1] += back[1]
		m[3][2] += back[2]
		return m
	case MiniMapView:
		var m linear.M4
		m = linear.RotationAxisLH(linear.V3{1, 0, 0}, 1.5707963)
		m[3][0] = masterWorld[3][0]
		m[3][1] = miniMapHeight
		m[3][2] = masterWorld[3][2]
		return m
	default:
		return masterWorld
	}
}
