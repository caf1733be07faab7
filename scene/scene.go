// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

// Scene is a scene graph's root: a Node that exists only to hold
// children, never carries an Object, and is never itself drawn.
type Scene struct {
	Node
}

// New creates an empty, initialized scene.
func New() *Scene {
	s := new(Scene)
	s.local.I()
	s.world.I()
	return s
}
