// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/effect"
	"github.com/gviegas/rast/linear"
)

// InitializeAll depth-first walks root's subtree, letting each
// node's object bind whatever vertex data it owns into vb (§4.I).
func InitializeAll(root *Node, d *driver.Device, vb driver.Handle) {
	if root.object != nil {
		root.object.Initialize(d, vb)
	}
	root.ForEach(func(n *Node) bool {
		if n.object != nil {
			n.object.Initialize(d, vb)
		}
		return false
	})
}

// UpdateAll advances every object in root's subtree by dt seconds,
// applies any connection rules from each master's world transform as
// computed by the previous UpdateAll, and then refreshes the whole
// subtree's world transforms in one pass (§4.I).
func UpdateAll(root *Node, dt float64) {
	updateNode(root, dt)
	var identity linear.M4
	identity.I()
	root.updateWorld(identity, false)
}

func updateNode(n *Node, dt float64) {
	if n.object != nil {
		if local, ok := n.object.Update(dt); ok {
			n.SetLocal(local)
		}
	}
	for _, c := range n.connections {
		c.Slave.SetLocal(applyConnection(c.Type, n.world))
	}
	for c := n.sub; c != nil; c = c.next {
		updateNode(c, dt)
	}
}

// DrawAll depth-first walks root's subtree, pushing each node's
// current world transform into fx's model constant and drawing its
// object, if any (§4.I). It calls fx.Apply for each node that carries
// an object, after setting the model constant; the caller sets any
// per-frame constants (view, proj, light) before calling DrawAll.
func DrawAll(root *Node, d *driver.Device, ctx driver.Handle, fx *effect.Effect) {
	drawNode(root, d, ctx, fx)
}

func drawNode(n *Node, d *driver.Device, ctx driver.Handle, fx *effect.Effect) {
	if n.object != nil {
		fx.SetModel(n.world)
		fx.Apply(d, ctx)
		n.object.Draw(d, ctx, fx)
	}
	for c := n.sub; c != nil; c = c.next {
		drawNode(c, d, ctx, fx)
	}
}
