// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene provides functionality for creating and rendering
// scene graphs: a parent/first-child/sibling node tree, per-node
// transforms, connections that drive one object's transform from
// another's, and the traversals the renderer calls once per frame
// (§4.I).
package scene

import "github.com/gviegas/rast/linear"

// Node is a single element of a scene graph. Nodes have at most one
// immediate ancestor and an arbitrary number of immediate
// descendants, threaded through next/prev/sub exactly like a classic
// intrusive tree: prev points at either the previous sibling or, for
// a first child, at the parent.
type Node struct {
	next, prev, sub *Node

	local linear.M4
	world linear.M4
	dirty bool

	object      Object
	connections []Connection
}

// NewNode creates an initialized, identity-transformed node wrapping
// obj. obj may be nil for a node that exists only to group others.
func NewNode(obj Object) *Node {
	n := &Node{object: obj}
	n.local.I()
	n.world.I()
	return n
}

// Object returns the object associated with n, or nil.
func (n *Node) Object() Object { return n.object }

// Local returns a copy of n's local transform.
func (n *Node) Local() linear.M4 { return n.local }

// SetLocal replaces n's local transform, marking it (and its
// subtree, at the next Update) as needing its world transform
// recomputed.
func (n *Node) SetLocal(m linear.M4) {
	n.local = m
	n.dirty = true
}

// ConnectTo makes n a connection master that drives slave's local
// transform from n's world transform every UpdateAll, according to
// connType (§4.I). The world transform used is the one computed by
// the previous UpdateAll.
func (n *Node) ConnectTo(slave *Node, connType ConnectType) {
	n.connections = append(n.connections, Connection{Type: connType, Slave: slave})
}

// World returns n's most recently computed world transform. It is
// only current as of the last UpdateAll call that reached n.
func (n *Node) World() linear.M4 { return n.world }

// Insert inserts node sub as an immediate descendant of node n,
// first removing sub from wherever it currently sits.
func (n *Node) Insert(sub *Node) {
	sub.Remove()
	sub.next = n.sub
	sub.prev = n
	if n.sub != nil {
		n.sub.prev = sub
	}
	n.sub = sub
}

// Remove removes node n from its immediate ancestor, if any.
func (n *Node) Remove() {
	if n.prev == nil {
		return
	}
	if n.prev.sub == n {
		n.prev.sub = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// ForEach calls f for each descendant of node n, ancestors before
// descendants (pre-order). If f returns true, ForEach stops and
// returns immediately. The tree must not be mutated until ForEach
// returns.
func (n *Node) ForEach(f func(*Node) bool) {
	var walk func(*Node) bool
	walk = func(p *Node) bool {
		for c := p.sub; c != nil; c = c.next {
			if f(c) || walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
}

// updateWorld recomputes n's world transform from parentWorld and
// n's local transform, propagating dirtiness to children whenever
// either n or its ancestor chain changed (§4.I UpdateAll).
func (n *Node) updateWorld(parentWorld linear.M4, parentDirty bool) {
	if parentDirty || n.dirty {
		n.world.Mul(&n.local, &parentWorld)
		n.dirty = false
		parentDirty = true
	}
	for c := n.sub; c != nil; c = c.next {
		c.updateWorld(n.world, parentDirty)
	}
}
