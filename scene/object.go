// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/effect"
	"github.com/gviegas/rast/linear"
)

// Object is implemented by anything a Node can carry. Every method is
// optional in the sense that a concrete type may give it an empty
// body; the traversals call whichever of the three a node's object
// implements nothing special about — they just call through the
// interface (§4.I).
type Object interface {
	// Initialize binds whatever vertex data the object owns into vb,
	// ready to be drawn.
	Initialize(d *driver.Device, vb driver.Handle)
	// Update advances the object's own state by dt seconds and
	// returns a replacement local transform when it wants one
	// applied; ok is false when the transform should be left alone.
	Update(dt float64) (local linear.M4, ok bool)
	// Draw issues the object's draw call against ctx, assuming fx has
	// already been applied and its model constant already set to the
	// node's current world transform.
	Draw(d *driver.Device, ctx driver.Handle, fx *effect.Effect)
}

// baseObject gives every concrete scene object a no-op Object
// implementation to embed and override selectively.
type baseObject struct{}

func (baseObject) Initialize(*driver.Device, driver.Handle)           {}
func (baseObject) Update(float64) (linear.M4, bool)                   { return linear.M4{}, false }
func (baseObject) Draw(*driver.Device, driver.Handle, *effect.Effect) {}

// Entity is a drawable leaf object: it owns a vertex buffer range
// (vb, start, count) and draws it through whatever effect DrawAll was
// called with.
type Entity struct {
	baseObject
	VertexBuffer driver.Handle
	Start, Count int
}

// NewEntity wraps an already-allocated vertex range as an Entity.
func NewEntity(vb driver.Handle, start, count int) *Entity {
	return &Entity{VertexBuffer: vb, Start: start, Count: count}
}

// Draw pushes the entity's draw call. The caller (DrawAll) has
// already set fx's model constant to the node's world transform and
// applied fx to ctx.
func (e *Entity) Draw(d *driver.Device, ctx driver.Handle, fx *effect.Effect) {
	d.Draw(ctx, e.VertexBuffer, e.Start, e.Count)
}

// Light is a non-drawable object carrying a position (its node's
// world transform) plus color and attenuation, for a caller to pass
// to a Blinn-Phong effect's SetLight. DrawAll does not read it.
type Light struct {
	baseObject
	Color, Atten [3]float32
}

// NewLight creates a light with the given color and (constant,
// linear, quadratic) attenuation coefficients.
func NewLight(color, atten [3]float32) *Light {
	return &Light{Color: color, Atten: atten}
}

// EntityGroup collects entities that share one vertex buffer and
// draws every one of them under the node's own world transform,
// mirroring the original's batch-rendering groups.
type EntityGroup struct {
	baseObject
	Entities []*Entity
}

// NewEntityGroup wraps entities as a single group object.
func NewEntityGroup(entities ...*Entity) *EntityGroup {
	return &EntityGroup{Entities: entities}
}

// Draw issues every member entity's draw call in turn.
func (g *EntityGroup) Draw(d *driver.Device, ctx driver.Handle, fx *effect.Effect) {
	for _, e := range g.Entities {
		d.Draw(ctx, e.VertexBuffer, e.Start, e.Count)
	}
}
