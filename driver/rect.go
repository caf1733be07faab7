// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// Rect is an integer pixel rectangle, origin at the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// contains reports whether o lies entirely within r.
func (r Rect) contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}
