// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/gviegas/rast/driver"
)

func cv(x, y, z float32) driver.ClipVertex {
	return driver.ClipVertex{Pos: [4]float32{x, y, z, 1}}
}

// runClipRoundtrip implements §8 scenario 5: a triangle entirely
// inside the unit cube comes back unchanged; a triangle with one
// vertex outside is split into a pair of triangles sharing the clip
// edge; a triangle with two vertices outside comes back as a single
// triangle; a triangle entirely outside produces nothing.
func runClipRoundtrip(args []string) error {
	inside := driver.Triangle{cv(-0.5, -0.5, 0), cv(0, 0.5, 0), cv(0.5, -0.5, 0)}
	out := driver.Clip3D(inside)
	if len(out) != 1 || out[0] != inside {
		return fmt.Errorf("clip-roundtrip: inside triangle: got %d triangles, want 1 unchanged", len(out))
	}

	oneOutside := driver.Triangle{cv(-0.5, -0.5, 0), cv(0, 0.5, 0), cv(2, -0.5, 0)}
	out = driver.Clip3D(oneOutside)
	if len(out) != 2 {
		return fmt.Errorf("clip-roundtrip: one vertex outside: got %d triangles, want 2", len(out))
	}
	for _, tri := range out {
		for _, v := range tri {
			if v.Pos[0] > 1+1e-4 {
				return fmt.Errorf("clip-roundtrip: one vertex outside: vertex x=%v exceeds +1", v.Pos[0])
			}
		}
	}

	twoOutside := driver.Triangle{cv(-0.5, -0.5, 0), cv(2, 0.5, 0), cv(2, -0.5, 0)}
	out = driver.Clip3D(twoOutside)
	if len(out) != 1 {
		return fmt.Errorf("clip-roundtrip: two vertices outside: got %d triangles, want 1", len(out))
	}

	allOutside := driver.Triangle{cv(2, 2, 0), cv(3, 2, 0), cv(2, 3, 0)}
	out = driver.Clip3D(allOutside)
	if len(out) != 0 {
		return fmt.Errorf("clip-roundtrip: all vertices outside: got %d triangles, want 0", len(out))
	}

	return nil
}
