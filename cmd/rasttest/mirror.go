// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gviegas/rast/linear"
	"github.com/gviegas/rast/scene"
)

func projectNDC(view, proj linear.M4, p linear.V3) linear.V3 {
	var cam linear.V3
	cam.Mul(&p, &view)
	v4 := linear.V4{cam[0], cam[1], cam[2], 1}
	var clip linear.V4
	clip.Mul(&v4, &proj)
	return linear.V3{clip[0] / clip[3], clip[1] / clip[3], clip[2] / clip[3]}
}

func reflectPoint(planePos, planeNorm, p linear.V3) linear.V3 {
	mirrored, _ := linear.MirrorRayPlane(planePos, planeNorm, p, linear.V3{0, 0, 1})
	return mirrored
}

// runMirror implements §8 scenario 4: with a mirror plane at the
// origin facing -Z, the mirrored view of a camera at (0,0,-5) must
// place any world point at the same NDC position that directly
// viewing that point's reflection across the plane does.
func runMirror(args []string) error {
	eye := linear.V3{0, 0, -5}
	fwd := linear.V3{0, 0, 1}
	up := linear.V3{0, 1, 0}
	proj := linear.PerspectiveFovLH(math32.Pi/2, 1, 0.1, 1000)

	root := scene.New()
	node := scene.NewNode(nil)
	root.Insert(node)
	var camWorld linear.M4
	lookTo := linear.LookToLH(eye, fwd, up)
	camWorld.Invert(&lookTo)
	node.SetLocal(camWorld)
	scene.UpdateAll(&root.Node, 0)

	cam := scene.NewCamera(node, proj)

	planePos := linear.V3{0, 0, 0}
	planeNorm := linear.V3{0, 0, -1}
	mirroredView := cam.GetInvertedMirroredMatrix(planePos, planeNorm)

	points := []linear.V3{
		{0, 0, 5},
		{1, 2, 8},
		{-3, 0.5, 12},
	}
	for _, p := range points {
		ndcMirroredView := projectNDC(mirroredView, proj, p)
		ndcDirect := projectNDC(cam.View(), proj, reflectPoint(planePos, planeNorm, p))
		for i := 0; i < 3; i++ {
			if absDiffF(ndcMirroredView[i], ndcDirect[i]) > 1e-3 {
				return fmt.Errorf("mirror: point %v axis %d: mirrored-view NDC %v, direct-view-of-reflection NDC %v",
					p, i, ndcMirroredView, ndcDirect)
			}
		}
	}
	return nil
}
