// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import "github.com/gviegas/rast/linear"

// unitCubePos holds the 36 vertex positions of a unit cube centered
// at the origin, two triangles per face, in up/down/right/left/back/
// front order.
var unitCubePos = [36][3]float32{
	// up
	{-0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
	// down
	{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5},
	{-0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, -0.5, -0.5},
	// right
	{0.5, -0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5},
	{0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5},
	// left
	{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5},
	{-0.5, -0.5, -0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5},
	// back
	{-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5},
	{-0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5},
	// front
	{-0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5},
}

// unitCubeUV holds the per-vertex texture coordinates matching
// unitCubePos, face by face.
var unitCubeUV = [36][2]float32{
	{0.5, 0}, {1, 1}, {0.5, 1}, {0.5, 0}, {1, 0}, {1, 1},
	{0.5, 0}, {0.5, 1}, {1, 1}, {0.5, 0}, {1, 1}, {1, 0},
	{0, 0}, {0.5, 1}, {0, 1}, {0, 0}, {0.5, 0}, {0.5, 1},
	{0, 0}, {0, 1}, {0.5, 1}, {0, 0}, {0.5, 1}, {0.5, 0},
	{0, 0}, {0, 1}, {0.5, 1}, {0, 0}, {0.5, 1}, {0.5, 0},
	{0, 0}, {0.5, 1}, {0, 1}, {0, 0}, {0.5, 0}, {0.5, 1},
}

// unitCubeFaceNorm holds the outward normal of each of the cube's six
// faces, in the same up/down/right/left/back/front order as
// unitCubePos.
var unitCubeFaceNorm = [6][3]float32{
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// TriangleVertex is one Position+Color vertex, laid out for the
// NewFlatRGB vertex-in format.
type TriangleVertex struct {
	Pos, Color linear.V3
}

// NewTriangleMesh packs three Position+Color vertices into the byte
// layout NewFlatRGB's VS-in format expects.
func NewTriangleMesh(v0, v1, v2 TriangleVertex) []byte {
	buf := make([]byte, 3*24)
	for i, v := range [3]TriangleVertex{v0, v1, v2} {
		off := i * 24
		writeV3(buf, off, v.Pos)
		writeV3(buf, off+12, v.Color)
	}
	return buf
}

// NewTexturedQuad builds a centered, axis-aligned quad of the given
// width and height, UV-mapped over [uMin,uMax]x[vMin,vMax], packed
// for NewTextured's VS-in format (Position, TexCoord). It is two
// triangles, six vertices, matching the original's ROTexRectangle
// winding.
func NewTexturedQuad(center linear.V3, width, height, uMin, uMax, vMin, vMax float32) []byte {
	hw, hh := width*0.5, height*0.5
	pos := [6]linear.V3{
		{-hw + center[0], -hh + center[1], center[2]},
		{hw + center[0], -hh + center[1], center[2]},
		{hw + center[0], hh + center[1], center[2]},
		{-hw + center[0], -hh + center[1], center[2]},
		{hw + center[0], hh + center[1], center[2]},
		{-hw + center[0], hh + center[1], center[2]},
	}
	uv := [6][2]float32{
		{uMin, vMin}, {uMax, vMin}, {uMax, vMax},
		{uMin, vMin}, {uMax, vMax}, {uMin, vMax},
	}
	const stride = 20 // 12 (Position) + 8 (TexCoord), both 4-aligned
	buf := make([]byte, 6*stride)
	for i := 0; i < 6; i++ {
		off := i * stride
		writeV3(buf, off, pos[i])
		f32ToBytes(buf[off+12:], uv[i][0])
		f32ToBytes(buf[off+16:], uv[i][1])
	}
	return buf
}

// NewCube builds a centered cube of the given size, packed for
// NewTextured's VS-in format (Position, TexCoord), using the same
// 36-vertex, per-face UV layout as the original's ROCube.
func NewCube(center linear.V3, size float32) []byte {
	const stride = 20
	buf := make([]byte, 36*stride)
	for i := 0; i < 36; i++ {
		off := i * stride
		p := linear.V3{
			unitCubePos[i][0]*size + center[0],
			unitCubePos[i][1]*size + center[1],
			unitCubePos[i][2]*size + center[2],
		}
		writeV3(buf, off, p)
		f32ToBytes(buf[off+12:], unitCubeUV[i][0])
		f32ToBytes(buf[off+16:], unitCubeUV[i][1])
	}
	return buf
}

// NewBlinnPhongCube builds a centered cube of the given size, packed
// for NewBlinnPhong's VS-in format (Position, Normal), using the
// same 36-vertex layout as the original's ROBlinnPhongCube: every
// vertex of a face shares that face's outward normal.
func NewBlinnPhongCube(center linear.V3, size float32) []byte {
	const stride = 24
	buf := make([]byte, 36*stride)
	for i := 0; i < 36; i++ {
		off := i * stride
		p := linear.V3{
			unitCubePos[i][0]*size + center[0],
			unitCubePos[i][1]*size + center[1],
			unitCubePos[i][2]*size + center[2],
		}
		n := unitCubeFaceNorm[i/6]
		writeV3(buf, off, p)
		writeV3(buf, off+12, linear.V3{n[0], n[1], n[2]})
	}
	return buf
}
