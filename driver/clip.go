// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// MaxVaryings is the largest number of f32 attribute elements a
// ClipVertex may carry (§4.F).
const MaxVaryings = 24

// MaxTriangles3D and MaxTriangles2D bound how many triangles a single
// input triangle can expand into after clipping against all six (3D)
// or four (2D) canonical planes: each plane at most doubles the
// triangle count, so 2^6 and 2^4 respectively (§4.F).
const (
	MaxTriangles3D = 64
	MaxTriangles2D = 16
)

// ClipVertex is one polygon-clipper vertex: a clip-space position and
// up to MaxVaryings f32 attribute elements, interpolated alongside it.
type ClipVertex struct {
	Pos    [4]float32
	Attr   [MaxVaryings]float32
	NAttr  int
}

// Triangle is three clip-space vertices in winding order.
type Triangle [3]ClipVertex

func lerpClipVertex(a, b ClipVertex, t float32) ClipVertex {
	var out ClipVertex
	for i := range a.Pos {
		out.Pos[i] = a.Pos[i] + t*(b.Pos[i]-a.Pos[i])
	}
	out.NAttr = a.NAttr
	for i := 0; i < a.NAttr; i++ {
		out.Attr[i] = a.Attr[i] + t*(b.Attr[i]-a.Attr[i])
	}
	return out
}

// edgeLerp returns the point where the plane (whose signed distances
// at a and b are sdfA, sdfB) crosses segment a-b.
func edgeLerp(a, b ClipVertex, sdfA, sdfB float32) ClipVertex {
	t := sdfA / (sdfA - sdfB)
	return lerpClipVertex(a, b, t)
}

type plane struct {
	axis int
	side float32
}

// planeValue is the fixed clip-space threshold used by every
// canonical plane (§4.F: "using w=1", a pre-divide cube).
const planeValue = 1

var planes3D = [6]plane{
	{0, 1}, {0, -1},
	{1, 1}, {1, -1},
	{2, 1}, {2, -1},
}

var planes2D = [4]plane{
	{0, 1}, {0, -1},
	{1, 1}, {1, -1},
}

// clipOne clips a single triangle against one plane, returning 0, 1 or
// 2 resulting triangles (§4.F steps 1-3).
func clipOne(tri Triangle, pl plane) []Triangle {
	var sdf [3]float32
	var pos int
	for i, v := range tri {
		sdf[i] = planeValue - pl.side*v.Pos[pl.axis]
		if sdf[i] >= 0 {
			pos++
		}
	}
	switch pos {
	case 0:
		return nil
	case 3:
		return []Triangle{tri}
	case 1:
		var m int
		for i, s := range sdf {
			if s >= 0 {
				m = i
			}
		}
		l := (m + 2) % 3
		r := (m + 1) % 3
		clipL := edgeLerp(tri[l], tri[m], sdf[l], sdf[m])
		clipR := edgeLerp(tri[m], tri[r], sdf[m], sdf[r])
		return []Triangle{{clipL, tri[m], clipR}}
	case 2:
		var m int
		for i, s := range sdf {
			if s < 0 {
				m = i
			}
		}
		l := (m + 2) % 3
		r := (m + 1) % 3
		clipL := edgeLerp(tri[l], tri[m], sdf[l], sdf[m])
		clipR := edgeLerp(tri[m], tri[r], sdf[m], sdf[r])
		return []Triangle{
			{tri[l], clipL, clipR},
			{tri[l], clipR, tri[r]},
		}
	default:
		return nil
	}
}

func clipAll(tri Triangle, planes []plane) []Triangle {
	out := []Triangle{tri}
	for _, pl := range planes {
		var next []Triangle
		for _, t := range out {
			next = append(next, clipOne(t, pl)...)
		}
		out = next
		if len(out) == 0 {
			break
		}
	}
	return out
}

// Clip3D clips tri against the six canonical 3D planes in the fixed
// order x=+w, x=-w, y=+w, y=-w, z=+w, z=-w, returning up to
// MaxTriangles3D triangles.
func Clip3D(tri Triangle) []Triangle { return clipAll(tri, planes3D[:]) }

// Clip2D clips tri against only the X and Y canonical planes,
// returning up to MaxTriangles2D triangles.
func Clip2D(tri Triangle) []Triangle { return clipAll(tri, planes2D[:]) }
