// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "github.com/chewxy/math32"

// Translation returns the row-major translation matrix for (x, y, z).
// Since points are row vectors, the translation lives in the fourth
// row.
func Translation(x, y, z float32) (m M4) {
	m.I()
	m[3][0], m[3][1], m[3][2] = x, y, z
	return
}

// RotationAxisLH returns the left-handed Rodrigues rotation matrix
// for a rotation of θ radians about axis. axis must be normalized.
func RotationAxisLH(axis V3, theta float32) (m M4) {
	s, c := math32.Sin(theta), math32.Cos(theta)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	m[0] = V4{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0}
	m[1] = V4{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0}
	m[2] = V4{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0}
	m[3] = V4{0, 0, 0, 1}
	return
}

// PerspectiveFovLH returns the left-handed perspective projection
// matrix for the given vertical field of view (radians), aspect
// ratio (width/height), near plane and far plane. It maps
// camera-space z in [zNear, zFar] to clip-space w = z and to
// NDC-space z in [0, 1].
func PerspectiveFovLH(fov, aspect, zNear, zFar float32) (m M4) {
	height := 1 / math32.Tan(0.5*fov)
	width := height / aspect
	fRange := zFar / (zFar - zNear)
	m[0] = V4{width, 0, 0, 0}
	m[1] = V4{0, height, 0, 0}
	m[2] = V4{0, 0, fRange, 1}
	m[3] = V4{0, 0, -fRange * zNear, 0}
	return
}

// LookToLH returns the left-handed view matrix for a camera at eye,
// looking along dir, with the given up vector. dir and up must not
// be parallel; dir must not be the zero vector.
func LookToLH(eye, dir, up V3) (m M4) {
	var fwd, right, upp V3
	fwd.Norm(&dir)
	right.Cross(&up, &fwd)
	right.Norm(&right)
	upp.Cross(&fwd, &right)
	m[0] = V4{right[0], upp[0], fwd[0], 0}
	m[1] = V4{right[1], upp[1], fwd[1], 0}
	m[2] = V4{right[2], upp[2], fwd[2], 0}
	m[3] = V4{-eye.Dot(&right), -eye.Dot(&upp), -eye.Dot(&fwd), 1}
	return
}

// EdgeFunction returns twice the signed area of the triangle (a, b,
// c): (c.x-a.x)*(b.y-a.y) - (c.y-a.y)*(b.x-a.x). It is positive for a
// counter-clockwise triangle in screen coordinates (y-down).
func EdgeFunction(a, b, c V2) float32 {
	return (c[0]-a[0])*(b[1]-a[1]) - (c[1]-a[1])*(b[0]-a[0])
}

// MirrorRayPlane reflects a position and a ray about the plane
// through posPlane with unit normal normPlane. The position is
// mirrored by projecting it onto the plane and stepping past it; the
// direction is mirrored by normalizing the vector from the mirrored
// position to the ray/plane intersection point, negated if that
// intersection lies behind the ray's origin (t < 0). If the ray runs
// parallel to the plane, the direction is returned unchanged.
func MirrorRayPlane(posPlane, normPlane, posRay, dirRay V3) (mirroredPos, mirroredDir V3) {
	var toOrig V3
	toOrig.Sub(&posRay, &posPlane)
	dist := toOrig.Dot(&normPlane)
	var off V3
	off.Scale(dist, &normPlane)
	var project V3
	project.Sub(&posRay, &off)

	var projectOff V3
	projectOff.Sub(&project, &posRay)
	projectOff.Scale(2, &projectOff)
	mirroredPos.Add(&posRay, &projectOff)

	vn := dirRay.Dot(&normPlane)
	if vn < 0 {
		vn = -vn
	}
	if vn <= 1e-6 {
		mirroredDir = dirRay
		return
	}
	var toPlane V3
	toPlane.Sub(&posPlane, &posRay)
	t := toPlane.Dot(&normPlane) / dirRay.Dot(&normPlane)

	var step V3
	step.Scale(t, &dirRay)
	var intersect V3
	intersect.Add(&posRay, &step)

	var toIntersect V3
	toIntersect.Sub(&intersect, &mirroredPos)
	mirroredDir.Norm(&toIntersect)
	if t < 0 {
		mirroredDir.Scale(-1, &mirroredDir)
	}
	return
}
