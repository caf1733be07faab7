// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/linear"
)

// Blinn-Phong constants layout: model/view/proj (§4.H shared with the
// other effects), followed by the light and material parameters and
// the eye position used for the specular term.
const (
	bpModelOff    = mvpModelOff
	bpViewOff     = mvpViewOff
	bpProjOff     = mvpProjOff
	bpLightPosOff = mvpSize
	bpLightColOff = bpLightPosOff + 12
	bpAttenOff    = bpLightColOff + 12
	bpEyeOff      = bpAttenOff + 12
	bpAmbientOff  = bpEyeOff + 12
	bpDiffuseOff  = bpAmbientOff + 12
	bpSpecularOff = bpDiffuseOff + 12
	bpConstsSize  = bpSpecularOff + 12
)

func mulV3M3(v linear.V3, m linear.M3) (r linear.V3) {
	for j := 0; j < 3; j++ {
		r[j] = v[0]*m[0][j] + v[1]*m[1][j] + v[2]*m[2][j]
	}
	return
}

// normalMatrix returns the inverse-transpose of model's upper-left
// 3x3 block, used to transform normals so that non-uniform scaling
// does not skew them.
func normalMatrix(model linear.M4) linear.M3 {
	upper := model.Upper()
	var inv, norm linear.M3
	inv.Invert(&upper)
	norm.Transpose(&inv)
	return norm
}

// NewBlinnPhong creates the Blinn-Phong lit effect: VS-in {Position,
// Normal}; VS-out {Position, SVPosition, Position, Normal} (the
// second Position field carries the world-space position, reused
// alongside the camera-space one the VS-out contract requires in
// field 0); PS-out {Color} (§4.H).
func NewBlinnPhong(d *driver.Device) *Effect {
	inFmt := driver.NewVertexFormat(driver.Position, driver.Normal)
	outFmt := driver.NewVertexFormat(driver.Position, driver.SVPosition, driver.Position, driver.Normal)
	psOutFmt := driver.NewVertexFormat(driver.Color)

	posIn, _ := inFmt.Find(driver.Position)
	normIn, _ := inFmt.Find(driver.Normal)
	camOut, _ := outFmt.Find(driver.Position)
	svOut, _ := outFmt.Find(driver.SVPosition)
	worldOut := outFmt.Field(2)
	normOut, _ := outFmt.Find(driver.Normal)

	e := &Effect{inFmt: inFmt, outFmt: outFmt, vsConsts: make([]byte, bpConstsSize)}
	e.psConsts = e.vsConsts

	vs := func(out, in, consts []byte) {
		model := readM4(consts, bpModelOff)
		view := readM4(consts, bpViewOff)
		proj := readM4(consts, bpProjOff)

		pos := readV3(in, posIn.Offset)
		var world linear.V3
		world.Mul(&pos, &model)
		writeV3(out, worldOut.Offset, world)

		var cam linear.V3
		cam.Mul(&world, &view)
		writeV3(out, camOut.Offset, cam)

		var clip linear.V4
		v4 := linear.V4{cam[0], cam[1], cam[2], 1}
		clip.Mul(&v4, &proj)
		writeV3(out, svOut.Offset, [3]float32{clip[0] / clip[3], clip[1] / clip[3], clip[2] / clip[3]})

		n := readV3(in, normIn.Offset)
		wn := mulV3M3(n, normalMatrix(model))
		var wnNorm linear.V3
		wnNorm.Norm(&wn)
		writeV3(out, normOut.Offset, wnNorm)
	}
	ps := func(out, in, consts []byte) {
		worldPos := readV3(in, worldOut.Offset)
		n := readV3(in, normOut.Offset)
		var normal linear.V3
		normal.Norm(&n)

		lightPos := readV3(consts, bpLightPosOff)
		lightColor := readV3(consts, bpLightColOff)
		atten := readV3(consts, bpAttenOff)
		eye := readV3(consts, bpEyeOff)
		ambient := readV3(consts, bpAmbientOff)
		diffuse := readV3(consts, bpDiffuseOff)
		specular := readV3(consts, bpSpecularOff)

		var toLight linear.V3
		toLight.Sub(&lightPos, &worldPos)
		dist := toLight.Len()
		var toLightNorm linear.V3
		toLightNorm.Norm(&toLight)

		diffTerm := toLightNorm.Dot(&normal)
		if diffTerm < 0 {
			diffTerm = 0
		}

		var toEye linear.V3
		toEye.Sub(&eye, &worldPos)
		toEye.Norm(&toEye)

		var incoming linear.V3
		incoming.Scale(-1, &toLightNorm)
		var reflected linear.V3
		reflected.Reflect(&incoming, &normal)
		specDot := reflected.Dot(&toEye)
		if specDot < 0 {
			specDot = 0
		}
		specTerm := math32.Pow(specDot, 8)

		attenFactor := 1 / (atten[0] + atten[1]*dist + atten[2]*dist*dist)

		var color linear.V3
		for i := 0; i < 3; i++ {
			color[i] = (ambient[i] + diffuse[i]*diffTerm + specular[i]*specTerm) * lightColor[i] * attenFactor
		}
		writeV3(out, 0, color)
	}

	e.vs = d.CreateVertexShader(vs, inFmt, outFmt)
	e.ps = d.CreatePixelShader(ps, outFmt, psOutFmt)
	return e
}

// SetLight sets the light's world-space position, color and
// (constant, linear, quadratic) attenuation coefficients.
func (e *Effect) SetLight(pos, color, atten linear.V3) {
	writeV3(e.vsConsts, bpLightPosOff, pos)
	writeV3(e.vsConsts, bpLightColOff, color)
	writeV3(e.vsConsts, bpAttenOff, atten)
}

// SetEye sets the world-space eye position used for the specular term.
func (e *Effect) SetEye(pos linear.V3) { writeV3(e.vsConsts, bpEyeOff, pos) }

// SetMaterial sets the ambient/diffuse/specular coefficients.
func (e *Effect) SetMaterial(ambient, diffuse, specular linear.V3) {
	writeV3(e.vsConsts, bpAmbientOff, ambient)
	writeV3(e.vsConsts, bpDiffuseOff, diffuse)
	writeV3(e.vsConsts, bpSpecularOff, specular)
}
