// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import (
	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/linear"
)

// Constant offsets shared by every effect that takes a Model/View/Proj
// triple (Flat RGB, Textured and Blinn-Phong).
const (
	mvpModelOff = 0
	mvpViewOff  = 64
	mvpProjOff  = 128
	mvpSize     = 192
)

// NewFlatRGB creates the flat-shaded effect: VS-in {Position, Color};
// VS-out {Position, SVPosition, Color}; PS-out {Color}. The vertex
// shader transforms position to camera space and NDC and passes the
// vertex color through unchanged; the pixel shader forwards it (§4.H).
func NewFlatRGB(d *driver.Device) *Effect {
	inFmt := driver.NewVertexFormat(driver.Position, driver.Color)
	outFmt := driver.NewVertexFormat(driver.Position, driver.SVPosition, driver.Color)
	psOutFmt := driver.NewVertexFormat(driver.Color)

	posIn, _ := inFmt.Find(driver.Position)
	colIn, _ := inFmt.Find(driver.Color)
	posOut, _ := outFmt.Find(driver.Position)
	svOut, _ := outFmt.Find(driver.SVPosition)
	colOut, _ := outFmt.Find(driver.Color)

	e := &Effect{inFmt: inFmt, outFmt: outFmt, vsConsts: make([]byte, mvpSize)}

	vs := func(out, in, consts []byte) {
		model := readM4(consts, mvpModelOff)
		view := readM4(consts, mvpViewOff)
		proj := readM4(consts, mvpProjOff)

		pos := readV3(in, posIn.Offset)
		var cam linear.V3
		cam.Mul(&pos, &model)
		cam.Mul(&cam, &view)
		writeV3(out, posOut.Offset, cam)

		var clip linear.V4
		v4 := linear.V4{cam[0], cam[1], cam[2], 1}
		clip.Mul(&v4, &proj)
		writeV3(out, svOut.Offset, [3]float32{clip[0] / clip[3], clip[1] / clip[3], clip[2] / clip[3]})

		color := readV3(in, colIn.Offset)
		writeV3(out, colOut.Offset, color)
	}
	ps := func(out, in, consts []byte) {
		writeV3(out, 0, readV3(in, colOut.Offset))
	}

	e.vs = d.CreateVertexShader(vs, inFmt, outFmt)
	e.ps = d.CreatePixelShader(ps, outFmt, psOutFmt)
	return e
}

// SetModel sets the effect's model matrix.
func (e *Effect) SetModel(m linear.M4) { writeM4(e.vsConsts, mvpModelOff, &m) }

// SetView sets the effect's view matrix.
func (e *Effect) SetView(m linear.M4) { writeM4(e.vsConsts, mvpViewOff, &m) }

// SetProj sets the effect's projection matrix.
func (e *Effect) SetProj(m linear.M4) { writeM4(e.vsConsts, mvpProjOff, &m) }
