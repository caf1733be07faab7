// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package effect

import (
	"github.com/gviegas/rast/driver"
	"github.com/gviegas/rast/linear"
)

// NewTextured creates the textured effect: VS-in {Position, TexCoord};
// VS-out {Position, SVPosition, TexCoord}; PS samples tex via the
// interpolated (u, v) (§4.H). tex must have been created by d.
func NewTextured(d *driver.Device, tex driver.Handle) *Effect {
	inFmt := driver.NewVertexFormat(driver.Position, driver.TexCoord)
	outFmt := driver.NewVertexFormat(driver.Position, driver.SVPosition, driver.TexCoord)
	psOutFmt := driver.NewVertexFormat(driver.Color)

	posIn, _ := inFmt.Find(driver.Position)
	uvIn, _ := inFmt.Find(driver.TexCoord)
	posOut, _ := outFmt.Find(driver.Position)
	svOut, _ := outFmt.Find(driver.SVPosition)
	uvOut, _ := outFmt.Find(driver.TexCoord)

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

		f32ToBytes(out[uvOut.Offset:], bytesToF32(in[uvIn.Offset:]))
		f32ToBytes(out[uvOut.Offset+4:], bytesToF32(in[uvIn.Offset+4:]))
	}
	ps := func(out, in, consts []byte) {
		u := bytesToF32(in[uvOut.Offset:])
		v := bytesToF32(in[uvOut.Offset+4:])
		b, g, r := d.Sample(tex, u, v)
		writeV3(out, 0, [3]float32{r, g, b})
	}

	e.vs = d.CreateVertexShader(vs, inFmt, outFmt)
	e.ps = d.CreatePixelShader(ps, outFmt, psOutFmt)
	return e
}
