// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// VertexShaderFunc transforms one input vertex into one VS-out
// vertex. in is one vertex in the bound VS-in format; out is one
// vertex in the bound VS-out format; constants is an opaque,
// effect-owned constant block. The runtime never inspects the shader
// body; it only compares the format identifiers declared at creation
// (§4.E, §9 "dynamic shader signatures").
type VertexShaderFunc func(out, in, constants []byte)

// PixelShaderFunc computes one pixel's color from one interpolated
// PS-in vertex and a constant block. The output format always has
// exactly one COLOR field.
type PixelShaderFunc func(out, in, constants []byte)

type vertexShaderData struct {
	fn             VertexShaderFunc
	inFmt, outFmt  VertexFormat
}

type pixelShaderData struct {
	fn            PixelShaderFunc
	inFmt, outFmt VertexFormat
}

// checkVSOutShape validates the §4.E contract that a VS-out format's
// first two fields are the camera-space position and the NDC
// position.
func checkVSOutShape(f *VertexFormat) {
	if f.NFields() < 2 {
		panic("driver: vertex shader output format needs at least two fields")
	}
	if f.Field(0).Semantic != Position {
		panic("driver: vertex shader output's first field must be POSITION (camera-space)")
	}
	if f.Field(1).Semantic != SVPosition {
		panic("driver: vertex shader output's second field must be SV_POSITION (NDC)")
	}
}

// checkPSOutShape validates that a PS-out format has exactly one
// COLOR field (§4.E).
func checkPSOutShape(f *VertexFormat) {
	if f.NFields() != 1 || f.Field(0).Semantic != Color {
		panic("driver: pixel shader output format must have exactly one COLOR field")
	}
}

// CreateVertexShader stores fn as a new vertex shader, validating that
// outFmt satisfies the VS-out shape contract.
func (d *Device) CreateVertexShader(fn VertexShaderFunc, inFmt, outFmt VertexFormat) Handle {
	checkVSOutShape(&outFmt)
	idx := d.vertexShaders.alloc(vertexShaderData{fn: fn, inFmt: inFmt, outFmt: outFmt})
	return d.handle(tagVertexShader, idx)
}

// CreatePixelShader stores fn as a new pixel shader, validating that
// outFmt satisfies the PS-out shape contract.
func (d *Device) CreatePixelShader(fn PixelShaderFunc, inFmt, outFmt VertexFormat) Handle {
	checkPSOutShape(&outFmt)
	idx := d.pixelShaders.alloc(pixelShaderData{fn: fn, inFmt: inFmt, outFmt: outFmt})
	return d.handle(tagPixelShader, idx)
}

func (d *Device) vertexShader(h Handle) *vertexShaderData {
	h.check(d, tagVertexShader)
	return d.vertexShaders.at(h.index)
}

func (d *Device) pixelShader(h Handle) *pixelShaderData {
	h.check(d, tagPixelShader)
	return d.pixelShaders.at(h.index)
}
