// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// BlendFactor and BlendOp are declared for shape-completeness with
// the original resource model, but the rasterizer only implements two
// behaviors: disabled (ONE, ZERO, ADD pass-through) and enabled
// (a fixed 50/50 average). A disabled state naming other factors or
// ops is rejected at bind time; an enabled state's factors and ops are
// not checked (§3, §9 "narrowed" blend state).
type BlendFactor int

const (
	BlendOne BlendFactor = iota
	BlendZero
)

type BlendOp int

const (
	BlendAdd BlendOp = iota
)

// BlendState configures the rasterizer's write-back step.
type BlendState struct {
	Enabled       bool
	SrcColor      BlendFactor
	DstColor      BlendFactor
	ColorOp       BlendOp
	SrcAlpha      BlendFactor
	DstAlpha      BlendFactor
	AlphaOp       BlendOp
}

// checkBlendState rejects any configuration the rasterizer cannot
// express: disabled must be (ONE, ZERO, ADD); enabled's factors/ops
// are ignored (the 50/50 average is unconditional) and are not
// validated, so any values are accepted when Enabled is set.
func checkBlendState(s BlendState) {
	if !s.Enabled {
		if s.SrcColor != BlendOne || s.DstColor != BlendZero || s.ColorOp != BlendAdd {
			panic("driver: only the (ONE, ZERO, ADD) blend mode is implemented when disabled")
		}
	}
}

// contextData is the resource-table entry for a render context.
type contextData struct {
	swapChain     Handle
	depthStencil  Handle
	renderTarget  Handle
	vertexShader  Handle
	pixelShader   Handle
	vsConstants   []byte
	psConstants   []byte
	flipHoriz     bool
	dss           DepthStencilState
	blend         BlendState
}

// CreateContext creates an empty render context.
func (d *Device) CreateContext() Handle {
	idx := d.contexts.alloc(contextData{})
	return d.handle(tagContext, idx)
}

func (d *Device) ctx(h Handle) *contextData {
	h.check(d, tagContext)
	return d.contexts.at(h.index)
}

// BindSwapChain binds the swap chain a draw presents into.
func (d *Device) BindSwapChain(ctx, swapChain Handle) {
	swapChain.check(d, tagSwapChain)
	d.ctx(ctx).swapChain = swapChain
}

// BindDepthStencilBuffer binds the depth/stencil buffer a draw tests
// and writes against.
func (d *Device) BindDepthStencilBuffer(ctx, ds Handle) {
	ds.check(d, tagDepthStencil)
	d.ctx(ctx).depthStencil = ds
}

// BindRenderTarget binds the render target a draw's rectangle is
// clipped to.
func (d *Device) BindRenderTarget(ctx, rt Handle) {
	rt.check(d, tagRenderTarget)
	d.ctx(ctx).renderTarget = rt
}

// BindShaders binds a vertex/pixel shader pair, validating at bind
// time that the pixel shader's input format matches the vertex
// shader's output format exactly (§4.E: "contracts are enforced at
// bind time by comparing format identifiers").
func (d *Device) BindShaders(ctx, vs, ps Handle) {
	v := d.vertexShader(vs)
	p := d.pixelShader(ps)
	if !v.outFmt.Equal(&p.inFmt) {
		panic("driver: pixel shader input format does not match vertex shader output format")
	}
	c := d.ctx(ctx)
	c.vertexShader = vs
	c.pixelShader = ps
}

// BindConstants sets the per-stage constant-block pointers a draw
// passes to its bound shaders.
func (d *Device) BindConstants(ctx Handle, vsConstants, psConstants []byte) {
	c := d.ctx(ctx)
	c.vsConstants = vsConstants
	c.psConstants = psConstants
}

// SetFlipHorizontal sets the context's horizontal-flip flag (used by
// mirror passes; §4.G step 6).
func (d *Device) SetFlipHorizontal(ctx Handle, flip bool) {
	d.ctx(ctx).flipHoriz = flip
}

// SetDepthStencilState sets the context's depth/stencil test and
// write configuration.
func (d *Device) SetDepthStencilState(ctx Handle, s DepthStencilState) {
	d.ctx(ctx).dss = s
}

// SetBlendState sets the context's blend configuration, rejecting
// unimplemented factor/op combinations.
func (d *Device) SetBlendState(ctx Handle, s BlendState) {
	checkBlendState(s)
	d.ctx(ctx).blend = s
}
