// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopVS(out, in, constants []byte) {}
func noopPS(out, in, constants []byte) {}

func TestCreateContextBindings(t *testing.T) {
	d := NewDevice()
	rt := d.CreateRenderTarget(4, 4)
	sc := d.CreateSwapChain(rt)
	ds := d.CreateDepthStencilBuffer(4, 4)

	ctx := d.CreateContext()
	require.True(t, ctx.IsValid())

	assert.NotPanics(t, func() {
		d.BindRenderTarget(ctx, rt)
		d.BindSwapChain(ctx, sc)
		d.BindDepthStencilBuffer(ctx, ds)
	})
}

func TestBindShadersRequiresMatchingFormats(t *testing.T) {
	d := NewDevice()
	ctx := d.CreateContext()

	vsOut := NewVertexFormat(Position, SVPosition, Color)
	psIn := NewVertexFormat(Position, SVPosition, Color)
	psOut := NewVertexFormat(Color)

	vs := d.CreateVertexShader(noopVS, NewVertexFormat(Position, Color), vsOut)
	ps := d.CreatePixelShader(noopPS, psIn, psOut)

	assert.NotPanics(t, func() { d.BindShaders(ctx, vs, ps) })
}

func TestBindShadersMismatchedFormatsPanics(t *testing.T) {
	d := NewDevice()
	ctx := d.CreateContext()

	vsOut := NewVertexFormat(Position, SVPosition, Color)
	psIn := NewVertexFormat(Position, SVPosition, Normal)
	psOut := NewVertexFormat(Color)

	vs := d.CreateVertexShader(noopVS, NewVertexFormat(Position, Color), vsOut)
	ps := d.CreatePixelShader(noopPS, psIn, psOut)

	assert.Panics(t, func() { d.BindShaders(ctx, vs, ps) })
}

func TestVertexShaderOutputShapeIsValidated(t *testing.T) {
	d := NewDevice()
	assert.Panics(t, func() {
		d.CreateVertexShader(noopVS, NewVertexFormat(Position), NewVertexFormat(Color))
	})
}

func TestPixelShaderOutputShapeIsValidated(t *testing.T) {
	d := NewDevice()
	assert.Panics(t, func() {
		d.CreatePixelShader(noopPS, NewVertexFormat(Position, SVPosition), NewVertexFormat(Position, Color))
	})
}

func TestSetBlendStateRejectsUnimplementedDisabledCombination(t *testing.T) {
	d := NewDevice()
	ctx := d.CreateContext()
	assert.Panics(t, func() {
		d.SetBlendState(ctx, BlendState{Enabled: false, SrcColor: BlendZero, DstColor: BlendZero, ColorOp: BlendAdd})
	})
}

func TestSetBlendStateAcceptsDisabledDefaults(t *testing.T) {
	d := NewDevice()
	ctx := d.CreateContext()
	assert.NotPanics(t, func() {
		d.SetBlendState(ctx, BlendState{Enabled: false, SrcColor: BlendOne, DstColor: BlendZero, ColorOp: BlendAdd})
	})
}

func TestSetDepthStencilStateAndFlip(t *testing.T) {
	d := NewDevice()
	ctx := d.CreateContext()
	assert.NotPanics(t, func() {
		d.SetDepthStencilState(ctx, DepthStencilState{DepthTestEnabled: true, DepthWriteMask: DepthWriteAll})
		d.SetFlipHorizontal(ctx, true)
	})
}
