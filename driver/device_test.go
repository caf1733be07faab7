// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeviceIsEmpty(t *testing.T) {
	d := NewDevice()
	require.NotNil(t, d)
}

func TestZeroHandleIsInvalid(t *testing.T) {
	var h Handle
	assert.False(t, h.IsValid())
}

func TestHandleFromForeignDevicePanics(t *testing.T) {
	d1 := NewDevice()
	d2 := NewDevice()
	rt := d1.CreateRenderTarget(4, 4)
	require.True(t, rt.IsValid())
	assert.Panics(t, func() { d2.RenderTargetRect(rt) })
}

func TestHandleWrongTagPanics(t *testing.T) {
	d := NewDevice()
	rt := d.CreateRenderTarget(4, 4)
	assert.Panics(t, func() { d.Texture2DSize(rt) })
}

func TestResourcePoolsAreIndependentAcrossDevices(t *testing.T) {
	d1 := NewDevice()
	d2 := NewDevice()
	rt1 := d1.CreateRenderTarget(8, 8)
	rt2 := d2.CreateRenderTarget(16, 16)
	assert.Equal(t, Rect{0, 0, 8, 8}, d1.RenderTargetRect(rt1))
	assert.Equal(t, Rect{0, 0, 16, 16}, d2.RenderTargetRect(rt2))
}
