// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	xbmp "golang.org/x/image/bmp"

	"github.com/gviegas/rast/bmp"
	"github.com/gviegas/rast/driver"
)

// runBMPSample implements §8 scenario 6: load a 2x2 BMP with known
// per-quadrant colors and sample all four texels through a Texture2D.
func runBMPSample(args []string) error {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	colors := [2][2]color.NRGBA{
		{{255, 0, 0, 255}, {0, 255, 0, 255}},
		{{0, 0, 255, 255}, {255, 255, 0, 255}},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, colors[y][x])
		}
	}

	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, src); err != nil {
		return fmt.Errorf("bmp-sample: encode: %w", err)
	}
	dir, err := os.MkdirTemp("", "rasttest-bmp-*")
	if err != nil {
		return fmt.Errorf("bmp-sample: %w", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "test.bmp")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("bmp-sample: %w", err)
	}

	w, h, pixels, err := bmp.LoadBMP(path)
	if err != nil {
		return fmt.Errorf("bmp-sample: %w", err)
	}

	d := driver.NewDevice()
	tex := d.CreateTexture2D(w, h, pixels)

	samples := []struct {
		u, v    float32
		r, g, b float32
	}{
		{0.25, 0.25, 1, 0, 0},
		{0.75, 0.25, 0, 1, 0},
		{0.25, 0.75, 0, 0, 1},
		{0.75, 0.75, 1, 1, 0},
	}
	const tol = 1.0/255 + 1e-3
	for _, s := range samples {
		b, g, r := d.Sample(tex, s.u, s.v)
		if absDiffF(r, s.r) > tol || absDiffF(g, s.g) > tol || absDiffF(b, s.b) > tol {
			return fmt.Errorf("bmp-sample: (u=%v,v=%v): got (r=%v,g=%v,b=%v), want (r=%v,g=%v,b=%v)",
				s.u, s.v, r, g, b, s.r, s.g, s.b)
		}
	}
	return nil
}
