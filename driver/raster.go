// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// rasterEpsilon is the tolerance used for barycentric, depth and
// area bounds checks throughout the hot loop (§4.G, §8).
const rasterEpsilon = 1e-4

// areaClamp is the inverse-area value substituted when a triangle's
// screen-space area is too small to invert safely (§4.G step 5).
const areaClamp = 1000

func recipArea(area float32) float32 {
	a := area
	if a < 0 {
		a = -a
	}
	if a < rasterEpsilon {
		if area < 0 {
			return -areaClamp
		}
		return areaClamp
	}
	return 1 / area
}

// rasterVertex holds what the per-pixel loop needs from one shaded
// triangle corner: the VS-out bytes and the reciprocals used for
// perspective-correct interpolation. Screen-space positions are kept
// in a separate array.
type rasterVertex struct {
	out     []byte
	invCamZ float32
	invNdcZ float32
}

func readVec3(b []byte, off int) (x, y, z float32) {
	x = bytesToF32(b[off:])
	y = bytesToF32(b[off+4:])
	z = bytesToF32(b[off+8:])
	return
}

func writeVec3(b []byte, off int, x, y, z float32) {
	f32ToBytes(b[off:], x)
	f32ToBytes(b[off+4:], y)
	f32ToBytes(b[off+8:], z)
}

func writeVec2(b []byte, off int, x, y float32) {
	f32ToBytes(b[off:], x)
	f32ToBytes(b[off+4:], y)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1+rasterEpsilon {
		return 1
	}
	return v
}

// Draw rasterizes count/3 triangles (count must be a multiple of 3)
// starting at vertex start in vb, using the state bound to ctx. This
// is the hot loop: vertex shading, back-face culling, viewport
// transform, coverage test, perspective-correct interpolation,
// depth/stencil arbitration, pixel shading and blend/write (§4.G).
//
// This draw path does not run the polygon clipper; it relies on the
// screen-space AABB-against-target-rect scissor plus the
// pCam.z-positive reject, matching the original implementation's main
// loop. Clip3D/Clip2D remain available as standalone primitives for
// callers that need true homogeneous clipping (§9 open question).
func (d *Device) Draw(ctx, vb Handle, start, count int) {
	c := d.ctx(ctx)
	if count%3 != 0 {
		panic("driver: draw count must be a multiple of 3")
	}
	vs := d.vertexShader(c.vertexShader)
	ps := d.pixelShader(c.pixelShader)
	target := d.RenderTargetRect(c.renderTarget)
	back := d.BackBuffer(c.swapChain)
	hasDS := c.depthStencil.IsValid()
	var depth, stencil interface {
		At(r, c int) []byte
	}
	if hasDS {
		depth = d.depthBuf(c.depthStencil)
		stencil = d.stencilBuf(c.depthStencil)
	}

	outFmt := vs.outFmt
	psInFmt := ps.inFmt
	posField, _ := outFmt.Find(Position)
	svField, _ := outFmt.Find(SVPosition)

	for tri := 0; tri < count; tri += 3 {
		var v [3]rasterVertex
		var camZ, ndcZ [3]float32
		var ndcXY [3][2]float32
		skip := false
		for i := 0; i < 3; i++ {
			in := d.VertexSlot(vb, start+tri+i)
			out := make([]byte, outFmt.Size())
			vs.fn(out, in, c.vsConstants)

			_, _, camZi := readVec3(out, posField.Offset)
			if camZi <= 0 {
				skip = true
			}
			ndcX, ndcY, ndcZi := readVec3(out, svField.Offset)

			v[i].out = out
			camZ[i] = camZi
			ndcZ[i] = ndcZi
			ndcXY[i] = [2]float32{ndcX, ndcY}
		}
		if skip {
			continue
		}

		// A triangle survives here when its NDC winding is left-handed
		// (ndcArea > 0), matching this pipeline's front-face convention;
		// the opposite winding, and degenerate triangles, are culled.
		ndcArea := edgeFunction2(ndcXY[0], ndcXY[1], ndcXY[2])
		if ndcArea <= 0 {
			continue
		}

		w := float32(target.W)
		h := float32(target.H)
		var screen [3][2]float32
		for i := 0; i < 3; i++ {
			sx := (ndcXY[i][0] + 1) / 2 * w
			sy := (1 - ndcXY[i][1]) / 2 * h
			screen[i] = [2]float32{sx, sy}
			v[i].invCamZ = 1 / camZ[i]
			v[i].invNdcZ = 1 / ndcZ[i]
		}

		// The viewport's y-flip reverses chirality relative to NDC, so a
		// kept triangle's screen-space winding runs the other way. Relabel
		// vertices 1 and 2 when needed so every surviving triangle reaches
		// the per-pixel test under the same positive-area convention.
		triArea := edgeFunction2(screen[0], screen[1], screen[2])
		if triArea < 0 {
			v[1], v[2] = v[2], v[1]
			screen[1], screen[2] = screen[2], screen[1]
			triArea = -triArea
		}

		minX, minY, maxX, maxY := triBounds(screen)
		x0 := maxInt(target.X, int(minX))
		y0 := maxInt(target.Y, int(minY))
		x1 := minInt(target.X+target.W, int(maxX)+1)
		y1 := minInt(target.Y+target.H, int(maxY)+1)
		if x0 >= x1 || y0 >= y1 {
			continue
		}

		ainv := recipArea(triArea)

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				xf := float32(x) + 0.5
				yf := float32(y) + 0.5
				p := [2]float32{xf, yf}
				e0 := edgeFunction2(screen[1], screen[2], p)
				e1 := edgeFunction2(screen[2], screen[0], p)
				e2 := edgeFunction2(screen[0], screen[1], p)
				if e0 < 0 || e1 < 0 || e2 < 0 {
					continue
				}
				if e0 == 0 && e1 == 0 && e2 == 0 {
					continue
				}
				b0 := e0 * ainv
				b1 := e1 * ainv
				b2 := e2 * ainv
				if !inBary(b0) || !inBary(b1) || !inBary(b2) {
					continue
				}

				invZSum := b0*v[0].invNdcZ + b1*v[1].invNdcZ + b2*v[2].invNdcZ
				zNDC := 1 / invZSum
				if zNDC < 0 || zNDC > 1+rasterEpsilon {
					continue
				}

				writeX := x
				if c.flipHoriz {
					writeX = target.X + target.W - 1 - (x - target.X)
				}

				if hasDS {
					dPx := depth.At(y, writeX)
					storedDepth := bytesToF32(dPx)
					if c.dss.DepthTestEnabled && storedDepth <= zNDC {
						continue
					}
					sPx := stencil.At(y, writeX)
					if c.dss.StencilTestEnabled && sPx[0] == 0 {
						continue
					}
					if c.dss.DepthWriteMask == DepthWriteAll {
						f32ToBytes(dPx, zNDC)
					}
					if c.dss.StencilWriteMask != 0 {
						sPx[0] |= c.dss.StencilWriteMask
					}
				}

				invCamSum := b0*v[0].invCamZ + b1*v[1].invCamZ + b2*v[2].invCamZ
				zCam := 1 / invCamSum
				w0 := zCam * v[0].invCamZ * b0
				w1 := zCam * v[1].invCamZ * b1
				w2 := zCam * v[2].invCamZ * b2

				psIn := make([]byte, psInFmt.Size())
				for i := 0; i < psInFmt.NFields(); i++ {
					f := psInFmt.Field(i)
					switch f.Semantic {
					case Unknown:
						continue
					case SVPosition:
						writeVec3(psIn, f.Offset, xf, yf, zNDC)
					case TexCoord:
						ax0 := bytesToF32(v[0].out[f.Offset:])
						ay0 := bytesToF32(v[0].out[f.Offset+4:])
						ax1 := bytesToF32(v[1].out[f.Offset:])
						ay1 := bytesToF32(v[1].out[f.Offset+4:])
						ax2 := bytesToF32(v[2].out[f.Offset:])
						ay2 := bytesToF32(v[2].out[f.Offset+4:])
						writeVec2(psIn, f.Offset,
							ax0*w0+ax1*w1+ax2*w2,
							ay0*w0+ay1*w1+ay2*w2)
					default:
						ax0, ay0, az0 := readVec3(v[0].out, f.Offset)
						ax1, ay1, az1 := readVec3(v[1].out, f.Offset)
						ax2, ay2, az2 := readVec3(v[2].out, f.Offset)
						writeVec3(psIn, f.Offset,
							ax0*w0+ax1*w1+ax2*w2,
							ay0*w0+ay1*w1+ay2*w2,
							az0*w0+az1*w1+az2*w2)
					}
				}

				psOut := make([]byte, ps.outFmt.Size())
				ps.fn(psOut, psIn, c.psConstants)
				r := clamp01(bytesToF32(psOut[0:]))
				g := clamp01(bytesToF32(psOut[4:]))
				bch := clamp01(bytesToF32(psOut[8:]))

				px := back.At(y, writeX)
				if !c.blend.Enabled {
					px[0] = byte(255 * bch)
					px[1] = byte(255 * g)
					px[2] = byte(255 * r)
				} else {
					px[0] = byte(float32(px[0])/2 + 255*bch*0.5)
					px[1] = byte(float32(px[1])/2 + 255*g*0.5)
					px[2] = byte(float32(px[2])/2 + 255*r*0.5)
				}
			}
		}
	}
}

func inBary(b float32) bool { return b >= 0 && b <= 1+rasterEpsilon }

func edgeFunction2(a, b, c [2]float32) float32 {
	return (c[0]-a[0])*(b[1]-a[1]) - (c[1]-a[1])*(b[0]-a[0])
}

func triBounds(p [3][2]float32) (minX, minY, maxX, maxY float32) {
	minX, maxX = p[0][0], p[0][0]
	minY, maxY = p[0][1], p[0][1]
	for _, v := range p[1:] {
		if v[0] < minX {
			minX = v[0]
		}
		if v[0] > maxX {
			maxX = v[0]
		}
		if v[1] < minY {
			minY = v[1]
		}
		if v[1] > maxY {
			maxY = v[1]
		}
	}
	return
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
