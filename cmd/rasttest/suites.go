// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

// suites maps suite name to case name to runner (§6 "The test
// executable takes a suite name, a case name, and case-specific
// positional arguments"). Every case here corresponds to one of the
// concrete scenarios in §8.
var suites = map[string]map[string]func(args []string) error{
	"raster": {
		"triangle-ppm":   runTrianglePPM,
		"depth-order":    runDepthOrder,
		"stencil-mask":   runStencilMask,
		"mirror":         runMirror,
		"clip-roundtrip": runClipRoundtrip,
		"bmp-sample":     runBMPSample,
	},
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
