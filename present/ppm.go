// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package present

import (
	"fmt"
	"io"

	"github.com/gviegas/rast/surface"
)

// WritePPM writes surf as a binary PPM (P6) image (§6 "Persisted
// state"): header "P6\n{W} {H}\n255\n" followed by H*W*3 bytes in
// R,G,B order, swapping B and R from surf's in-memory BGR layout.
// surf must have a 3-byte element size.
func WritePPM(w io.Writer, surf *surface.Buffer2D) error {
	if surf.ElemSize() != 3 {
		return fmt.Errorf("present: WritePPM: expected a 3-byte BGR surface, got %d", surf.ElemSize())
	}
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", surf.Width(), surf.Height()); err != nil {
		return fmt.Errorf("present: WritePPM: %w", err)
	}
	row := make([]byte, surf.Width()*3)
	for r := 0; r < surf.Height(); r++ {
		for c := 0; c < surf.Width(); c++ {
			px := surf.At(r, c)
			row[c*3+0] = px[2]
			row[c*3+1] = px[1]
			row[c*3+2] = px[0]
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("present: WritePPM: %w", err)
		}
	}
	return nil
}
