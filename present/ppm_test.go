// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package present

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/rast/surface"
)

func TestWritePPMHeaderAndBytes(t *testing.T) {
	surf := surface.New(2, 1, 3, 4)
	copy(surf.At(0, 0), []byte{10, 20, 30}) // B, G, R
	copy(surf.At(0, 1), []byte{40, 50, 60})

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, surf))

	want := "P6\n2 1\n255\n" + string([]byte{30, 20, 10, 60, 50, 40})
	assert.Equal(t, want, buf.String())
}

func TestWritePPMRejectsNonBGR(t *testing.T) {
	surf := surface.New(2, 2, 4, 4)
	var buf bytes.Buffer
	assert.Error(t, WritePPM(&buf, surf))
}
