// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import "fmt"

// Semantic tags a vertex or pixel field. UNKNOWN fields are skipped
// during attribute interpolation (§4.G).
type Semantic int

const (
	Unknown Semantic = iota
	Position
	SVPosition
	Color
	TexCoord
	Normal
	Material
)

// fieldSize returns the size in bytes of a single field with the
// given semantic, mirroring the original's per-field sizing table.
func fieldSize(s Semantic) int {
	switch s {
	case TexCoord:
		return 8
	case Position, SVPosition, Color, Normal, Material:
		return 12
	default:
		panic(fmt.Sprintf("driver: unknown semantic %d", s))
	}
}

// fieldAlign is the alignment of every vertex field (§3).
const fieldAlign = 4

// MaxFields is the maximum number of fields a VertexFormat may
// declare (§3: "length ≤ 5").
const MaxFields = 5

// VertexField is one entry of a VertexFormat: a semantic tag and its
// byte offset within the packed vertex.
type VertexField struct {
	Semantic Semantic
	Offset   int
}

// VertexFormat is an ordered, packed list of vertex fields. Two
// formats compare equal with Equal iff their field sequences match
// exactly (§3); value equality (==) also works since VertexFormat
// holds no pointers, but Equal is provided for readability at call
// sites that do bind-time format checks (§4.E).
type VertexFormat struct {
	fields [MaxFields]VertexField
	n      int
	size   int
	align  int
}

// alignUp rounds n up to the next multiple of a.
func alignUp(n, a int) int { return (n + a - 1) &^ (a - 1) }

// NewVertexFormat packs semantics in declaration order: for each
// field, off = ceil(currentSize, 4); size += fieldSize(semantic).
// It panics if more than MaxFields semantics are given (§3).
func NewVertexFormat(semantics ...Semantic) VertexFormat {
	if len(semantics) > MaxFields {
		panic("driver: too many vertex fields")
	}
	var f VertexFormat
	f.align = fieldAlign
	for _, s := range semantics {
		off := alignUp(f.size, fieldAlign)
		f.fields[f.n] = VertexField{Semantic: s, Offset: off}
		f.n++
		f.size = off + fieldSize(s)
	}
	return f
}

// NFields returns the number of fields in the format.
func (f *VertexFormat) NFields() int { return f.n }

// Field returns the i-th field in declaration order.
func (f *VertexFormat) Field(i int) VertexField {
	if i < 0 || i >= f.n {
		panic("driver: vertex field index out of range")
	}
	return f.fields[i]
}

// Size returns the packed size of one vertex in bytes.
func (f *VertexFormat) Size() int { return f.size }

// Align returns the format's alignment (always 4; §3).
func (f *VertexFormat) Align() int { return f.align }

// Find returns the field with the given semantic and whether it is
// present.
func (f *VertexFormat) Find(s Semantic) (VertexField, bool) {
	for i := 0; i < f.n; i++ {
		if f.fields[i].Semantic == s {
			return f.fields[i], true
		}
	}
	return VertexField{}, false
}

// Equal reports whether f and g declare the same field sequence.
func (f *VertexFormat) Equal(g *VertexFormat) bool {
	if f.n != g.n {
		return false
	}
	for i := 0; i < f.n; i++ {
		if f.fields[i] != g.fields[i] {
			return false
		}
	}
	return true
}
