package core

import "slices"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order. An
// optional padding ring surrounds the W*H interior; padding cells stay zero.
type ByteGrid struct {
	W, H int
	pad  int
	data []uint8
}

// NewByteGrid allocates an unpadded grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	return NewPaddedByteGrid(w, h, 0)
}

// NewPaddedByteGrid allocates a W*H grid wrapped in a ring of pad zero cells on
// every side.
func NewPaddedByteGrid(w, h, pad int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if pad < 0 {
		pad = 0
	}
	stride := w + 2*pad
	return &ByteGrid{W: w, H: h, pad: pad, data: make([]uint8, stride*(h+2*pad))}
}

// Cells exposes the backing slice, padding included.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Pad returns the width of the padding ring.
func (g *ByteGrid) Pad() int { return g.pad }

// Stride returns the length of one stored row.
func (g *ByteGrid) Stride() int { return g.W + 2*g.pad }

// Index returns the linear slice index for interior coordinates (x, y).
// Coordinates down to -pad and up to W-1+pad address the padding ring.
func (g *ByteGrid) Index(x, y int) int { return (y+g.pad)*g.Stride() + x + g.pad }

// InBounds reports whether (x, y) lies in the interior.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y), or zero for anything outside the interior.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at interior coordinates (x, y). Writes outside the interior are
// ignored so the padding ring stays zero.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, pad: g.pad, data: slices.Clone(g.data)}
}

// Equal reports whether both grids have the same shape and values.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.W == o.W && g.H == o.H && g.pad == o.pad && slices.Equal(g.data, o.data)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
