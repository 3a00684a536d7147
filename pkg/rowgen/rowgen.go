// Package rowgen produces the scanlines of a 1-bit grayscale image.
//
// A Generator holds one bit-packed row that starts half black, half white.
// Every call to NextRow swaps two randomly chosen pixels of that same row
// and hands back its bytes, so the shuffles accumulate from row to row.
package rowgen

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned for a non-positive width or height.
var ErrInvalidDimensions = errors.New("width and height must be positive")

// Row is a fixed-length run of 1-bit pixels packed MSB first.
// Bits past the row width are always zero.
type Row struct {
	bits  []byte
	width int
}

func newRow(width int) Row {
	return Row{bits: make([]byte, Stride(width)), width: width}
}

// Stride is the number of bytes a packed row of width pixels occupies.
func Stride(width int) int {
	return (width + 7) / 8
}

// Len returns the number of pixels.
func (r Row) Len() int {
	return r.width
}

// At returns the pixel at i (0 or 1).
func (r Row) At(i int) uint8 {
	return (r.bits[i>>3] >> (7 - uint(i&7))) & 1
}

func (r Row) set(i int, v uint8) {
	mask := byte(1) << (7 - uint(i&7))
	if v != 0 {
		r.bits[i>>3] |= mask
	} else {
		r.bits[i>>3] &^= mask
	}
}

func (r Row) swap(i, j int) {
	a, b := r.At(i), r.At(j)
	r.set(i, b)
	r.set(j, a)
}

// Generator owns the row shared by every scanline of one image.
type Generator struct {
	width  int
	height int
	row    Row
	src    Source
}

// New creates a generator for a width×height image. Pixel i of the initial
// row is 1 when i > width/2 and 0 otherwise. A nil src falls back to Global.
func New(width, height int, src Source) (*Generator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rowgen %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if src == nil {
		src = Global{}
	}

	row := newRow(width)
	for i := 0; i < width; i++ {
		if i > width/2 {
			row.set(i, 1)
		}
	}

	return &Generator{width: width, height: height, row: row, src: src}, nil
}

// NextRow swaps two random pixels of the row and returns its packed bytes.
// The index is ignored. The returned slice is owned by the generator and
// is overwritten by the next call.
func (g *Generator) NextRow(index int) []byte {
	i := g.src.IntN(g.width)
	j := g.src.IntN(g.width)
	g.row.swap(i, j)
	return g.row.bits
}

// Width returns the image width in pixels.
func (g *Generator) Width() int { return g.width }

// Height returns the number of rows the caller is expected to request.
// It is not enforced by NextRow.
func (g *Generator) Height() int { return g.height }

// Row returns a view of the current row.
func (g *Generator) Row() Row { return g.row }

// Pixel returns the current value of pixel i.
func (g *Generator) Pixel(i int) uint8 { return g.row.At(i) }

// Counts returns how many pixels of the row are 0 and 1.
func (g *Generator) Counts() (zeros, ones int) {
	for i := 0; i < g.width; i++ {
		if g.row.At(i) == 1 {
			ones++
		}
	}
	return g.width - ones, ones
}
