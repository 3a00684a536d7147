// interface.go — Row source contract and generation config.
package generator

import "github.com/xob0t/pixelrows/pkg/rowgen"

// Config holds parameters for image generation.
type Config struct {
	Width  int           // Pixel width
	Height int           // Pixel height
	Source rowgen.Source // Randomness for row swaps; nil = process-wide source
}

// RowSource produces the packed 1-bit scanline for row index. Writers call
// it exactly once per row, in increasing order, and copy the result before
// the next call.
type RowSource interface {
	NextRow(index int) []byte
}
