// bmp.go — BMP and TIFF output through golang.org/x/image.
// Neither container has a 1-bit grayscale mode in the x/image encoders, so
// rows are expanded to 8-bit gray first.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/xob0t/pixelrows/pkg/rowgen"
)

// Expand pulls height rows from src into an 8-bit gray image.
// Bit 0 becomes black and bit 1 white.
func Expand(width, height int, src RowSource) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("expand %dx%d: %w", width, height, rowgen.ErrInvalidDimensions)
	}

	stride := rowgen.Stride(width)
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := src.NextRow(y)
		if len(row) != stride {
			return nil, fmt.Errorf("row %d: got %d bytes, want %d: %w", y, len(row), stride, ErrRowLength)
		}
		for x := 0; x < width; x++ {
			if row[x>>3]&(0x80>>uint(x&7)) != 0 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img, nil
}

// EncodeBMP writes the rows of src as an uncompressed BMP.
func EncodeBMP(w io.Writer, width, height int, src RowSource) error {
	img, err := Expand(width, height, src)
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF writes the rows of src as a deflate-compressed TIFF.
func EncodeTIFF(w io.Writer, width, height int, src RowSource) error {
	img, err := Expand(width, height, src)
	if err != nil {
		return err
	}
	if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return fmt.Errorf("encode TIFF: %w", err)
	}
	return nil
}
