// Package generator writes images whose scanlines are pulled from a RowSource.
//
// Every call builds a fresh rowgen.Generator, so no row state carries over
// between images. PNG output is written natively as 1-bit grayscale; BMP and
// TIFF go through golang.org/x/image.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xob0t/pixelrows/pkg/rowgen"
)

// Generate creates an output file. The format is inferred from the file extension:
//   - ".png" → 1-bit grayscale PNG
//   - ".bmp" → BMP
//   - ".tif", ".tiff" → TIFF
//
// An existing file is truncated.
func Generate(output string, cfg Config) error {
	ext := strings.ToLower(filepath.Ext(output))
	encode, err := encoderFor(ext)
	if err != nil {
		return err
	}

	gen, err := rowgen.New(cfg.Width, cfg.Height, cfg.Source)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := encode(f, gen.Width(), gen.Height(), gen); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}

// GenerateToWriter writes an image to an io.Writer. The format is specified by
// ext (".png", ".bmp", ".tif" or ".tiff"). This is useful for in-memory
// generation (e.g., HTTP responses).
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	encode, err := encoderFor(strings.ToLower(ext))
	if err != nil {
		return err
	}

	gen, err := rowgen.New(cfg.Width, cfg.Height, cfg.Source)
	if err != nil {
		return err
	}
	return encode(w, gen.Width(), gen.Height(), gen)
}

type encodeFunc func(w io.Writer, width, height int, src RowSource) error

func encoderFor(ext string) (encodeFunc, error) {
	switch ext {
	case ".png":
		return EncodePNG, nil
	case ".bmp":
		return EncodeBMP, nil
	case ".tif", ".tiff":
		return EncodeTIFF, nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use .png, .bmp or .tiff", ext)
	}
}

// FormatExt maps a format name ("png", "bmp", "tif", "tiff") to its file
// extension. An empty name means PNG.
func FormatExt(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", "png":
		return ".png", nil
	case "bmp":
		return ".bmp", nil
	case "tif", "tiff":
		return ".tiff", nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// ContentType returns the MIME type for a supported extension.
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
