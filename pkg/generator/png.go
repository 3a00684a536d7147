// png.go — Native 1-bit grayscale PNG writer.
package generator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/crc32"

	"github.com/xob0t/pixelrows/pkg/rowgen"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

// PNG header values for 1-bit grayscale.
const (
	bitDepth1     = 1
	colorTypeGray = 0
)

// ErrRowLength is returned when a RowSource hands back a buffer whose length
// does not match the image width.
var ErrRowLength = errors.New("row buffer length mismatch")

// EncodePNG writes a width×height 1-bit grayscale PNG to w. Row y is taken
// from src.NextRow(y) for y = 0..height-1. Both dimensions must fit the
// 31-bit range PNG allows.
func EncodePNG(w io.Writer, width, height int, src RowSource) error {
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return fmt.Errorf("png %dx%d: %w", width, height, rowgen.ErrInvalidDimensions)
	}

	// IHDR
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = bitDepth1
	ihdr[9] = colorTypeGray

	// IDAT: one filter byte (none) followed by the packed row.
	stride := rowgen.Stride(width)
	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return fmt.Errorf("zlib: %w", err)
	}
	line := make([]byte, 1+stride)
	for y := 0; y < height; y++ {
		row := src.NextRow(y)
		if len(row) != stride {
			return fmt.Errorf("row %d: got %d bytes, want %d: %w", y, len(row), stride, ErrRowLength)
		}
		copy(line[1:], row)
		if _, err := zw.Write(line); err != nil {
			return fmt.Errorf("compress row %d: %w", y, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	if _, err := io.WriteString(w, pngSignature); err != nil {
		return err
	}
	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat.Bytes()); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// writeChunk writes length, type, data and the CRC over type+data.
func writeChunk(w io.Writer, name string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], name)

	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if _, err := w.Write(footer[:]); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
