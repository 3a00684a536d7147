// header.go — PNG header inspection.
package generator

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/crc32"
)

// ErrNotPNG is returned when the input does not start with a PNG signature
// followed by a valid IHDR chunk.
var ErrNotPNG = errors.New("not a PNG stream")

// Header is the decoded IHDR chunk of a PNG stream.
type Header struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	BitDepth  int  `json:"bitDepth"`
	ColorType int  `json:"colorType"`
	Interlace bool `json:"interlace"`
}

// Grayscale reports whether the color type is plain grayscale.
func (h Header) Grayscale() bool {
	return h.ColorType == colorTypeGray
}

// ReadHeader reads the signature and IHDR chunk from r.
func ReadHeader(r io.Reader) (Header, error) {
	// signature (8) + length (4) + type (4) + IHDR (13) + CRC (4)
	buf := make([]byte, 33)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("short header: %w", ErrNotPNG)
		}
		return Header{}, fmt.Errorf("read header: %w", err)
	}

	if string(buf[:8]) != pngSignature {
		return Header{}, fmt.Errorf("bad signature: %w", ErrNotPNG)
	}
	if binary.BigEndian.Uint32(buf[8:12]) != 13 || string(buf[12:16]) != "IHDR" {
		return Header{}, fmt.Errorf("missing IHDR: %w", ErrNotPNG)
	}
	if crc32.ChecksumIEEE(buf[12:29]) != binary.BigEndian.Uint32(buf[29:33]) {
		return Header{}, fmt.Errorf("IHDR checksum mismatch: %w", ErrNotPNG)
	}

	data := buf[16:29]
	return Header{
		Width:     int(binary.BigEndian.Uint32(data[0:4])),
		Height:    int(binary.BigEndian.Uint32(data[4:8])),
		BitDepth:  int(data[8]),
		ColorType: int(data[9]),
		Interlace: data[12] != 0,
	}, nil
}
