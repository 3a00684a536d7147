package main

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/xob0t/pixelrows/pkg/generator"
	"github.com/xob0t/pixelrows/pkg/rowgen"
)

// renderImage generates an image in the named format and returns it base64
// encoded. A zero seed draws from the process-wide source.
func renderImage(width, height int, format string, seed uint64) (string, error) {
	ext, err := generator.FormatExt(format)
	if err != nil {
		return "", err
	}

	cfg := generator.Config{Width: width, Height: height}
	if seed != 0 {
		cfg.Source = rowgen.NewSeeded(seed)
	}

	var buf bytes.Buffer
	if err := generator.GenerateToWriter(&buf, ext, cfg); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// inspectImage decodes base64 PNG data and returns its header.
func inspectImage(b64 string) (generator.Header, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return generator.Header{}, fmt.Errorf("invalid base64: %w", err)
	}
	return generator.ReadHeader(bytes.NewReader(data))
}
