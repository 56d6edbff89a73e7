//go:build !windows

package ui

import (
	"bytes"
	"image"
	"image/png"
)

func encodeTrayIcon(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
