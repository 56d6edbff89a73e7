package ui

import (
	"bytes"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// encodeTrayIcon returns img as an ICO file; the Windows notification area
// does not accept PNG data.
func encodeTrayIcon(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
