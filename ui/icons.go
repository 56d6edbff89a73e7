package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/config"
)

// IconConfig defines the configuration for glyph generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	// Rays draws a sun; otherwise a crescent moon is drawn.
	Rays bool
}

// DefaultLightIconConfig returns the config for the sun glyph.
func DefaultLightIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{255, 193, 7, 255}, // Amber
		BorderColor: color.RGBA{255, 143, 0, 255}, // Dark amber
		Rays:        true,
	}
}

// DefaultDarkIconConfig returns the config for the moon glyph.
func DefaultDarkIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{207, 216, 220, 255}, // Blue gray
		BorderColor: color.RGBA{96, 125, 139, 255},  // Dark blue gray
		Rays:        false,
	}
}

// IconGenerator draws tray glyphs.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Render draws the glyph.
func (g *IconGenerator) Render() *image.RGBA {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	if g.config.Rays {
		g.drawSun(img)
	} else {
		g.drawMoon(img)
	}
	return img
}

// Generate draws the glyph and returns it PNG-encoded.
func (g *IconGenerator) Generate() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, g.Render()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fillShape paints every pixel inside the shape, using the border color for
// pixels with a neighbour outside it.
func (g *IconGenerator) fillShape(img *image.RGBA, inside func(x, y float64) bool) {
	size := g.config.Size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !inside(fx, fy) {
				continue
			}
			isBorder := !inside(fx-1, fy) || !inside(fx+1, fy) ||
				!inside(fx, fy-1) || !inside(fx, fy+1)
			if isBorder {
				img.Set(x, y, g.config.BorderColor)
			} else {
				img.Set(x, y, g.config.FillColor)
			}
		}
	}
}

// drawSun draws a disc surrounded by eight rays.
func (g *IconGenerator) drawSun(img *image.RGBA) {
	s := float64(g.config.Size)
	c := s / 2
	radius := s * 0.24

	g.fillShape(img, func(x, y float64) bool {
		return math.Hypot(x-c, y-c) <= radius
	})

	inner, outer := radius+s*0.08, s/2-1
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		dx, dy := math.Cos(angle), math.Sin(angle)
		for r := inner; r <= outer; r += 0.5 {
			x, y := int(c+dx*r), int(c+dy*r)
			img.Set(x, y, g.config.BorderColor)
		}
	}
}

// drawMoon draws a crescent: a disc with an offset disc cut out of it.
func (g *IconGenerator) drawMoon(img *image.RGBA) {
	s := float64(g.config.Size)
	c := s / 2
	radius := s/2 - 2
	cutX, cutY := c+radius*0.55, c-radius*0.35

	g.fillShape(img, func(x, y float64) bool {
		return math.Hypot(x-c, y-c) <= radius &&
			math.Hypot(x-cutX, y-cutY) > radius*0.85
	})
}

// Icons holds both encoded tray images.
type Icons struct {
	Light []byte
	Dark  []byte
}

// For returns the image for g.
func (i Icons) For(g Glyph) []byte {
	if g == GlyphLight {
		return i.Light
	}
	return i.Dark
}

// LoadIcons builds the tray images. Paths set in cfg replace the built-in
// glyphs; they must be PNG files. Images are converted to the format the
// platform's tray expects.
func LoadIcons(cfg *config.Config) (Icons, error) {
	light, err := loadGlyph(cfg.LightIcon, DefaultLightIconConfig())
	if err != nil {
		return Icons{}, err
	}
	dark, err := loadGlyph(cfg.DarkIcon, DefaultDarkIconConfig())
	if err != nil {
		return Icons{}, err
	}
	return Icons{Light: light, Dark: dark}, nil
}

func loadGlyph(path string, fallback IconConfig) ([]byte, error) {
	var img image.Image
	if path == "" {
		img = NewIconGenerator(fallback).Render()
	} else {
		decoded, err := decodePNG(path)
		if err != nil {
			return nil, err
		}
		img = decoded
	}

	data, err := encodeTrayIcon(img)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding tray icon: %w", common.ErrIconDecode, err)
	}
	return data, nil
}

func decodePNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrIconDecode, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrIconDecode, path, err)
	}
	return img, nil
}
