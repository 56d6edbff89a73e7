package ui

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/config"
)

func TestIconGenerator_Generate(t *testing.T) {
	for _, cfg := range []IconConfig{DefaultLightIconConfig(), DefaultDarkIconConfig()} {
		data, err := NewIconGenerator(cfg).Generate()
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, common.TrayIconSize, img.Bounds().Dx())
		assert.Equal(t, common.TrayIconSize, img.Bounds().Dy())
	}
}

func TestIconGenerator_Shapes(t *testing.T) {
	size := common.TrayIconSize
	c := size / 2

	sun := NewIconGenerator(DefaultLightIconConfig()).Render()
	assert.Equal(t, DefaultLightIconConfig().FillColor, sun.RGBAAt(c, c), "sun is filled at the centre")
	_, _, _, cornerAlpha := sun.At(0, 0).RGBA()
	assert.Zero(t, cornerAlpha, "corners stay transparent")

	moon := NewIconGenerator(DefaultDarkIconConfig()).Render()
	_, _, _, cutAlpha := moon.At(c+c/2, c-c/3).RGBA()
	assert.Zero(t, cutAlpha, "crescent is cut out towards the top right")
	_, _, _, bodyAlpha := moon.At(c-c/2, c).RGBA()
	assert.NotZero(t, bodyAlpha)
}

func TestLoadIcons_Builtin(t *testing.T) {
	icons, err := LoadIcons(config.DefaultConfig())
	require.NoError(t, err)

	assert.NotEmpty(t, icons.Light)
	assert.NotEmpty(t, icons.Dark)
	assert.NotEqual(t, icons.Light, icons.Dark)
}

func TestLoadIcons_Custom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sun.png")
	data, err := NewIconGenerator(DefaultDarkIconConfig()).Generate()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	cfg := config.DefaultConfig()
	cfg.LightIcon = path

	builtin, err := LoadIcons(config.DefaultConfig())
	require.NoError(t, err)
	icons, err := LoadIcons(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, builtin.Light, icons.Light, "custom file replaces the sun")
	assert.Equal(t, builtin.Dark, icons.Dark)
}

func TestLoadIcons_DecodeFailure(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not a png"), 0600))

	tests := []struct {
		name string
		cfg  func(*config.Config)
	}{
		{"missing light icon", func(c *config.Config) { c.LightIcon = filepath.Join(dir, "absent.png") }},
		{"corrupt dark icon", func(c *config.Config) { c.DarkIcon = garbage }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.cfg(cfg)

			_, err := LoadIcons(cfg)
			assert.ErrorIs(t, err, common.ErrIconDecode)
		})
	}
}
