package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"svg", FormatVector},
		{"vector", FormatVector},
		{"png", FormatRaster},
		{"raster", FormatRaster},
		{"ascii", FormatGlyph},
		{"glyph", FormatGlyph},
		{"txt", FormatGlyph},
		{"ASCII", FormatGlyph},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("gif")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))
}

func TestExt(t *testing.T) {
	assert.Equal(t, "svg", Ext(FormatVector))
	assert.Equal(t, "png", Ext(FormatRaster))
	assert.Equal(t, "txt", Ext(FormatGlyph))
}

func TestRenderVector(t *testing.T) {
	req := banner.New("Hello")
	data, err := Render(req, FormatVector)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"))
}

func TestRenderRaster(t *testing.T) {
	req := banner.New("Hello")
	req.Width = 200
	req.Height = 80
	data, err := Render(req, FormatRaster)
	require.NoError(t, err)
	// PNG signature.
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
}

func TestRenderGlyph(t *testing.T) {
	req := banner.New("Hi")
	data, err := Render(req, FormatGlyph)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	req.Text = ""
	_, err = Render(req, FormatGlyph)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))
}

func TestRenderAllCoversEveryFormat(t *testing.T) {
	req := banner.New("Combo")
	req.Width = 200
	req.Height = 80

	artifacts, err := RenderAll(req)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	for _, f := range Formats {
		assert.NotEmpty(t, artifacts[f], "format %s must not be skipped", f)
	}
}

func TestRenderAllFailsWhole(t *testing.T) {
	req := banner.New("")
	_, err := RenderAll(req)
	require.Error(t, err)
}
