// Package render routes a normalized request to the vector, raster, or
// glyph pipeline and serializes the result to bytes.
package render

import (
	"strings"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/errors"
	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/logging"
	"github.com/bannerforge/bannerforge/internal/raster"
	"github.com/bannerforge/bannerforge/internal/svg"
)

// Format selects an output pipeline.
type Format string

const (
	FormatVector Format = "svg"
	FormatRaster Format = "png"
	FormatGlyph  Format = "ascii"
)

// Formats lists every pipeline, in the order the combined mode runs them.
var Formats = []Format{FormatGlyph, FormatVector, FormatRaster}

// ParseFormat accepts the user-facing names for each pipeline.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "svg", "vector":
		return FormatVector, nil
	case "png", "raster":
		return FormatRaster, nil
	case "ascii", "glyph", "txt":
		return FormatGlyph, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s)
	}
}

// Ext returns the file extension for a format.
func Ext(f Format) string {
	switch f {
	case FormatVector:
		return "svg"
	case FormatRaster:
		return "png"
	default:
		return "txt"
	}
}

// Renderer turns a request into one serialized artifact.
type Renderer interface {
	Render(req banner.Request) ([]byte, error)
}

type vectorRenderer struct{}

func (vectorRenderer) Render(req banner.Request) ([]byte, error) {
	doc, err := svg.Compose(req)
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}

type rasterRenderer struct{}

func (rasterRenderer) Render(req banner.Request) ([]byte, error) {
	img, err := raster.Render(req, raster.NewFontResolver(req.FontPath))
	if err != nil {
		return nil, err
	}
	return raster.EncodePNG(img)
}

type glyphRenderer struct{}

func (glyphRenderer) Render(req banner.Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return []byte(glyph.Render(req.Text, req.GlyphFont)), nil
}

// For returns the renderer for a format.
func For(f Format) (Renderer, error) {
	switch f {
	case FormatVector:
		return vectorRenderer{}, nil
	case FormatRaster:
		return rasterRenderer{}, nil
	case FormatGlyph:
		return glyphRenderer{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", string(f))
	}
}

// Render produces one artifact for the request.
func Render(req banner.Request, f Format) ([]byte, error) {
	r, err := For(f)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("render")
	logger.Debug().Str("format", string(f)).Str("text", req.Text).Msg("rendering")
	return r.Render(req)
}

// RenderAll runs every pipeline against the same request. No path is
// skipped; the first failure aborts with its error.
func RenderAll(req banner.Request) (map[Format][]byte, error) {
	out := make(map[Format][]byte, len(Formats))
	for _, f := range Formats {
		data, err := Render(req, f)
		if err != nil {
			return nil, err
		}
		out[f] = data
	}
	return out, nil
}
