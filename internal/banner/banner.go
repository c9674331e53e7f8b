// Package banner defines the normalized render request consumed by both
// the vector and raster pipelines.
package banner

import (
	"strings"

	"github.com/bannerforge/bannerforge/internal/errors"
	"github.com/bannerforge/bannerforge/internal/palette"
)

// Style selects the accent-generation algorithm (vector) or effect set
// (raster). Unknown styles fall back to StyleWave.
type Style string

const (
	StyleWave      Style = "wave"
	StyleGeometric Style = "geometric"
	StyleGrid      Style = "grid"
	StyleParticles Style = "particles"
	StyleGlow      Style = "glow"
)

// Styles lists the recognized styles in display order.
var Styles = []Style{StyleWave, StyleGeometric, StyleGrid, StyleParticles, StyleGlow}

// ParseStyle maps a name to a style, defaulting to wave.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(s)) {
	case StyleGeometric:
		return StyleGeometric
	case StyleGrid:
		return StyleGrid
	case StyleParticles:
		return StyleParticles
	case StyleGlow:
		return StyleGlow
	default:
		return StyleWave
	}
}

// Effect is a raster post-processing stage.
type Effect string

const (
	EffectShadow   Effect = "shadow"
	EffectGlow     Effect = "glow"
	EffectGradient Effect = "gradient"
	EffectStripe   Effect = "stripe"
	EffectBlur     Effect = "blur"
)

// Effects lists the recognized effects in pipeline order.
var Effects = []Effect{EffectGradient, EffectShadow, EffectGlow, EffectStripe, EffectBlur}

// ParseEffects normalizes effect names, silently dropping unknown ones.
// The raster pipeline applies effects in its own fixed order, so the
// order of the result carries no meaning.
func ParseEffects(names []string) []Effect {
	var out []Effect
	for _, n := range names {
		switch Effect(strings.ToLower(n)) {
		case EffectShadow:
			out = append(out, EffectShadow)
		case EffectGlow:
			out = append(out, EffectGlow)
		case EffectGradient:
			out = append(out, EffectGradient)
		case EffectStripe:
			out = append(out, EffectStripe)
		case EffectBlur:
			out = append(out, EffectBlur)
		}
	}
	return out
}

// HasEffect reports whether e is in effects.
func HasEffect(effects []Effect, e Effect) bool {
	for _, x := range effects {
		if x == e {
			return true
		}
	}
	return false
}

// Default canvas geometry.
const (
	DefaultWidth  = 1200
	DefaultHeight = 300
)

// MaxArea caps the canvas at 64 megapixels before allocation.
const MaxArea = 64 << 20

// Request is the single normalized input to both composer pipelines.
// All layout inside the renderers is proportional to Width/Height.
type Request struct {
	Text     string
	Subtitle string
	Width    int
	Height   int
	Palette  palette.Palette
	Style    Style
	Effects  []Effect
	Animated bool

	// QR, when non-empty, adds a QR badge to the raster output.
	QR string

	// FontPath is an optional TTF file tried first by the font resolver.
	FontPath string

	// GlyphFont names the figlet font for glyph output.
	GlyphFont string
}

// New returns a request with defaults filled in.
func New(text string) Request {
	return Request{
		Text:    text,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Palette: palette.Resolve(palette.DefaultName),
		Style:   StyleWave,
	}
}

// Validate rejects requests no renderer should attempt.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New(errors.ErrInvalidInput, "text must not be empty")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Newf(errors.ErrInvalidInput, "geometry %dx%d: dimensions must be positive", r.Width, r.Height)
	}
	if r.Width*r.Height > MaxArea {
		return errors.Newf(errors.ErrInvalidInput, "geometry %dx%d exceeds max canvas area", r.Width, r.Height)
	}
	return nil
}

// SafeName sanitizes text for use in a file name: spaces become
// underscores and the result is capped at 30 characters. The cap counts
// runes so multi-byte text is never cut mid-sequence.
func SafeName(text string) string {
	s := strings.ReplaceAll(text, " ", "_")
	if runes := []rune(s); len(runes) > 30 {
		s = string(runes[:30])
	}
	return s
}
