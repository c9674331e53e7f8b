// Package palette holds the named color-scheme table shared by every
// render path. Lookups never fail; unknown names resolve to the default.
package palette

import (
	"image/color"
	"sort"

	"github.com/bannerforge/bannerforge/internal/errors"
)

// RGB is a validated color triple. Palettes store these, not raw strings,
// so a malformed hex value is rejected once at the edge.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" (leading '#' optional).
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, errors.Newf(errors.ErrInvalidInput, "color %q: want 6 hex digits", s)
	}
	var v [6]uint8
	for i := 0; i < 6; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v[i] = c - '0'
		case c >= 'a' && c <= 'f':
			v[i] = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v[i] = c - 'A' + 10
		default:
			return RGB{}, errors.Newf(errors.ErrInvalidInput, "color %q: bad hex digit %q", s, c)
		}
	}
	return RGB{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5]}, nil
}

// MustHex is for the built-in tables below.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the "#rrggbb" form used in SVG attributes and the store.
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	b := [7]byte{'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	}
	return string(b[:])
}

// WithAlpha returns the color at alpha a for drawing. The result is
// non-premultiplied: image/draw reads color.RGBA as alpha-premultiplied,
// and a channel above the alpha would wrap during Porter-Duff blending.
func (c RGB) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Palette names six color roles used consistently across all render paths.
type Palette struct {
	Background    RGB
	Accent        RGB
	Text          RGB
	Muted         RGB
	GradientStart RGB
	GradientEnd   RGB
}

// DefaultName is the fallback for every unknown palette lookup.
const DefaultName = "stealth"

var builtins = map[string]Palette{
	"stealth": {
		Background:    MustHex("#0a0f14"),
		Accent:        MustHex("#00ffff"),
		Text:          MustHex("#ffffff"),
		Muted:         MustHex("#9aa4ad"),
		GradientStart: MustHex("#00ffff"),
		GradientEnd:   MustHex("#0088ff"),
	},
	"ember": {
		Background:    MustHex("#0f0a07"),
		Accent:        MustHex("#ff8a3b"),
		Text:          MustHex("#f5e9e3"),
		Muted:         MustHex("#c9b5a3"),
		GradientStart: MustHex("#ff8a3b"),
		GradientEnd:   MustHex("#ff4d4d"),
	},
	"forest": {
		Background:    MustHex("#0d1b0e"),
		Accent:        MustHex("#4ade80"),
		Text:          MustHex("#e8f5e9"),
		Muted:         MustHex("#81c784"),
		GradientStart: MustHex("#4ade80"),
		GradientEnd:   MustHex("#22c55e"),
	},
	"ocean": {
		Background:    MustHex("#0a1628"),
		Accent:        MustHex("#38bdf8"),
		Text:          MustHex("#e0f2fe"),
		Muted:         MustHex("#7dd3fc"),
		GradientStart: MustHex("#38bdf8"),
		GradientEnd:   MustHex("#0ea5e9"),
	},
	"sunset": {
		Background:    MustHex("#1a0f1e"),
		Accent:        MustHex("#f472b6"),
		Text:          MustHex("#fce7f3"),
		Muted:         MustHex("#f9a8d4"),
		GradientStart: MustHex("#f472b6"),
		GradientEnd:   MustHex("#ec4899"),
	},
	"neon": {
		Background:    MustHex("#000000"),
		Accent:        MustHex("#00ff41"),
		Text:          MustHex("#00ff41"),
		Muted:         MustHex("#39ff14"),
		GradientStart: MustHex("#00ff41"),
		GradientEnd:   MustHex("#39ff14"),
	},
	"royal": {
		Background:    MustHex("#1e1b4b"),
		Accent:        MustHex("#fbbf24"),
		Text:          MustHex("#fef3c7"),
		Muted:         MustHex("#fcd34d"),
		GradientStart: MustHex("#fbbf24"),
		GradientEnd:   MustHex("#f59e0b"),
	},
	"cyberpunk": {
		Background:    MustHex("#0d0221"),
		Accent:        MustHex("#ff006e"),
		Text:          MustHex("#f72585"),
		Muted:         MustHex("#b5179e"),
		GradientStart: MustHex("#ff006e"),
		GradientEnd:   MustHex("#8338ec"),
	},
	"matrix": {
		Background:    MustHex("#000000"),
		Accent:        MustHex("#00ff00"),
		Text:          MustHex("#00ff00"),
		Muted:         MustHex("#008f00"),
		GradientStart: MustHex("#00ff00"),
		GradientEnd:   MustHex("#00aa00"),
	},
}

// Registry is an immutable name→palette table. The built-in registry is
// created once at init and is safe for concurrent reads; custom palettes
// produce a fresh registry rather than mutating shared state.
type Registry struct {
	palettes map[string]Palette
}

// Builtin is the process-wide read-only registry.
var Builtin = &Registry{palettes: builtins}

// With returns a new registry layering extra palettes over r.
// Existing names are overwritten; r is left untouched.
func (r *Registry) With(extra map[string]Palette) *Registry {
	merged := make(map[string]Palette, len(r.palettes)+len(extra))
	for name, p := range r.palettes {
		merged[name] = p
	}
	for name, p := range extra {
		merged[name] = p
	}
	return &Registry{palettes: merged}
}

// Resolve returns the palette for name, or the default palette when the
// name is unknown. It never fails.
func (r *Registry) Resolve(name string) Palette {
	if p, ok := r.palettes[name]; ok {
		return p
	}
	return r.palettes[DefaultName]
}

// Names returns all registered palette names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up name in the built-in registry.
func Resolve(name string) Palette {
	return Builtin.Resolve(name)
}

// MergeCustom builds a palette from four user-supplied colors. The
// gradient collapses to the accent color for custom palettes.
func MergeCustom(bg, accent, text, muted string) (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = ParseHex(bg); err != nil {
		return Palette{}, err
	}
	if p.Accent, err = ParseHex(accent); err != nil {
		return Palette{}, err
	}
	if p.Text, err = ParseHex(text); err != nil {
		return Palette{}, err
	}
	if p.Muted, err = ParseHex(muted); err != nil {
		return Palette{}, err
	}
	p.GradientStart = p.Accent
	p.GradientEnd = p.Accent
	return p, nil
}
