// Package template maps named templates to default style, palette, and
// effect settings. Explicit per-call values always win over template
// values, which win over component defaults.
package template

import (
	"sort"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/palette"
)

// Template bundles the defaults a named template supplies.
type Template struct {
	Style   banner.Style
	Palette string
	Effects []banner.Effect
}

var builtins = map[string]Template{
	"minimal": {
		Style:   banner.StyleWave,
		Palette: "stealth",
	},
	"professional": {
		Style:   banner.StyleGrid,
		Palette: "royal",
		Effects: []banner.Effect{banner.EffectShadow},
	},
	"creative": {
		Style:   banner.StyleGeometric,
		Palette: "sunset",
		Effects: []banner.Effect{banner.EffectGlow, banner.EffectGradient},
	},
	"tech": {
		Style:   banner.StyleWave,
		Palette: "neon",
		Effects: []banner.Effect{banner.EffectGlow},
	},
	"nature": {
		Style:   banner.StyleWave,
		Palette: "forest",
		Effects: []banner.Effect{banner.EffectBlur},
	},
	"cyberpunk": {
		Style:   banner.StyleParticles,
		Palette: "cyberpunk",
		Effects: []banner.Effect{banner.EffectGlow, banner.EffectShadow},
	},
}

// Names returns the template names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a built-in template by name.
func Lookup(name string) (Template, bool) {
	t, ok := builtins[name]
	return t, ok
}

// Overrides carries the values the caller set explicitly. Zero values
// mean "not set" and leave the template or default in place.
type Overrides struct {
	Style   string
	Palette string
	Effects []string
}

// Resolve layers explicit overrides over template defaults over
// component defaults. Unknown template names behave as if no template
// were given.
func Resolve(name string, o Overrides) Template {
	resolved := Template{
		Style:   banner.StyleWave,
		Palette: palette.DefaultName,
	}
	if t, ok := builtins[name]; ok {
		resolved.Style = t.Style
		resolved.Palette = t.Palette
		resolved.Effects = append([]banner.Effect(nil), t.Effects...)
	}
	if o.Style != "" {
		resolved.Style = banner.ParseStyle(o.Style)
	}
	if o.Palette != "" {
		resolved.Palette = o.Palette
	}
	if o.Effects != nil {
		resolved.Effects = banner.ParseEffects(o.Effects)
	}
	return resolved
}
