package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bannerforge/bannerforge/internal/banner"
)

func TestResolveTemplateDefaults(t *testing.T) {
	got := Resolve("professional", Overrides{})
	assert.Equal(t, banner.StyleGrid, got.Style)
	assert.Equal(t, "royal", got.Palette)
	assert.Equal(t, []banner.Effect{banner.EffectShadow}, got.Effects)
}

func TestExplicitOverridesBeatTemplate(t *testing.T) {
	got := Resolve("professional", Overrides{Palette: "ocean"})
	assert.Equal(t, banner.StyleGrid, got.Style)
	assert.Equal(t, "ocean", got.Palette)
	assert.Equal(t, []banner.Effect{banner.EffectShadow}, got.Effects)
}

func TestUnknownTemplateUsesDefaults(t *testing.T) {
	got := Resolve("no-such-template", Overrides{})
	assert.Equal(t, banner.StyleWave, got.Style)
	assert.Equal(t, "stealth", got.Palette)
	assert.Empty(t, got.Effects)
}

func TestUnknownTemplateKeepsExplicitValues(t *testing.T) {
	got := Resolve("no-such-template", Overrides{
		Style:   "particles",
		Palette: "neon",
		Effects: []string{"blur"},
	})
	assert.Equal(t, banner.StyleParticles, got.Style)
	assert.Equal(t, "neon", got.Palette)
	assert.Equal(t, []banner.Effect{banner.EffectBlur}, got.Effects)
}

func TestExplicitEffectsReplaceTemplateEffects(t *testing.T) {
	got := Resolve("cyberpunk", Overrides{Effects: []string{"stripe"}})
	assert.Equal(t, []banner.Effect{banner.EffectStripe}, got.Effects)
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"creative", "cyberpunk", "minimal", "nature", "professional", "tech"}, names)
}
