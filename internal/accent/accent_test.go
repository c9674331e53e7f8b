package accent

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/palette"
)

func serialize(t *testing.T, shapes []Shape) string {
	t.Helper()
	doc := etree.NewDocument()
	g := doc.CreateElement("g")
	for _, s := range shapes {
		s.AppendTo(g)
	}
	out, err := doc.WriteToString()
	require.NoError(t, err)
	return out
}

func TestWaveIsSingleClosedPath(t *testing.T) {
	cyan := palette.MustHex("#00ffff")
	shapes := Generate(banner.StyleWave, 1200, 300, cyan, 0.12)
	require.Len(t, shapes, 1)

	out := serialize(t, shapes)
	assert.Contains(t, out, "M0 195")
	assert.Contains(t, out, "C 300 120, 900 270, 1200 180")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(extractAttr(t, out, "d")), "Z"))
}

func extractAttr(t *testing.T, doc, attr string) string {
	t.Helper()
	tree := etree.NewDocument()
	require.NoError(t, tree.ReadFromString(doc))
	el := tree.FindElement("//path")
	require.NotNil(t, el)
	return el.SelectAttrValue(attr, "")
}

func TestGeometricShapeCount(t *testing.T) {
	shapes := Generate(banner.StyleGeometric, 1000, 400, palette.MustHex("#ff8a3b"), 0.1)
	require.Len(t, shapes, 3)

	out := serialize(t, shapes)
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.Equal(t, 1, strings.Count(out, "<rect"))
	assert.Contains(t, out, "rotate(15")
}

func TestGridLineSpacing(t *testing.T) {
	shapes := Generate(banner.StyleGrid, 1200, 300, palette.MustHex("#fbbf24"), 0.05)
	// 1200/50 vertical lines plus 300/50 horizontal lines.
	assert.Len(t, shapes, 24+6)
}

func TestParticlesDeterministic(t *testing.T) {
	color := palette.MustHex("#ff006e")
	first := serialize(t, Generate(banner.StyleParticles, 1200, 300, color, 0.08))
	second := serialize(t, Generate(banner.StyleParticles, 1200, 300, color, 0.08))
	assert.Equal(t, first, second)

	shapes := Generate(banner.StyleParticles, 1200, 300, color, 0.08)
	require.Len(t, shapes, 30)
	for _, s := range shapes {
		c, ok := s.(Circle)
		require.True(t, ok)
		assert.GreaterOrEqual(t, c.R, 2.0)
		assert.LessOrEqual(t, c.R, 8.0)
		assert.GreaterOrEqual(t, c.CX, 0.0)
		assert.LessOrEqual(t, c.CX, 1200.0)
	}
}

func TestUnknownStyleFallsBackToWave(t *testing.T) {
	color := palette.MustHex("#00ffff")
	wave := serialize(t, Generate(banner.StyleWave, 800, 200, color, 0.12))
	glow := serialize(t, Generate(banner.StyleGlow, 800, 200, color, 0.12))
	assert.Equal(t, wave, glow)
}

func TestDefaultOpacity(t *testing.T) {
	assert.Equal(t, 0.12, DefaultOpacity(banner.StyleWave))
	assert.Equal(t, 0.1, DefaultOpacity(banner.StyleGeometric))
	assert.Equal(t, 0.05, DefaultOpacity(banner.StyleGrid))
	assert.Equal(t, 0.08, DefaultOpacity(banner.StyleParticles))
	assert.Equal(t, 0.12, DefaultOpacity(banner.StyleGlow))
}
