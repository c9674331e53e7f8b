package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/errors"
	"github.com/bannerforge/bannerforge/internal/palette"
)

func testRequest(text string) banner.Request {
	req := banner.New(text)
	req.Width = 400
	req.Height = 100
	req.Palette = palette.Resolve("stealth")
	return req
}

func TestRenderFillsBackground(t *testing.T) {
	req := testRequest("Test")
	img, err := Render(req, NewFontResolver(""))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 100, bounds.Dy())

	// Corners untouched by text keep the background color.
	bg := req.Palette.Background.WithAlpha(255)
	r, g, b, _ := img.At(bounds.Max.X-2, bounds.Max.Y-2).RGBA()
	assert.Equal(t, uint32(bg.R)<<8|uint32(bg.R), r)
	assert.Equal(t, uint32(bg.G)<<8|uint32(bg.G), g)
	assert.Equal(t, uint32(bg.B)<<8|uint32(bg.B), b)
}

func TestRenderEffectOrderIndependence(t *testing.T) {
	resolve := NewFontResolver("")

	first := testRequest("Order")
	first.Effects = banner.ParseEffects([]string{"glow", "shadow"})
	second := testRequest("Order")
	second.Effects = banner.ParseEffects([]string{"shadow", "glow"})

	a, err := Render(first, resolve)
	require.NoError(t, err)
	b, err := Render(second, resolve)
	require.NoError(t, err)

	pngA, err := EncodePNG(a)
	require.NoError(t, err)
	pngB, err := EncodePNG(b)
	require.NoError(t, err)
	assert.Equal(t, pngA, pngB, "pipeline order is fixed regardless of request order")
}

func TestGradientWashFadesTopToBottom(t *testing.T) {
	req := testRequest("Grad")
	req.Effects = []banner.Effect{banner.EffectGradient}
	img, err := Render(req, NewFontResolver(""))
	require.NoError(t, err)

	plain, err := Render(testRequest("Grad"), NewFontResolver(""))
	require.NoError(t, err)

	// Washed at the top edge, untouched at the bottom edge.
	assert.NotEqual(t, plain.At(2, 1), img.At(2, 1))
	assert.Equal(t, plain.At(2, 99), img.At(2, 99))
}

func TestStripeCoversBottomBand(t *testing.T) {
	req := testRequest("Stripe")
	req.Effects = []banner.Effect{banner.EffectStripe}
	img, err := Render(req, NewFontResolver(""))
	require.NoError(t, err)

	plain, err := Render(testRequest("Stripe"), NewFontResolver(""))
	require.NoError(t, err)

	// 0.85·height = 85; below is tinted, above is not.
	assert.NotEqual(t, plain.At(2, 95), img.At(2, 95))
	assert.Equal(t, plain.At(2, 60), img.At(2, 60))
}

func TestStripeTintsTowardAccent(t *testing.T) {
	req := testRequest("Stripe")
	req.Effects = []banner.Effect{banner.EffectStripe}
	img, err := Render(req, NewFontResolver(""))
	require.NoError(t, err)

	// Cyan accent at alpha 68 over the stealth background lifts green
	// and blue; a premultiplied-alpha mixup would wrap them toward black.
	_, g, b, _ := img.At(2, 95).RGBA()
	bg := req.Palette.Background
	assert.Equal(t, uint8(79), uint8(g>>8))
	assert.Equal(t, uint8(82), uint8(b>>8))
	assert.Greater(t, uint8(g>>8), bg.G)
	assert.Greater(t, uint8(b>>8), bg.B)
}

func TestBlurKeepsGeometry(t *testing.T) {
	req := testRequest("Blur")
	req.Effects = []banner.Effect{banner.EffectBlur}
	img, err := Render(req, NewFontResolver(""))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 100), image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
}

func TestSubtitleOnlyWhenPresent(t *testing.T) {
	resolve := NewFontResolver("")

	with := testRequest("Title")
	with.Subtitle = "Sub"
	without := testRequest("Title")

	a, err := Render(with, resolve)
	require.NoError(t, err)
	b, err := Render(without, resolve)
	require.NoError(t, err)

	pngA, err := EncodePNG(a)
	require.NoError(t, err)
	pngB, err := EncodePNG(b)
	require.NoError(t, err)
	assert.NotEqual(t, pngA, pngB)
}

func TestQRBadgePastedBottomRight(t *testing.T) {
	req := testRequest("QR")
	req.QR = "https://example.com"
	img, err := Render(req, NewFontResolver(""))
	require.NoError(t, err)

	plain, err := Render(testRequest("QR"), NewFontResolver(""))
	require.NoError(t, err)

	// The badge square sits inset from the bottom-right corner.
	badge := anchorBottomRight(img.Bounds(), 32, qrInset)
	center := badge.Min.Add(image.Pt(badge.Dx()/2, badge.Dy()/2))
	assert.NotEqual(t, plain.At(center.X, center.Y), img.At(center.X, center.Y))
}

func TestRenderRejectsInvalidGeometry(t *testing.T) {
	req := testRequest("Bad")
	req.Width = 0
	_, err := Render(req, NewFontResolver(""))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))

	huge := testRequest("Huge")
	huge.Width = 10000
	huge.Height = 10000
	_, err = Render(huge, NewFontResolver(""))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))
}

func TestFontResolverNeverFails(t *testing.T) {
	resolve := NewFontResolver("/no/such/font.ttf")
	face := resolve(24)
	require.NotNil(t, face)
}
