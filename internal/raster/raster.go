// Package raster lays out and paints banner text plus a stack of visual
// effects onto an RGBA canvas. Effects run in a fixed pipeline order
// regardless of the order requested; layering, not request order, is
// what makes the output correct.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/errors"
)

const (
	shadowOffset = 4
	shadowAlpha  = 128
	glowAlpha    = 80
	stripeAlpha  = 68
	qrInset      = 16
)

// Render paints the request onto a fresh canvas. Pipeline order:
// background, gradient wash, shadow, glow, title, subtitle, stripe,
// QR badge, blur.
func Render(req banner.Request, resolve FontResolver) (image.Image, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	width, height := req.Width, req.Height
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(req.Palette.Background.WithAlpha(255)), image.Point{}, draw.Src)

	if banner.HasEffect(req.Effects, banner.EffectGradient) {
		paintGradientWash(canvas, req)
	}

	titleFace := resolve(int(float64(height) * 0.22))
	titleX, titleBaseline := centerText(titleFace, req.Text, width, int(float64(height)*0.35))

	if banner.HasEffect(req.Effects, banner.EffectShadow) {
		drawText(canvas, titleFace, req.Text, titleX+shadowOffset, titleBaseline+shadowOffset,
			color.NRGBA{A: shadowAlpha})
	}

	if banner.HasEffect(req.Effects, banner.EffectGlow) {
		// Twelve low-opacity passes around the final position simulate an
		// additive halo sitting behind the crisp draw.
		glow := req.Palette.Accent.WithAlpha(glowAlpha)
		for off := 3; off >= 1; off-- {
			drawText(canvas, titleFace, req.Text, titleX-off, titleBaseline, glow)
			drawText(canvas, titleFace, req.Text, titleX+off, titleBaseline, glow)
			drawText(canvas, titleFace, req.Text, titleX, titleBaseline-off, glow)
			drawText(canvas, titleFace, req.Text, titleX, titleBaseline+off, glow)
		}
	}

	drawText(canvas, titleFace, req.Text, titleX, titleBaseline, req.Palette.Text.WithAlpha(255))

	if req.Subtitle != "" {
		subFace := resolve(int(float64(height) * 0.07))
		subX, subBaseline := centerText(subFace, req.Subtitle, width, int(float64(height)*0.75))
		drawText(canvas, subFace, req.Subtitle, subX, subBaseline, req.Palette.Muted.WithAlpha(255))
	}

	if banner.HasEffect(req.Effects, banner.EffectStripe) {
		band := bottomBand(canvas.Bounds(), 0.85)
		draw.Draw(canvas, band, image.NewUniform(req.Palette.Accent.WithAlpha(stripeAlpha)), image.Point{}, draw.Over)
	}

	var out image.Image = canvas

	if req.QR != "" {
		pasted, err := pasteQRBadge(out, req.QR, height)
		if err != nil {
			return nil, err
		}
		out = pasted
	}

	if banner.HasEffect(req.Effects, banner.EffectBlur) {
		out = imaging.Blur(out, 1.0)
	}

	return out, nil
}

// EncodePNG serializes the composed image. Nothing is written until the
// whole document encodes cleanly.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, errors.ErrIOFailure, "encode png")
	}
	return buf.Bytes(), nil
}

// paintGradientWash fades the accent color over the canvas, alpha
// dropping linearly from ~50 at the top to 0 at the bottom.
func paintGradientWash(canvas *image.RGBA, req banner.Request) {
	bounds := canvas.Bounds()
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		alpha := uint8(50 * (1 - float64(y)/float64(height)))
		if alpha == 0 {
			continue
		}
		row := image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+1)
		draw.Draw(canvas, row, image.NewUniform(req.Palette.Accent.WithAlpha(alpha)), image.Point{}, draw.Over)
	}
}

// centerText measures text and returns the x position and baseline that
// center it horizontally with its vertical midpoint at anchorY.
func centerText(face font.Face, text string, width, anchorY int) (x, baseline int) {
	bounds, _ := font.BoundString(face, text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x = (width - textWidth) / 2
	top := anchorY - textHeight/2
	baseline = top + (-bounds.Min.Y).Ceil()
	return x, baseline
}

func drawText(dst *image.RGBA, face font.Face, text string, x, baseline int, fg color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

// pasteQRBadge renders payload as a QR code and pastes it into the
// bottom-right corner, sized to 0.3 of the canvas height.
func pasteQRBadge(img image.Image, payload string, height int) (image.Image, error) {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "qr payload")
	}
	side := int(float64(height) * 0.3)
	if side < 32 {
		side = 32
	}
	rect := anchorBottomRight(img.Bounds(), side, qrInset)
	badge := imaging.Resize(code.Image(side), rect.Dx(), rect.Dy(), imaging.NearestNeighbor)
	return imaging.Paste(img, badge, rect.Min), nil
}
