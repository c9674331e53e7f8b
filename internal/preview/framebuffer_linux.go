//go:build linux

package preview

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"

	"github.com/bannerforge/bannerforge/internal/errors"
)

// Framebuffer blits img to /dev/fb0, scaling with nearest-neighbor
// sampling to fill the device.
func Framebuffer(img image.Image) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return errors.Wrap(err, errors.ErrMissingCapability,
			"open framebuffer (run on a Linux console with access to /dev/fb0)")
	}
	defer dev.Close()

	src := img.Bounds()
	dst := dev.Bounds()
	for y := 0; y < dst.Dy(); y++ {
		sy := src.Min.Y + y*src.Dy()/dst.Dy()
		for x := 0; x < dst.Dx(); x++ {
			sx := src.Min.X + x*src.Dx()/dst.Dx()
			r, g, b, _ := img.At(sx, sy).RGBA()
			dev.Set(dst.Min.X+x, dst.Min.Y+y, color.RGBA{
				R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF,
			})
		}
	}
	return nil
}
