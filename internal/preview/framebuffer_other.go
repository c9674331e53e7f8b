//go:build !linux

package preview

import (
	"image"

	"github.com/bannerforge/bannerforge/internal/errors"
)

// Framebuffer is only available on Linux consoles.
func Framebuffer(image.Image) error {
	return errors.New(errors.ErrMissingCapability,
		"framebuffer preview requires Linux (use the terminal preview instead)")
}
