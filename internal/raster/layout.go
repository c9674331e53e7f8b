package raster

import "image"

// bottomBand returns the band of bounds from frac of its height down to
// the bottom edge.
func bottomBand(bounds image.Rectangle, frac float64) image.Rectangle {
	top := bounds.Min.Y + int(float64(bounds.Dy())*frac)
	if top > bounds.Max.Y {
		top = bounds.Max.Y
	}
	return image.Rect(bounds.Min.X, top, bounds.Max.X, bounds.Max.Y)
}

// anchorBottomRight places a side×side square inside bounds, inset from
// the bottom-right corner. The square is clamped to fit.
func anchorBottomRight(bounds image.Rectangle, side, inset int) image.Rectangle {
	if side < 0 {
		side = 0
	}
	max := bounds.Dx()
	if bounds.Dy() < max {
		max = bounds.Dy()
	}
	if side > max {
		side = max
	}
	x := bounds.Max.X - inset - side
	y := bounds.Max.Y - inset - side
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	return image.Rect(x, y, x+side, y+side)
}
