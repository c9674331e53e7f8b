// Package accent produces the decorative background geometry that
// distinguishes each visual style. Generation is a pure function of its
// inputs; the particles style uses a seeded generator scoped to a single
// call so output is bit-reproducible regardless of call order.
package accent

import (
	"math/rand"
	"strconv"

	"github.com/beevik/etree"
	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/palette"
)

// particleSeed keeps the particles accent identical across runs and
// platforms; golden-file tests depend on it.
const particleSeed = 42

// Default opacities per style, matching the tuned originals.
func DefaultOpacity(style banner.Style) float64 {
	switch style {
	case banner.StyleGeometric:
		return 0.1
	case banner.StyleGrid:
		return 0.05
	case banner.StyleParticles:
		return 0.08
	default:
		return 0.12
	}
}

// Shape is a single drawable primitive of an accent.
type Shape interface {
	// AppendTo adds the shape to an SVG parent element.
	AppendTo(parent *etree.Element)
}

// Path is a filled cubic curve outline.
type Path struct {
	D       string
	Fill    palette.RGB
	Opacity float64
}

func (p Path) AppendTo(parent *etree.Element) {
	el := parent.CreateElement("path")
	el.CreateAttr("d", p.D)
	el.CreateAttr("fill", p.Fill.Hex())
	el.CreateAttr("opacity", num(p.Opacity))
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R float64
	Fill      palette.RGB
	Opacity   float64
}

func (c Circle) AppendTo(parent *etree.Element) {
	el := parent.CreateElement("circle")
	el.CreateAttr("cx", num(c.CX))
	el.CreateAttr("cy", num(c.CY))
	el.CreateAttr("r", num(c.R))
	el.CreateAttr("fill", c.Fill.Hex())
	el.CreateAttr("opacity", num(c.Opacity))
}

// Rect is a filled, optionally rotated rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       palette.RGB
	Opacity    float64
	// Rotation in degrees about (RotX, RotY); zero means no transform.
	Rotation   float64
	RotX, RotY float64
}

func (r Rect) AppendTo(parent *etree.Element) {
	el := parent.CreateElement("rect")
	el.CreateAttr("x", num(r.X))
	el.CreateAttr("y", num(r.Y))
	el.CreateAttr("width", num(r.W))
	el.CreateAttr("height", num(r.H))
	el.CreateAttr("fill", r.Fill.Hex())
	el.CreateAttr("opacity", num(r.Opacity))
	if r.Rotation != 0 {
		el.CreateAttr("transform",
			"rotate("+num(r.Rotation)+" "+num(r.RotX)+" "+num(r.RotY)+")")
	}
}

// Line is a stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         palette.RGB
	Opacity        float64
}

func (l Line) AppendTo(parent *etree.Element) {
	el := parent.CreateElement("line")
	el.CreateAttr("x1", num(l.X1))
	el.CreateAttr("y1", num(l.Y1))
	el.CreateAttr("x2", num(l.X2))
	el.CreateAttr("y2", num(l.Y2))
	el.CreateAttr("stroke", l.Stroke.Hex())
	el.CreateAttr("opacity", num(l.Opacity))
}

// Generate returns the accent shapes for a style scaled to width×height.
// Unknown styles (including glow, which decorates the text instead)
// produce the wave accent.
func Generate(style banner.Style, width, height int, color palette.RGB, opacity float64) []Shape {
	w := float64(width)
	h := float64(height)
	switch style {
	case banner.StyleGeometric:
		return []Shape{
			Circle{CX: w * 0.15, CY: h * 0.2, R: h * 0.15, Fill: color, Opacity: opacity},
			Circle{CX: w * 0.85, CY: h * 0.8, R: h * 0.2, Fill: color, Opacity: opacity * 0.7},
			Rect{
				X: w * 0.7, Y: h * 0.1, W: w * 0.2, H: h * 0.15,
				Fill: color, Opacity: opacity * 0.5,
				Rotation: 15, RotX: w * 0.8, RotY: h * 0.175,
			},
		}
	case banner.StyleGrid:
		var shapes []Shape
		const spacing = 50
		for x := 0; x < width; x += spacing {
			shapes = append(shapes, Line{X1: float64(x), Y1: 0, X2: float64(x), Y2: h, Stroke: color, Opacity: opacity})
		}
		for y := 0; y < height; y += spacing {
			shapes = append(shapes, Line{X1: 0, Y1: float64(y), X2: w, Y2: float64(y), Stroke: color, Opacity: opacity})
		}
		return shapes
	case banner.StyleParticles:
		rng := rand.New(rand.NewSource(particleSeed))
		shapes := make([]Shape, 0, 30)
		for i := 0; i < 30; i++ {
			x := rng.Intn(width + 1)
			y := rng.Intn(height + 1)
			r := rng.Intn(7) + 2
			shapes = append(shapes, Circle{
				CX: float64(x), CY: float64(y), R: float64(r),
				Fill: color, Opacity: opacity,
			})
		}
		return shapes
	default:
		// One translucent wave silhouette closed to the canvas bottom.
		d := "M0 " + num(h*0.65) +
			" C " + num(w*0.25) + " " + num(h*0.4) +
			", " + num(w*0.75) + " " + num(h*0.9) +
			", " + num(w) + " " + num(h*0.6) +
			" L " + num(w) + " " + num(h) +
			" L 0 " + num(h) + " Z"
		return []Shape{Path{D: d, Fill: color, Opacity: opacity}}
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
