// Package svg assembles vector banner documents. Output is
// self-contained markup: fonts are referenced by family-name list with
// graceful fallback, never embedded, and no external resources appear.
package svg

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/bannerforge/bannerforge/internal/accent"
	"github.com/bannerforge/bannerforge/internal/banner"
)

const (
	titleFontFamily    = "Orbitron,Inter,Arial"
	subtitleFontFamily = "Inter,Arial,Helvetica"
)

// Compose builds the complete vector document for a request.
// Element order is fixed: gradient defs, optional glow filter,
// background, accent geometry, title, optional subtitle.
func Compose(req banner.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("svg")
	root.CreateAttr("width", strconv.Itoa(req.Width))
	root.CreateAttr("height", strconv.Itoa(req.Height))
	root.CreateAttr("viewBox", "0 0 "+strconv.Itoa(req.Width)+" "+strconv.Itoa(req.Height))
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	if !req.Animated {
		root.CreateAttr("role", "img")
		root.CreateAttr("aria-label", req.Text)
	}

	defs := root.CreateElement("defs")
	gradID := writeGradient(defs, req)
	if !req.Animated {
		writeGlowFilter(defs)
	}

	bg := root.CreateElement("rect")
	bg.CreateAttr("width", "100%")
	bg.CreateAttr("height", "100%")
	bg.CreateAttr("fill", req.Palette.Background.Hex())

	shapes := accent.Generate(req.Style, req.Width, req.Height, req.Palette.Accent, accent.DefaultOpacity(req.Style))
	for _, s := range shapes {
		s.AppendTo(root)
	}

	writeTitle(root, req, gradID)
	writeSubtitle(root, req)

	doc.Indent(2)
	return doc.WriteToString()
}

// writeGradient emits the linear gradient definition and returns its id.
// The static gradient runs diagonally; the animated one cycles its stops
// between the start and end colors on a 3-second loop.
func writeGradient(defs *etree.Element, req banner.Request) string {
	start := req.Palette.GradientStart.Hex()
	end := req.Palette.GradientEnd.Hex()

	if req.Animated {
		grad := defs.CreateElement("linearGradient")
		grad.CreateAttr("id", "animGrad")
		grad.CreateAttr("x1", "0%")
		grad.CreateAttr("y1", "0%")
		grad.CreateAttr("x2", "100%")
		grad.CreateAttr("y2", "0%")
		s0 := grad.CreateElement("stop")
		s0.CreateAttr("offset", "0%")
		s0.CreateAttr("style", "stop-color:"+start)
		animateStop(s0, start+";"+end+";"+start)
		s1 := grad.CreateElement("stop")
		s1.CreateAttr("offset", "100%")
		s1.CreateAttr("style", "stop-color:"+end)
		animateStop(s1, end+";"+start+";"+end)
		return "animGrad"
	}

	grad := defs.CreateElement("linearGradient")
	grad.CreateAttr("id", "grad1")
	grad.CreateAttr("x1", "0%")
	grad.CreateAttr("y1", "0%")
	grad.CreateAttr("x2", "100%")
	grad.CreateAttr("y2", "100%")
	s0 := grad.CreateElement("stop")
	s0.CreateAttr("offset", "0%")
	s0.CreateAttr("style", "stop-color:"+start+";stop-opacity:1")
	s1 := grad.CreateElement("stop")
	s1.CreateAttr("offset", "100%")
	s1.CreateAttr("style", "stop-color:"+end+";stop-opacity:1")
	return "grad1"
}

func animateStop(stop *etree.Element, values string) {
	a := stop.CreateElement("animate")
	a.CreateAttr("attributeName", "stop-color")
	a.CreateAttr("values", values)
	a.CreateAttr("dur", "3s")
	a.CreateAttr("repeatCount", "indefinite")
}

func writeGlowFilter(defs *etree.Element) {
	filter := defs.CreateElement("filter")
	filter.CreateAttr("id", "glow")
	blur := filter.CreateElement("feGaussianBlur")
	blur.CreateAttr("stdDeviation", "2")
	blur.CreateAttr("result", "coloredBlur")
	merge := filter.CreateElement("feMerge")
	merge.CreateElement("feMergeNode").CreateAttr("in", "coloredBlur")
	merge.CreateElement("feMergeNode").CreateAttr("in", "SourceGraphic")
}

func writeTitle(root *etree.Element, req banner.Request, gradID string) {
	title := root.CreateElement("text")
	title.CreateAttr("x", strconv.Itoa(req.Width/2))
	title.CreateAttr("y", strconv.Itoa(int(float64(req.Height)*0.55)))
	title.CreateAttr("font-family", titleFontFamily)
	title.CreateAttr("font-size", strconv.Itoa(int(float64(req.Height)*0.2)))
	title.CreateAttr("font-weight", "700")
	if req.Animated {
		title.CreateAttr("fill", "url(#"+gradID+")")
	} else {
		title.CreateAttr("fill", req.Palette.Text.Hex())
	}
	title.CreateAttr("text-anchor", "middle")
	if !req.Animated && req.Style == banner.StyleGlow {
		title.CreateAttr("filter", "url(#glow)")
	}
	title.SetText(req.Text)
	if req.Animated {
		pulse := title.CreateElement("animate")
		pulse.CreateAttr("attributeName", "opacity")
		pulse.CreateAttr("values", "0.8;1;0.8")
		pulse.CreateAttr("dur", "2s")
		pulse.CreateAttr("repeatCount", "indefinite")
	}
}

func writeSubtitle(root *etree.Element, req banner.Request) {
	if req.Subtitle == "" {
		return
	}
	sub := root.CreateElement("text")
	sub.CreateAttr("x", strconv.Itoa(req.Width/2))
	sub.CreateAttr("y", strconv.Itoa(int(float64(req.Height)*0.78)))
	sub.CreateAttr("font-family", subtitleFontFamily)
	sub.CreateAttr("font-size", strconv.Itoa(int(float64(req.Height)*0.075)))
	sub.CreateAttr("fill", req.Palette.Muted.Hex())
	sub.CreateAttr("text-anchor", "middle")
	sub.SetText(req.Subtitle)
}
