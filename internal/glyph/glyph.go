// Package glyph wraps the figlet-style text renderer. The glyph grid
// itself is produced by an external collaborator; this package only
// post-processes it for terminal coloring and for stripping that
// styling when the banner is written to a file.
package glyph

import (
	"regexp"
	"strings"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/muesli/termenv"
)

// DefaultFont is the glyph font used when none is named.
const DefaultFont = "standard"

// SampleFonts is a short list for the info listing; the collaborator
// ships many more.
var SampleFonts = []string{"standard", "slant", "banner", "big", "block", "doom", "larry3d"}

// Render returns the character-grid banner for text. Unknown font names
// fall back to the collaborator's default rather than failing.
func Render(text, fontName string) string {
	if fontName == "" {
		fontName = DefaultFont
	}
	if out, ok := tryRender(text, fontName); ok {
		return out
	}
	out, _ := tryRender(text, DefaultFont)
	return out
}

// tryRender isolates the collaborator call: it panics on font names it
// does not ship rather than returning an error.
func tryRender(text, fontName string) (out string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	return figure.NewFigure(text, fontName, false).String(), true
}

// ANSI foreground codes by color name; bright variants match the
// terminal conventions the original colorizer used.
var colorCodes = map[string]string{
	"red":     "9",
	"green":   "10",
	"yellow":  "11",
	"blue":    "12",
	"magenta": "13",
	"cyan":    "14",
	"white":   "15",
}

// Colorize wraps the banner in a terminal foreground color. Unknown
// color names fall back to cyan.
func Colorize(bannerText, colorName string) string {
	code, ok := colorCodes[strings.ToLower(colorName)]
	if !ok {
		code = colorCodes["cyan"]
	}
	profile := termenv.ColorProfile()
	return termenv.String(bannerText).Foreground(profile.Color(code)).String()
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]+m`)

// StripANSI removes terminal styling so file output stays plain text.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
