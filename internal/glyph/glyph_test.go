package glyph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProducesGrid(t *testing.T) {
	art := Render("Hi", DefaultFont)
	assert.NotEmpty(t, art)
	assert.Greater(t, len(strings.Split(art, "\n")), 1)
}

func TestRenderUnknownFontFallsBack(t *testing.T) {
	got := Render("Hi", "definitely-not-a-font")
	assert.NotEmpty(t, got)
	assert.Equal(t, Render("Hi", DefaultFont), got)
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[96mBANNER\x1b[0m plain \x1b[38;2;255;0;0mred\x1b[0m"
	assert.Equal(t, "BANNER plain red", StripANSI(styled))
}

func TestColorizeKeepsText(t *testing.T) {
	art := Render("Go", DefaultFont)
	colored := Colorize(art, "magenta")
	assert.Equal(t, StripANSI(art), StripANSI(colored))

	// Unknown colors fall back rather than failing.
	assert.Equal(t, StripANSI(art), StripANSI(Colorize(art, "chartreuse")))
}
