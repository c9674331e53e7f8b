package raster

import (
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/bannerforge/bannerforge/internal/logging"
)

// FontResolver returns a drawable face for a target pixel size.
// It never fails; when no TrueType font can be loaded it falls back to
// the built-in bitmap face.
type FontResolver func(sizePx int) font.Face

// Platform font locations tried in order after any explicit path.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"C:\\Windows\\Fonts\\arialbd.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
}

// NewFontResolver builds a resolver that tries explicitPath first, then
// the platform candidates. The font file is parsed once; faces are cut
// per size on demand.
func NewFontResolver(explicitPath string) FontResolver {
	var once sync.Once
	var parsed *truetype.Font

	load := func() {
		logger := logging.GetLogger("raster")
		paths := fontCandidates
		if explicitPath != "" {
			paths = append([]string{explicitPath}, fontCandidates...)
		}
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			tt, err := truetype.Parse(data)
			if err != nil {
				logger.Debug().Str("path", path).Err(err).Msg("font parse failed")
				continue
			}
			logger.Debug().Str("path", path).Msg("loaded truetype font")
			parsed = tt
			return
		}
		logger.Warn().Msg("no truetype font found, using built-in bitmap face")
	}

	return func(sizePx int) font.Face {
		once.Do(load)
		if parsed == nil {
			return basicfont.Face7x13
		}
		return truetype.NewFace(parsed, &truetype.Options{
			Size:    float64(sizePx),
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
}
