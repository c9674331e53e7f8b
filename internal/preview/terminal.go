// Package preview displays a rendered banner before anything is written:
// half-block cells in the terminal, or a direct framebuffer blit on
// Linux consoles.
package preview

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const maxPreviewCols = 120

// Terminal prints img scaled to the terminal width using "▀" cells,
// two pixel rows per text row.
func Terminal(img image.Image, w io.Writer) error {
	cols := 80
	if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
		cols = tw
	}
	if cols > maxPreviewCols {
		cols = maxPreviewCols
	}

	bounds := img.Bounds()
	rows := cols * bounds.Dy() / bounds.Dx() / 2
	if rows < 1 {
		rows = 1
	}
	scaled := imaging.Resize(img, cols, rows*2, imaging.Box)

	profile := termenv.ColorProfile()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := termenv.String("▀").
				Foreground(profile.FromColor(scaled.At(x, 2*y))).
				Background(profile.FromColor(scaled.At(x, 2*y+1)))
			fmt.Fprint(w, cell.String())
		}
		fmt.Fprintln(w)
	}
	return nil
}
