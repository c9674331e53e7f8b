// Package cli wires the command tree. Commands stay thin: they parse
// flags into a normalized request and hand off to the render pipelines.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/logging"
	"github.com/bannerforge/bannerforge/internal/palette"
	"github.com/bannerforge/bannerforge/internal/render"
	"github.com/bannerforge/bannerforge/internal/suggest"
	"github.com/bannerforge/bannerforge/internal/template"
	"github.com/bannerforge/bannerforge/internal/version"
)

// DefaultPaletteStore is where the palette command saves custom palettes.
const DefaultPaletteStore = "custom_palettes.json"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		paletteFile string
	)

	rootCmd := &cobra.Command{
		Use:   "bannerforge",
		Short: "Banner creator (ASCII + SVG + PNG)",
		Long: `bannerforge renders short strings of text into stylized banners in
three interchangeable forms: figlet-style glyph art, vector SVG, and
raster PNG, all driven by a shared palette and style configuration.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&paletteFile, "palette-file", "", "Load custom palettes from this JSON store")

	registry := func() *palette.Registry { return loadRegistry(paletteFile) }

	rootCmd.AddCommand(newASCIICmd())
	rootCmd.AddCommand(newSVGCmd(registry))
	rootCmd.AddCommand(newPNGCmd(registry))
	rootCmd.AddCommand(newComboCmd(registry))
	rootCmd.AddCommand(newQuickCmd(registry))
	rootCmd.AddCommand(newBatchCmd(registry))
	rootCmd.AddCommand(newPreviewCmd(registry))
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newExampleCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadRegistry layers a custom palette store, when given, over the
// built-in registry.
func loadRegistry(paletteFile string) *palette.Registry {
	if paletteFile == "" {
		return palette.Builtin
	}
	store, err := palette.LoadStore(paletteFile)
	if err != nil {
		log.Warn().Err(err).Str("path", paletteFile).Msg("ignoring unreadable palette store")
		return palette.Builtin
	}
	return palette.Builtin.With(store)
}

// resolveConfig layers explicit flag values over template defaults.
// Only flags the user actually set count as explicit.
func resolveConfig(cmd *cobra.Command, templateName, styleFlag, paletteFlag string, effectFlags []string) template.Template {
	var o template.Overrides
	if f := cmd.Flags().Lookup("style"); f != nil && f.Changed {
		o.Style = styleFlag
	}
	if f := cmd.Flags().Lookup("palette"); f != nil && f.Changed {
		o.Palette = paletteFlag
	}
	if f := cmd.Flags().Lookup("effects"); f != nil && f.Changed {
		o.Effects = effectFlags
	}
	return template.Resolve(templateName, o)
}

// maybeSuggestSubtitle fills in a tagline when --ai is set and no
// subtitle was given.
func maybeSuggestSubtitle(cmd *cobra.Command, ai bool, text, subtitle string) string {
	if !ai || subtitle != "" {
		return subtitle
	}
	ideas := suggest.Taglines(text, 1)
	if len(ideas) == 0 {
		return subtitle
	}
	fmt.Fprintf(cmd.OutOrStdout(), "AI suggestion: %s\n", ideas[0])
	return ideas[0]
}

func defaultOutPath(text, ext string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("banner_%s_%s.%s", banner.SafeName(text), timestamp, ext)
}

func writeArtifact(cmd *cobra.Command, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}

func newASCIICmd() *cobra.Command {
	var (
		fontName  string
		colorName string
		colorize  bool
		out       string
		listFonts bool
	)
	cmd := &cobra.Command{
		Use:   "ascii <text>",
		Short: "Generate an ASCII art banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listFonts {
				fmt.Fprintln(cmd.OutOrStdout(), "Sample fonts:")
				for _, f := range glyph.SampleFonts {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", f)
				}
				return nil
			}
			art := glyph.Render(args[0], fontName)
			if out != "" {
				return writeArtifact(cmd, out, []byte(glyph.StripANSI(art)))
			}
			if colorize {
				art = glyph.Colorize(art, colorName)
			}
			fmt.Fprintln(cmd.OutOrStdout(), art)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fontName, "font", "f", glyph.DefaultFont, "glyph font name")
	cmd.Flags().StringVarP(&colorName, "color", "c", "cyan", "ANSI color (red, green, blue, ...)")
	cmd.Flags().BoolVar(&colorize, "colorize", false, "apply color to terminal output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to stdout)")
	cmd.Flags().BoolVar(&listFonts, "list-fonts", false, "list sample fonts")
	return cmd
}

func newSVGCmd(registry func() *palette.Registry) *cobra.Command {
	var (
		subtitle     string
		width        int
		height       int
		paletteName  string
		styleName    string
		animated     bool
		templateName string
		out          string
		ai           bool
	)
	cmd := &cobra.Command{
		Use:   "svg <text>",
		Short: "Generate an SVG vector banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(cmd, templateName, styleName, paletteName, nil)
			req := banner.New(args[0])
			req.Subtitle = maybeSuggestSubtitle(cmd, ai, args[0], subtitle)
			req.Width = width
			req.Height = height
			req.Palette = registry().Resolve(cfg.Palette)
			req.Style = cfg.Style
			req.Animated = animated

			data, err := render.Render(req, render.FormatVector)
			if err != nil {
				return err
			}
			if out == "" {
				out = defaultOutPath(args[0], "svg")
			}
			return writeArtifact(cmd, out, data)
		},
	}
	cmd.Flags().StringVarP(&subtitle, "subtitle", "s", "", "subtitle text")
	cmd.Flags().IntVarP(&width, "width", "W", banner.DefaultWidth, "banner width")
	cmd.Flags().IntVarP(&height, "height", "H", banner.DefaultHeight, "banner height")
	cmd.Flags().StringVarP(&paletteName, "palette", "p", palette.DefaultName, "color palette")
	cmd.Flags().StringVar(&styleName, "style", string(banner.StyleWave), "accent style (wave, geometric, grid, particles, glow)")
	cmd.Flags().BoolVar(&animated, "animated", false, "add SVG animations")
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "use a predefined template")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output SVG path")
	cmd.Flags().BoolVar(&ai, "ai", false, "suggest a subtitle when none is given")
	return cmd
}

func newPNGCmd(registry func() *palette.Registry) *cobra.Command {
	var (
		subtitle     string
		width        int
		height       int
		paletteName  string
		effects      []string
		templateName string
		out          string
		fontPath     string
		qr           string
		ai           bool
	)
	cmd := &cobra.Command{
		Use:   "png <text>",
		Short: "Generate a PNG raster banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(cmd, templateName, "", paletteName, effects)
			req := banner.New(args[0])
			req.Subtitle = maybeSuggestSubtitle(cmd, ai, args[0], subtitle)
			req.Width = width
			req.Height = height
			req.Palette = registry().Resolve(cfg.Palette)
			req.Effects = cfg.Effects
			req.FontPath = fontPath
			req.QR = qr

			data, err := render.Render(req, render.FormatRaster)
			if err != nil {
				return err
			}
			if out == "" {
				out = defaultOutPath(args[0], "png")
			}
			return writeArtifact(cmd, out, data)
		},
	}
	cmd.Flags().StringVarP(&subtitle, "subtitle", "s", "", "subtitle text")
	cmd.Flags().IntVarP(&width, "width", "W", banner.DefaultWidth, "image width")
	cmd.Flags().IntVarP(&height, "height", "H", banner.DefaultHeight, "image height")
	cmd.Flags().StringVarP(&paletteName, "palette", "p", palette.DefaultName, "color palette")
	cmd.Flags().StringArrayVarP(&effects, "effects", "e", nil, "visual effects (shadow, glow, gradient, stripe, blur)")
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "use a predefined template")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path")
	cmd.Flags().StringVar(&fontPath, "font", "", "path to a .ttf file")
	cmd.Flags().StringVar(&qr, "qr", "", "add a QR badge encoding this payload")
	cmd.Flags().BoolVar(&ai, "ai", false, "suggest a subtitle when none is given")
	return cmd
}

func newComboCmd(registry func() *palette.Registry) *cobra.Command {
	var (
		subtitle     string
		prefix       string
		templateName string
		ai           bool
	)
	cmd := &cobra.Command{
		Use:   "combo <text>",
		Short: "Generate all formats (ASCII + SVG + PNG)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := prefix
			if folder == "" {
				folder = "banners_" + time.Now().UTC().Format("20060102_150405")
			}
			cfg := resolveConfig(cmd, templateName, "", "", nil)
			req := banner.New(args[0])
			req.Subtitle = maybeSuggestSubtitle(cmd, ai, args[0], subtitle)
			req.Palette = registry().Resolve(cfg.Palette)
			req.Style = cfg.Style
			req.Effects = cfg.Effects

			artifacts, err := render.RenderAll(req)
			if err != nil {
				return err
			}
			name := banner.SafeName(args[0])
			for _, f := range render.Formats {
				path := filepath.Join(folder, name+"."+render.Ext(f))
				if err := writeArtifact(cmd, path, artifacts[f]); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated combo in: %s\n", folder)
			return nil
		},
	}
	cmd.Flags().StringVarP(&subtitle, "subtitle", "s", "", "subtitle for SVG/PNG")
	cmd.Flags().StringVarP(&prefix, "prefix", "P", "", "output folder name")
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "use a predefined template")
	cmd.Flags().BoolVar(&ai, "ai", false, "suggest a subtitle when none is given")
	return cmd
}

func newQuickCmd(registry func() *palette.Registry) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "quick <text>",
		Short: "Quick banner generation with defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			name := banner.SafeName(text)

			if kind == "ascii" || kind == "all" {
				art := glyph.Render(text, glyph.DefaultFont)
				fmt.Fprintln(cmd.OutOrStdout(), glyph.Colorize(art, "cyan"))
				if kind == "all" {
					if err := writeArtifact(cmd, name+"_quick.txt", []byte(glyph.StripANSI(art))); err != nil {
						return err
					}
				}
			}
			if kind == "svg" || kind == "all" {
				req := banner.New(text)
				req.Palette = registry().Resolve(palette.DefaultName)
				data, err := render.Render(req, render.FormatVector)
				if err != nil {
					return err
				}
				if err := writeArtifact(cmd, name+"_quick.svg", data); err != nil {
					return err
				}
			}
			if kind == "png" || kind == "all" {
				req := banner.New(text)
				req.Palette = registry().Resolve(palette.DefaultName)
				req.Effects = []banner.Effect{banner.EffectShadow}
				data, err := render.Render(req, render.FormatRaster)
				if err != nil {
					return err
				}
				if err := writeArtifact(cmd, name+"_quick.png", data); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", "svg", "output type (ascii, svg, png, all)")
	return cmd
}
