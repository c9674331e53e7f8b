package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/batch"
	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/palette"
	"github.com/bannerforge/bannerforge/internal/preview"
	"github.com/bannerforge/bannerforge/internal/raster"
	"github.com/bannerforge/bannerforge/internal/suggest"
	"github.com/bannerforge/bannerforge/internal/template"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Width(14)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 2)
)

func newBatchCmd(registry func() *palette.Registry) *cobra.Command {
	var (
		outDir  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch <spec-file>",
		Short: "Batch generate banners from a JSON/YAML spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			summary, err := batch.Process(records, outDir, registry(), workers)
			if err != nil {
				return err
			}
			written := summary.Written()
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s\n", path)
			}
			for _, failure := range summary.Failures() {
				fmt.Fprintf(cmd.OutOrStdout(), "  ✗ record %d (%q): %v\n", failure.Index+1, failure.Text, failure.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nBatch complete: %d of %d banners in %s\n", len(written), len(records), outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "outdir", "o", "batch_banners", "output directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (0 = auto)")
	return cmd
}

func newPreviewCmd(registry func() *palette.Registry) *cobra.Command {
	var (
		fontName    string
		colorName   string
		raw         bool
		rasterMode  bool
		framebuffer bool
		paletteName string
	)
	cmd := &cobra.Command{
		Use:   "preview <text>",
		Short: "Preview a banner in the terminal before generating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rasterMode || framebuffer {
				req := banner.New(args[0])
				req.Palette = registry().Resolve(paletteName)
				img, err := raster.Render(req, raster.NewFontResolver(""))
				if err != nil {
					return err
				}
				if framebuffer {
					return preview.Framebuffer(img)
				}
				return preview.Terminal(img, cmd.OutOrStdout())
			}

			art := glyph.Render(args[0], fontName)
			colored := glyph.Colorize(art, colorName)
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), colored)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), panelStyle.Render(colored))
			return nil
		},
	}
	cmd.Flags().StringVarP(&fontName, "font", "f", glyph.DefaultFont, "glyph font")
	cmd.Flags().StringVarP(&colorName, "color", "c", "cyan", "preview color")
	cmd.Flags().BoolVar(&raw, "raw", false, "skip the panel frame")
	cmd.Flags().BoolVar(&rasterMode, "raster", false, "preview the raster banner with half-block cells")
	cmd.Flags().BoolVar(&framebuffer, "framebuffer", false, "blit the raster banner to /dev/fb0 (Linux)")
	cmd.Flags().StringVarP(&paletteName, "palette", "p", palette.DefaultName, "palette for raster preview")
	return cmd
}

func newPaletteCmd() *cobra.Command {
	var (
		name   string
		bg     string
		accent string
		text   string
		muted  string
		save   bool
		store  string
	)
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Create a custom color palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.MergeCustom(bg, accent, text, muted)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Created palette %q:\n", name)
			fmt.Fprintf(cmd.OutOrStdout(), "  %-15s: %s\n", "bg", p.Background.Hex())
			fmt.Fprintf(cmd.OutOrStdout(), "  %-15s: %s\n", "accent", p.Accent.Hex())
			fmt.Fprintf(cmd.OutOrStdout(), "  %-15s: %s\n", "text", p.Text.Hex())
			fmt.Fprintf(cmd.OutOrStdout(), "  %-15s: %s\n", "muted", p.Muted.Hex())
			fmt.Fprintf(cmd.OutOrStdout(), "  %-15s: %s\n", "gradient_start", p.GradientStart.Hex())
			fmt.Fprintf(cmd.OutOrStdout(), "  %-15s: %s\n", "gradient_end", p.GradientEnd.Hex())

			if !save {
				return nil
			}
			existing, err := palette.LoadStore(store)
			if err != nil {
				return err
			}
			existing.Merge(name, p)
			if err := existing.Save(store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Saved to %s\n", store)
			fmt.Fprintf(cmd.OutOrStdout(), "  Load with: --palette-file %s\n", store)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "palette name")
	cmd.Flags().StringVar(&bg, "bg", "", "background color (hex)")
	cmd.Flags().StringVar(&accent, "accent", "", "accent color (hex)")
	cmd.Flags().StringVar(&text, "text", "", "text color (hex)")
	cmd.Flags().StringVar(&muted, "muted", "", "muted color (hex)")
	cmd.Flags().BoolVar(&save, "save", false, "save to the palette store")
	cmd.Flags().StringVar(&store, "store", DefaultPaletteStore, "palette store path")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("bg")
	_ = cmd.MarkFlagRequired("accent")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("muted")
	return cmd
}

func newSuggestCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "suggest <text>",
		Short: "Suggest taglines for a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, idea := range suggest.Taglines(args[0], count) {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", idea)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of suggestions")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List available palettes, templates, fonts, and effects",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, headingStyle.Render("Palettes"))
			for _, name := range palette.Builtin.Names() {
				p := palette.Resolve(name)
				fmt.Fprintf(out, "  %s%s\n", nameStyle.Render(name),
					mutedStyle.Render("bg:"+p.Background.Hex()+" accent:"+p.Accent.Hex()))
			}

			fmt.Fprintln(out, headingStyle.Render("\nTemplates"))
			for _, name := range template.Names() {
				t, _ := template.Lookup(name)
				fmt.Fprintf(out, "  %s%s\n", nameStyle.Render(name),
					mutedStyle.Render(t.Palette+" palette, "+string(t.Style)+" style"))
			}

			fmt.Fprintln(out, headingStyle.Render("\nGlyph fonts (sample)"))
			for _, f := range glyph.SampleFonts {
				fmt.Fprintf(out, "  - %s\n", f)
			}

			fmt.Fprintln(out, headingStyle.Render("\nVisual effects (PNG)"))
			for _, e := range banner.Effects {
				fmt.Fprintf(out, "  - %s\n", e)
			}

			fmt.Fprintln(out, headingStyle.Render("\nSVG styles"))
			for _, s := range banner.Styles {
				fmt.Fprintf(out, "  - %s\n", s)
			}
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Generate an example batch config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			examples := []batch.Record{
				{
					Kind: "svg", Text: "BannerForge", Subtitle: "Ultimate Banner Creator",
					Width: 1200, Height: 300, Palette: "stealth", Style: "wave",
				},
				{
					Kind: "png", Text: "Tech Conference 2026", Subtitle: "Innovation & Future",
					Width: 1920, Height: 400, Palette: "neon", Effects: []string{"glow", "shadow"},
				},
				{
					Kind: "ascii", Text: "Welcome", Font: "slant",
				},
				{
					Kind: "svg", Text: "Open Source", Subtitle: "Built by the Community",
					Palette: "forest", Style: "geometric", Animated: true,
				},
			}

			path := out + "." + format
			var data []byte
			var err error
			if format == "yaml" {
				data, err = yaml.Marshal(examples)
			} else {
				data, err = json.MarshalIndent(examples, "", "  ")
			}
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created example config: %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "  Run with: bannerforge batch %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "banner_config", "output filename (no extension)")
	return cmd
}
