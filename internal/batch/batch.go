// Package batch renders an ordered list of banner specs. Records are
// independent and share no mutable state, so they run on a bounded
// worker pool; a failing record is reported and never aborts the rest.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/errors"
	"github.com/bannerforge/bannerforge/internal/logging"
	"github.com/bannerforge/bannerforge/internal/palette"
	"github.com/bannerforge/bannerforge/internal/render"
)

// Record is one entry of a batch spec file. Omitted fields take the
// component defaults.
type Record struct {
	Kind     string   `yaml:"kind" json:"kind"`
	Text     string   `yaml:"text" json:"text"`
	Subtitle string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Palette  string   `yaml:"palette,omitempty" json:"palette,omitempty"`
	Width    int      `yaml:"width,omitempty" json:"width,omitempty"`
	Height   int      `yaml:"height,omitempty" json:"height,omitempty"`
	Style    string   `yaml:"style,omitempty" json:"style,omitempty"`
	Effects  []string `yaml:"effects,omitempty" json:"effects,omitempty"`
	Animated bool     `yaml:"animated,omitempty" json:"animated,omitempty"`
	Font     string   `yaml:"font,omitempty" json:"font,omitempty"`
	FontPath string   `yaml:"font_path,omitempty" json:"font_path,omitempty"`
	QR       string   `yaml:"qr,omitempty" json:"qr,omitempty"`
}

// Load reads a batch spec. YAML and JSON are told apart by extension,
// defaulting to JSON.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIOFailure, "read batch spec")
	}
	var records []Record
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(data, &records)
	} else {
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "parse batch spec")
	}
	return records, nil
}

// Result is the outcome for a single record.
type Result struct {
	Index int
	Text  string
	Path  string
	Err   error
}

// Summary collects per-record outcomes in record order.
type Summary struct {
	Results []Result
}

// Written returns the paths of successfully written artifacts.
func (s Summary) Written() []string {
	var paths []string
	for _, r := range s.Results {
		if r.Err == nil {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// Failures returns the records that did not produce an artifact.
func (s Summary) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Process renders every record into outDir. workers <= 0 picks a bound
// from the machine; distinct records always write distinct whole files.
func Process(records []Record, outDir string, reg *palette.Registry, workers int) (Summary, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Summary{}, errors.Wrap(err, errors.ErrIOFailure, "create output dir")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 4 {
			workers = 4
		}
	}
	if workers > len(records) && len(records) > 0 {
		workers = len(records)
	}

	logger := logging.GetLogger("batch")
	names := outputNames(records)
	results := make([]Result, len(records))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = processOne(i, records[i], outDir, names[i], reg)
				if results[i].Err != nil {
					logger.Warn().Int("record", i+1).Err(results[i].Err).Msg("record failed")
				} else {
					logger.Info().Int("record", i+1).Str("path", results[i].Path).Msg("written")
				}
			}
		}()
	}
	for i := range records {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return Summary{Results: results}, nil
}

// outputNames assigns every record a distinct file name before any
// worker starts, so records sharing a text never race on one path.
func outputNames(records []Record) []string {
	names := make([]string, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		kind := rec.Kind
		if kind == "" {
			kind = "svg"
		}
		ext := "out"
		if format, err := render.ParseFormat(kind); err == nil {
			ext = render.Ext(format)
		}
		base := banner.SafeName(rec.Text)
		name := base + "." + ext
		for n := 2; seen[name]; n++ {
			name = fmt.Sprintf("%s_%d.%s", base, n, ext)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

func processOne(index int, rec Record, outDir, name string, reg *palette.Registry) Result {
	res := Result{Index: index, Text: rec.Text}

	kind := rec.Kind
	if kind == "" {
		kind = "svg"
	}
	format, err := render.ParseFormat(kind)
	if err != nil {
		res.Err = err
		return res
	}

	req := banner.New(rec.Text)
	req.Subtitle = rec.Subtitle
	if rec.Width > 0 {
		req.Width = rec.Width
	}
	if rec.Height > 0 {
		req.Height = rec.Height
	}
	req.Palette = reg.Resolve(rec.Palette)
	req.Style = banner.ParseStyle(rec.Style)
	req.Effects = banner.ParseEffects(rec.Effects)
	req.Animated = rec.Animated
	req.GlyphFont = rec.Font
	req.FontPath = rec.FontPath
	req.QR = rec.QR

	data, err := render.Render(req, format)
	if err != nil {
		res.Err = err
		return res
	}

	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		res.Err = errors.Wrap(err, errors.ErrIOFailure, "write artifact")
		return res
	}
	res.Path = path
	return res
}
