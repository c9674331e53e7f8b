package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bannerforge/bannerforge/internal/palette"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	spec := `
- kind: svg
  text: First Banner
  palette: ocean
  style: geometric
- kind: ascii
  text: Second
  font: slant
`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0644))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "First Banner", records[0].Text)
	assert.Equal(t, "ocean", records[0].Palette)
	assert.Equal(t, "slant", records[1].Font)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.json")
	spec := `[{"kind":"png","text":"Hello","effects":["shadow"],"width":200,"height":80}]`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0644))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"shadow"}, records[0].Effects)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestProcessContinuesPastFailures(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	records := []Record{
		{Kind: "svg", Text: "Good One", Palette: "ocean"},
		{Kind: "svg", Text: ""}, // missing text fails this record only
		{Kind: "ascii", Text: "Good Two"},
	}

	summary, err := Process(records, outDir, palette.Builtin, 2)
	require.NoError(t, err)

	written := summary.Written()
	require.Len(t, written, 2)
	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	failures := summary.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, 1, failures[0].Index)
}

func TestProcessResultsKeepRecordOrder(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	records := []Record{
		{Kind: "ascii", Text: "Alpha"},
		{Kind: "ascii", Text: "Beta"},
		{Kind: "ascii", Text: "Gamma"},
	}

	summary, err := Process(records, outDir, palette.Builtin, 3)
	require.NoError(t, err)
	require.Len(t, summary.Results, 3)
	for i, res := range summary.Results {
		assert.Equal(t, i, res.Index)
		require.NoError(t, res.Err)
	}
}

func TestProcessDisambiguatesDuplicateNames(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	records := []Record{
		{Kind: "svg", Text: "Same Name"},
		{Kind: "svg", Text: "Same Name", Palette: "ocean"},
		{Kind: "svg", Text: "Same Name", Palette: "ember"},
	}

	summary, err := Process(records, outDir, palette.Builtin, 3)
	require.NoError(t, err)

	written := summary.Written()
	require.Len(t, written, 3)
	paths := map[string]bool{}
	for _, path := range written {
		assert.False(t, paths[path], "path %s written twice", path)
		paths[path] = true
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestProcessUnknownGlyphFontFallsBack(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	records := []Record{
		{Kind: "ascii", Text: "Hi", Font: "no-such-font"},
		{Kind: "ascii", Text: "Bye"},
	}

	summary, err := Process(records, outDir, palette.Builtin, 2)
	require.NoError(t, err)
	assert.Empty(t, summary.Failures())
	assert.Len(t, summary.Written(), 2)
}

func TestProcessUnknownKindFailsRecord(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	records := []Record{{Kind: "gif", Text: "Nope"}}

	summary, err := Process(records, outDir, palette.Builtin, 1)
	require.NoError(t, err)
	require.Len(t, summary.Failures(), 1)
	assert.Empty(t, summary.Written())
}
