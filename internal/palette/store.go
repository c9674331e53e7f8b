package palette

import (
	"encoding/json"
	"os"

	"github.com/bannerforge/bannerforge/internal/errors"
)

// storedPalette is the on-disk shape, hex strings keyed the same way the
// export/import tooling expects.
type storedPalette struct {
	Background    string `json:"bg"`
	Accent        string `json:"accent"`
	Text          string `json:"text"`
	Muted         string `json:"muted"`
	GradientStart string `json:"gradient_start"`
	GradientEnd   string `json:"gradient_end"`
}

// MarshalJSON serializes a palette as hex strings.
func (p Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(storedPalette{
		Background:    p.Background.Hex(),
		Accent:        p.Accent.Hex(),
		Text:          p.Text.Hex(),
		Muted:         p.Muted.Hex(),
		GradientStart: p.GradientStart.Hex(),
		GradientEnd:   p.GradientEnd.Hex(),
	})
}

// UnmarshalJSON validates every color field on the way in.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var s storedPalette
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var err error
	if p.Background, err = ParseHex(s.Background); err != nil {
		return err
	}
	if p.Accent, err = ParseHex(s.Accent); err != nil {
		return err
	}
	if p.Text, err = ParseHex(s.Text); err != nil {
		return err
	}
	if p.Muted, err = ParseHex(s.Muted); err != nil {
		return err
	}
	if p.GradientStart, err = ParseHex(s.GradientStart); err != nil {
		return err
	}
	if p.GradientEnd, err = ParseHex(s.GradientEnd); err != nil {
		return err
	}
	return nil
}

// Store is the persisted custom-palette mapping.
type Store map[string]Palette

// LoadStore reads a palette store file. A missing file is an empty store.
func LoadStore(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrIOFailure, "read palette store")
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "parse palette store")
	}
	return s, nil
}

// Save writes the store back out, creating the file if needed.
func (s Store) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "encode palette store")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "write palette store")
	}
	return nil
}

// Merge adds or overwrites a named palette.
func (s Store) Merge(name string, p Palette) {
	s[name] = p
}
