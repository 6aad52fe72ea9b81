package preset

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/brandmark/pkg/errors"
)

// catalogFile is the on-disk TOML shape:
//
//	[[preset]]
//	id = "midnight"
//	name = "Midnight"
//	primary_color = "#7c3aed"
//	...
type catalogFile struct {
	Presets []Preset `toml:"preset"`
}

// LoadFile reads a TOML preset catalog from path.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "open preset catalog")
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a TOML preset catalog. Identifiers must be valid and unique;
// a missing display name falls back to the id. Numeric values outside their
// domain are clamped.
func Decode(r io.Reader) (Catalog, error) {
	var file catalogFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode preset catalog")
	}

	seen := make(map[string]bool, len(file.Presets))
	for i, p := range file.Presets {
		if err := errors.ValidateIdentifier(p.ID); err != nil {
			return Catalog{}, err
		}
		if seen[p.ID] {
			return Catalog{}, errors.New(errors.ErrCodeInvalidPreset, "duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" {
			file.Presets[i].Name = p.ID
		}
	}
	return New(file.Presets...), nil
}
