package preset

import (
	"slices"

	"github.com/matzehuels/brandmark/pkg/icon"
)

// Identifiers of the built-in presets.
const (
	IDPornhub = "pornhub"
	IDYoutube = "youtube"
	IDModern  = "modern"
)

// DefaultID is the preset marked active when a session starts.
const DefaultID = IDPornhub

var builtin = []Preset{
	{
		ID:              IDPornhub,
		Name:            "PornHub Style",
		PrimaryColor:    "#ff9000",
		AuxiliaryColor:  "#ffffff",
		BackgroundColor: "#000000",
		Contrast:        100,
		StrokeWidth:     2,
		ShadowIntensity: 20,
		BorderRadius:    4,
		Layout:          icon.LayoutHorizontal,
	},
	{
		ID:              IDYoutube,
		Name:            "YouTube Style",
		PrimaryColor:    "#ff0000",
		AuxiliaryColor:  "#ffffff",
		BackgroundColor: "#ffffff",
		Contrast:        100,
		StrokeWidth:     1,
		ShadowIntensity: 10,
		BorderRadius:    8,
		Layout:          icon.LayoutHorizontal,
	},
	{
		ID:              IDModern,
		Name:            "Modern Style",
		PrimaryColor:    "#3b82f6",
		AuxiliaryColor:  "#ffffff",
		BackgroundColor: "#1f2937",
		Contrast:        90,
		StrokeWidth:     1,
		ShadowIntensity: 15,
		BorderRadius:    12,
		Layout:          icon.LayoutHorizontal,
	},
}

// Catalog is an ordered, read-only list of presets. Order only matters for
// display. The zero value is an empty catalog.
type Catalog struct {
	presets []Preset
}

// Builtin returns the catalog shipped with brandmark.
func Builtin() Catalog {
	return Catalog{presets: slices.Clone(builtin)}
}

// All returns the presets in catalog order. The slice is a copy.
func (c Catalog) All() []Preset {
	return slices.Clone(c.presets)
}

// IDs returns the preset identifiers in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.presets))
	for i, p := range c.presets {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of presets.
func (c Catalog) Len() int { return len(c.presets) }

// Lookup returns the preset with the given id.
func (c Catalog) Lookup(id string) (Preset, bool) {
	i := slices.IndexFunc(c.presets, func(p Preset) bool { return p.ID == id })
	if i < 0 {
		return Preset{}, false
	}
	return c.presets[i], true
}

// Apply overwrites the visual fields of cfg with those of preset id.
// An unknown id is a no-op: cfg is returned unchanged together with false.
func (c Catalog) Apply(cfg icon.Config, id string) (icon.Config, bool) {
	p, ok := c.Lookup(id)
	if !ok {
		return cfg, false
	}
	return cfg.Apply(p.Patch()), true
}

// Match returns the first preset whose visual fields equal those of cfg.
func (c Catalog) Match(cfg icon.Config) (Preset, bool) {
	for _, p := range c.presets {
		if p.Matches(cfg) {
			return p, true
		}
	}
	return Preset{}, false
}

// Merge returns a catalog holding c's presets followed by other's. A preset
// in other whose id already exists in c replaces it in place.
func (c Catalog) Merge(other Catalog) Catalog {
	out := slices.Clone(c.presets)
	for _, p := range other.presets {
		if i := slices.IndexFunc(out, func(q Preset) bool { return q.ID == p.ID }); i >= 0 {
			out[i] = p
			continue
		}
		out = append(out, p)
	}
	return Catalog{presets: out}
}

// New builds a catalog from presets in the given order. Numeric values are
// clamped into their domains.
func New(presets ...Preset) Catalog {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.clamp()
	}
	return Catalog{presets: out}
}
