package studio

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/preset"
)

// State is one version of the live configuration.
type State struct {
	Config  icon.Config `json:"config"`
	Active  string      `json:"activePreset,omitempty"` // "" when no preset is active
	Version int         `json:"version"`
}

// Policy tunes reducer behavior that front ends may disagree on.
type Policy struct {
	// ClearActiveOnEdit drops the active preset marker on any manual edit of
	// a visual field.
	ClearActiveOnEdit bool
}

// Reducer computes state transitions against a preset catalog.
type Reducer struct {
	Catalog preset.Catalog
	Policy  Policy
}

// Reduce returns the state after a. The input is never modified. When a
// changes nothing, the returned state equals s, Version included.
func (r Reducer) Reduce(s State, a Action) State {
	next := s
	visual := false

	switch a := a.(type) {
	case SetText:
		switch a.Field {
		case MainText:
			next.Config.MainText = a.Value
		case LogoText:
			next.Config.LogoText = a.Value
		}
	case SetColor:
		setColor(&next.Config, a.Field, normalizeColor(a.Value, a.Source))
		visual = true
	case SetLevel:
		setLevel(&next.Config, a.Field, a.Field.Range().Clamp(a.Value))
		visual = true
	case SetLayout:
		if !a.Layout.Valid() {
			return s
		}
		next.Config.Layout = a.Layout
		visual = true
	case ApplyPreset:
		cfg, ok := r.Catalog.Apply(s.Config, a.ID)
		if !ok {
			return s
		}
		next.Config = cfg
		next.Active = a.ID
	case Edit:
		next.Config = s.Config.Apply(sanitizePatch(a.Patch))
		visual = a.Patch.TouchesVisual()
	default:
		return s
	}

	if visual && r.Policy.ClearActiveOnEdit && next.Config != s.Config {
		next.Active = ""
	}
	if next.Config == s.Config && next.Active == s.Active {
		return s
	}
	next.Version = s.Version + 1
	return next
}

// normalizeColor keeps text input verbatim and turns parseable swatch input
// into lowercase #rrggbb.
func normalizeColor(v string, src ColorSource) string {
	if src != FromSwatch {
		return v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return v
	}
	return c.Hex()
}

func setColor(c *icon.Config, f ColorField, v string) {
	switch f {
	case PrimaryColor:
		c.PrimaryColor = v
	case AuxiliaryColor:
		c.AuxiliaryColor = v
	case BackgroundColor:
		c.BackgroundColor = v
	}
}

func setLevel(c *icon.Config, f LevelField, v int) {
	switch f {
	case Contrast:
		c.Contrast = v
	case StrokeWidth:
		c.StrokeWidth = v
	case ShadowIntensity:
		c.ShadowIntensity = v
	case BorderRadius:
		c.BorderRadius = v
	}
}

// ColorValue reads a color field from c.
func ColorValue(c icon.Config, f ColorField) string {
	switch f {
	case PrimaryColor:
		return c.PrimaryColor
	case AuxiliaryColor:
		return c.AuxiliaryColor
	default:
		return c.BackgroundColor
	}
}

func sanitizePatch(p icon.Patch) icon.Patch {
	clamp := func(v *int, r icon.Range) *int {
		if v == nil {
			return nil
		}
		return icon.Int(r.Clamp(*v))
	}
	p.Contrast = clamp(p.Contrast, icon.ContrastRange)
	p.StrokeWidth = clamp(p.StrokeWidth, icon.StrokeWidthRange)
	p.ShadowIntensity = clamp(p.ShadowIntensity, icon.ShadowIntensityRange)
	p.BorderRadius = clamp(p.BorderRadius, icon.BorderRadiusRange)
	if p.Layout != nil && !p.Layout.Valid() {
		p.Layout = nil
	}
	return p
}
