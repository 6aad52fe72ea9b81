package preset

import (
	"github.com/matzehuels/brandmark/pkg/icon"
)

// Preset is a named, immutable bundle of visual parameter values.
type Preset struct {
	ID              string      `toml:"id" json:"id"`
	Name            string      `toml:"name" json:"name"`
	PrimaryColor    string      `toml:"primary_color" json:"primaryColor"`
	AuxiliaryColor  string      `toml:"auxiliary_color" json:"auxiliaryColor"`
	BackgroundColor string      `toml:"background_color" json:"backgroundColor"`
	Contrast        int         `toml:"contrast" json:"contrast"`
	StrokeWidth     int         `toml:"stroke_width" json:"strokeWidth"`
	ShadowIntensity int         `toml:"shadow_intensity" json:"shadowIntensity"`
	BorderRadius    int         `toml:"border_radius" json:"borderRadius"`
	Layout          icon.Layout `toml:"layout" json:"layoutType"`
}

// Patch returns the overrides that applying p performs: every visual field,
// neither text field.
func (p Preset) Patch() icon.Patch {
	return icon.Patch{
		PrimaryColor:    icon.String(p.PrimaryColor),
		AuxiliaryColor:  icon.String(p.AuxiliaryColor),
		BackgroundColor: icon.String(p.BackgroundColor),
		Contrast:        icon.Int(p.Contrast),
		StrokeWidth:     icon.Int(p.StrokeWidth),
		ShadowIntensity: icon.Int(p.ShadowIntensity),
		BorderRadius:    icon.Int(p.BorderRadius),
		Layout:          icon.LayoutPtr(p.Layout),
	}
}

// Matches reports whether the visual fields of c equal those of p.
func (p Preset) Matches(c icon.Config) bool {
	return c.PrimaryColor == p.PrimaryColor &&
		c.AuxiliaryColor == p.AuxiliaryColor &&
		c.BackgroundColor == p.BackgroundColor &&
		c.Contrast == p.Contrast &&
		c.StrokeWidth == p.StrokeWidth &&
		c.ShadowIntensity == p.ShadowIntensity &&
		c.BorderRadius == p.BorderRadius &&
		c.Layout == p.Layout
}

// clamp forces the numeric fields into their declared domains.
func (p Preset) clamp() Preset {
	p.Contrast = icon.ContrastRange.Clamp(p.Contrast)
	p.StrokeWidth = icon.StrokeWidthRange.Clamp(p.StrokeWidth)
	p.ShadowIntensity = icon.ShadowIntensityRange.Clamp(p.ShadowIntensity)
	p.BorderRadius = icon.BorderRadiusRange.Clamp(p.BorderRadius)
	if p.Layout == "" {
		p.Layout = icon.DefaultLayout
	}
	return p
}
