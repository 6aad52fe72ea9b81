package icon

import (
	"github.com/matzehuels/brandmark/pkg/errors"
)

// Default values of a fresh editing session.
const (
	DefaultMainText        = "Brand"
	DefaultLogoText        = "Logo"
	DefaultPrimaryColor    = "#ff9000"
	DefaultAuxiliaryColor  = "#ffffff"
	DefaultBackgroundColor = "#000000"
	DefaultContrast        = 100
	DefaultStrokeWidth     = 2
	DefaultShadowIntensity = 20
	DefaultBorderRadius    = 4
	DefaultLayout          = LayoutHorizontal
)

// Range is the closed interval a numeric field may take.
type Range struct {
	Min, Max int
}

// Clamp forces v into r.
func (r Range) Clamp(v int) int {
	return max(r.Min, min(r.Max, v))
}

// Contains reports whether v lies inside r.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Declared domains of the numeric fields.
var (
	ContrastRange        = Range{0, 100}
	StrokeWidthRange     = Range{1, 5}
	ShadowIntensityRange = Range{0, 50}
	BorderRadiusRange    = Range{0, 20}
)

// Config describes one icon. Colors are free-form text and are never
// validated; they end up in the markup as written.
type Config struct {
	MainText        string `toml:"main_text" json:"mainText"`
	LogoText        string `toml:"logo_text" json:"logoText"`
	PrimaryColor    string `toml:"primary_color" json:"primaryColor"`
	AuxiliaryColor  string `toml:"auxiliary_color" json:"auxiliaryColor"`
	BackgroundColor string `toml:"background_color" json:"backgroundColor"`
	Contrast        int    `toml:"contrast" json:"contrast"`
	StrokeWidth     int    `toml:"stroke_width" json:"strokeWidth"`
	ShadowIntensity int    `toml:"shadow_intensity" json:"shadowIntensity"`
	BorderRadius    int    `toml:"border_radius" json:"borderRadius"`
	Layout          Layout `toml:"layout" json:"layoutType"`
}

// Default returns the configuration a new session starts with.
func Default() Config {
	return Config{
		MainText:        DefaultMainText,
		LogoText:        DefaultLogoText,
		PrimaryColor:    DefaultPrimaryColor,
		AuxiliaryColor:  DefaultAuxiliaryColor,
		BackgroundColor: DefaultBackgroundColor,
		Contrast:        DefaultContrast,
		StrokeWidth:     DefaultStrokeWidth,
		ShadowIntensity: DefaultShadowIntensity,
		BorderRadius:    DefaultBorderRadius,
		Layout:          DefaultLayout,
	}
}

// Clamp returns a copy of c with every numeric field forced into its domain
// and an invalid layout replaced by the default.
func (c Config) Clamp() Config {
	c.Contrast = ContrastRange.Clamp(c.Contrast)
	c.StrokeWidth = StrokeWidthRange.Clamp(c.StrokeWidth)
	c.ShadowIntensity = ShadowIntensityRange.Clamp(c.ShadowIntensity)
	c.BorderRadius = BorderRadiusRange.Clamp(c.BorderRadius)
	if !c.Layout.Valid() {
		c.Layout = DefaultLayout
	}
	return c
}

// Validate reports every numeric field outside its domain and an unknown
// layout. Text and color fields always pass.
func (c Config) Validate() error {
	return errors.Join(
		errors.ValidateRange("contrast", c.Contrast, ContrastRange.Min, ContrastRange.Max),
		errors.ValidateRange("stroke width", c.StrokeWidth, StrokeWidthRange.Min, StrokeWidthRange.Max),
		errors.ValidateRange("shadow intensity", c.ShadowIntensity, ShadowIntensityRange.Min, ShadowIntensityRange.Max),
		errors.ValidateRange("border radius", c.BorderRadius, BorderRadiusRange.Min, BorderRadiusRange.Max),
		validateLayout(c.Layout),
	)
}

func validateLayout(l Layout) error {
	if l.Valid() {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q", string(l))
}

// LayoutLabel returns the display label of the layout, as shown in the info
// panel next to the preview.
func (c Config) LayoutLabel() string {
	switch c.Layout {
	case LayoutVertical:
		return "Vertical"
	case LayoutStacked:
		return "Stacked"
	case LayoutHorizontal:
		return "Horizontal"
	}
	return string(c.Layout)
}
