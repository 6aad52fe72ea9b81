package studio

import "github.com/matzehuels/brandmark/pkg/icon"

// Action is a single user edit.
type Action interface {
	action()
}

// TextField names a free-text field.
type TextField int

// Text fields.
const (
	MainText TextField = iota
	LogoText
)

// ColorField names one of the three color fields.
type ColorField int

// Color fields.
const (
	PrimaryColor ColorField = iota
	AuxiliaryColor
	BackgroundColor
)

// ColorFields returns the color fields in display order.
func ColorFields() []ColorField {
	return []ColorField{PrimaryColor, AuxiliaryColor, BackgroundColor}
}

func (f ColorField) String() string {
	switch f {
	case PrimaryColor:
		return "primary"
	case AuxiliaryColor:
		return "auxiliary"
	case BackgroundColor:
		return "background"
	}
	return "unknown"
}

// ColorSource tells where a color edit came from. Both sources write the
// same field.
type ColorSource int

// Color sources.
const (
	// FromText stores the value verbatim, valid color syntax or not.
	FromText ColorSource = iota
	// FromSwatch normalizes parseable values to lowercase #rrggbb.
	FromSwatch
)

// LevelField names one of the numeric sliders.
type LevelField int

// Level fields.
const (
	Contrast LevelField = iota
	StrokeWidth
	ShadowIntensity
	BorderRadius
)

// LevelFields returns the sliders in display order.
func LevelFields() []LevelField {
	return []LevelField{Contrast, StrokeWidth, ShadowIntensity, BorderRadius}
}

// Range returns the declared domain of the field.
func (f LevelField) Range() icon.Range {
	switch f {
	case Contrast:
		return icon.ContrastRange
	case StrokeWidth:
		return icon.StrokeWidthRange
	case ShadowIntensity:
		return icon.ShadowIntensityRange
	default:
		return icon.BorderRadiusRange
	}
}

func (f LevelField) String() string {
	switch f {
	case Contrast:
		return "contrast"
	case StrokeWidth:
		return "stroke width"
	case ShadowIntensity:
		return "shadow intensity"
	case BorderRadius:
		return "border radius"
	}
	return "unknown"
}

// Value reads the field from c.
func (f LevelField) Value(c icon.Config) int {
	switch f {
	case Contrast:
		return c.Contrast
	case StrokeWidth:
		return c.StrokeWidth
	case ShadowIntensity:
		return c.ShadowIntensity
	default:
		return c.BorderRadius
	}
}

// SetText replaces a free-text field.
type SetText struct {
	Field TextField
	Value string
}

// SetColor replaces a color field.
type SetColor struct {
	Field  ColorField
	Value  string
	Source ColorSource
}

// SetLevel moves a slider. Out-of-range values are clamped.
type SetLevel struct {
	Field LevelField
	Value int
}

// SetLayout selects a layout. Unknown layouts are ignored.
type SetLayout struct {
	Layout icon.Layout
}

// ApplyPreset overwrites the visual fields with a catalog entry. Unknown
// ids are ignored.
type ApplyPreset struct {
	ID string
}

// Edit applies an arbitrary patch, clamping numeric fields and dropping an
// unknown layout. Colors in the patch are stored verbatim.
type Edit struct {
	Patch icon.Patch
}

func (SetText) action()     {}
func (SetColor) action()    {}
func (SetLevel) action()    {}
func (SetLayout) action()   {}
func (ApplyPreset) action() {}
func (Edit) action()        {}
