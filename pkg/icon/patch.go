package icon

// Patch is a partial set of field overrides. A nil field leaves the
// corresponding Config field as it is.
type Patch struct {
	MainText        *string `json:"mainText,omitempty"`
	LogoText        *string `json:"logoText,omitempty"`
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	AuxiliaryColor  *string `json:"auxiliaryColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	Contrast        *int    `json:"contrast,omitempty"`
	StrokeWidth     *int    `json:"strokeWidth,omitempty"`
	ShadowIntensity *int    `json:"shadowIntensity,omitempty"`
	BorderRadius    *int    `json:"borderRadius,omitempty"`
	Layout          *Layout `json:"layoutType,omitempty"`
}

// String returns a pointer to s, for building patches.
func String(s string) *string { return &s }

// Int returns a pointer to v, for building patches.
func Int(v int) *int { return &v }

// LayoutPtr returns a pointer to l, for building patches.
func LayoutPtr(l Layout) *Layout { return &l }

// Apply returns c with every non-nil field of p copied over.
func (c Config) Apply(p Patch) Config {
	setString(&c.MainText, p.MainText)
	setString(&c.LogoText, p.LogoText)
	setString(&c.PrimaryColor, p.PrimaryColor)
	setString(&c.AuxiliaryColor, p.AuxiliaryColor)
	setString(&c.BackgroundColor, p.BackgroundColor)
	setInt(&c.Contrast, p.Contrast)
	setInt(&c.StrokeWidth, p.StrokeWidth)
	setInt(&c.ShadowIntensity, p.ShadowIntensity)
	setInt(&c.BorderRadius, p.BorderRadius)
	if p.Layout != nil {
		c.Layout = *p.Layout
	}
	return c
}

// Empty reports whether p overrides nothing.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// TouchesVisual reports whether p overrides any field other than the two
// text fields.
func (p Patch) TouchesVisual() bool {
	p.MainText, p.LogoText = nil, nil
	return !p.Empty()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
