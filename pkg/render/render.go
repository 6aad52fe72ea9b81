package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/brandmark/pkg/icon"
)

// Canvas geometry. The template does not scale with the text.
const (
	Width  = 300
	Height = 120

	fontFamily = "Arial, sans-serif"

	mainX, mainY, mainSize = 30, 45, 24

	tagX, tagY, tagW, tagH = 200, 25, 70, 30
	tagTextX, tagTextY     = 235, 44
	tagSize                = 14

	captionX, captionSize = 30, 10
	styleCaptionY         = 75
	textCaptionY          = 90
	captionOpacity        = "0.7"

	shadowDY      = 2
	shadowOpacity = "0.3"
)

// CustomStyleName is shown in the caption when no preset is active.
const CustomStyleName = "custom"

// Option configures a single Render call.
type Option func(*renderer)

type renderer struct {
	styleName string
	raw       bool
}

// WithStyleName sets the preset name shown in the style caption. An empty
// name renders as [CustomStyleName].
func WithStyleName(name string) Option { return func(r *renderer) { r.styleName = name } }

// WithRawText disables escaping of text and color fields.
func WithRawText() Option { return func(r *renderer) { r.raw = true } }

// Render returns the SVG document for cfg.
func Render(cfg icon.Config, opts ...Option) string {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	esc := EscapeXML
	if r.raw {
		esc = func(s string) string { return s }
	}

	style := r.styleName
	if style == "" {
		style = CustomStyleName
	}

	bg := esc(cfg.BackgroundColor)
	aux := esc(cfg.AuxiliaryColor)
	main := esc(cfg.MainText)
	logo := esc(cfg.LogoText)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", Width, Height)

	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <filter id="shadow" x="-50%" y="-50%" width="200%" height="200%">` + "\n")
	fmt.Fprintf(&buf, `      <feDropShadow dx="0" dy="%d" stdDeviation="%s" flood-opacity="%s"/>`+"\n",
		shadowDY, ShadowDeviation(cfg.ShadowIntensity), shadowOpacity)
	buf.WriteString("    </filter>\n")
	buf.WriteString("  </defs>\n")

	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" rx="%d" fill="%s" filter="url(#shadow)"/>`+"\n",
		Width, Height, cfg.BorderRadius, bg)

	fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" font-weight="bold" fill="%s">%s</text>`+"\n",
		mainX, mainY, fontFamily, mainSize, aux, main)

	fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" rx="%s" fill="%s"/>`+"\n",
		tagX, tagY, tagW, tagH, TagRadius(cfg.BorderRadius), esc(cfg.PrimaryColor))

	fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
		tagTextX, tagTextY, fontFamily, tagSize, bg, logo)

	fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s" opacity="%s">Style: %s</text>`+"\n",
		captionX, styleCaptionY, fontFamily, captionSize, aux, captionOpacity, esc(style))

	fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s" opacity="%s">Text: "%s" + "%s"</text>`+"\n",
		captionX, textCaptionY, fontFamily, captionSize, aux, captionOpacity, main, logo)

	buf.WriteString("</svg>\n")
	return buf.String()
}

// ShadowDeviation formats the blur deviation for a shadow intensity:
// intensity/10 in shortest form, so 20 yields "2" and 15 yields "1.5".
func ShadowDeviation(intensity int) string {
	return formatNumber(float64(intensity) / 10)
}

// TagRadius formats the accent rectangle's corner radius, half of the
// outer radius without rounding.
func TagRadius(borderRadius int) string {
	return formatNumber(float64(borderRadius) / 2)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
