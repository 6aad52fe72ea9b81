// Package render turns an icon configuration into SVG markup.
//
// # Overview
//
// [Render] is a pure, total function: the same [icon.Config] and options
// always produce byte-identical output, and no input makes it fail. The
// canvas is fixed at 300x120 and holds, in order:
//
//   - a drop-shadow filter whose blur deviation is ShadowIntensity/10
//   - the background rectangle (corner radius BorderRadius)
//   - the main text in the auxiliary color
//   - the accent rectangle (corner radius BorderRadius/2) in the primary color
//   - the tag text, drawn in the background color on top of the accent
//   - two captions naming the active preset and quoting both texts
//
// Layout, Contrast and StrokeWidth are carried by the configuration but do
// not change the markup.
//
// # Escaping
//
// Text and color fields are XML-escaped before they are embedded. Pass
// [WithRawText] to interpolate them verbatim instead; the result is then only
// well-formed when the inputs are.
//
//	svg := render.Render(cfg, render.WithStyleName("Modern Style"))
package render
