// Package pkg provides the core libraries for Brandmark icon design.
//
// # Overview
//
// Brandmark builds simple two-part brand icons: a text label next to an
// accent tag. The pkg directory is organized leaf-first:
//
//  1. [icon] - The configuration of one icon, its defaults and domains
//  2. [preset] - Named style bundles and user catalogs
//  3. [render] - Deterministic SVG generation
//  4. [studio] - The editing session: actions, reducer and live preview
//  5. [export] - File and HTTP delivery of the rendered markup
//
// Supporting packages:
//   - [errors] - Coded errors for input boundaries
//   - [buildinfo] - Version information injected at build time
//
// # Architecture
//
// Every front end (CLI flags, terminal editor, preview server) drives the
// same flow:
//
//	user edit
//	     ↓
//	[studio] Controller.Dispatch (clamp, apply, bump version)
//	     ↓
//	[render] Render (pure, total)
//	     ↓
//	preview  /  [export] Artifact
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/brandmark/pkg/export"
//	    "github.com/matzehuels/brandmark/pkg/studio"
//	)
//
//	ctl := studio.New()
//	ctl.Dispatch(studio.ApplyPreset{ID: "youtube"})
//	ctl.Dispatch(studio.SetText{Field: studio.MainText, Value: "My"})
//	path, err := export.FromController(ctl).WriteTo(".")
//
// [icon]: github.com/matzehuels/brandmark/pkg/icon
// [preset]: github.com/matzehuels/brandmark/pkg/preset
// [render]: github.com/matzehuels/brandmark/pkg/render
// [studio]: github.com/matzehuels/brandmark/pkg/studio
// [export]: github.com/matzehuels/brandmark/pkg/export
// [errors]: github.com/matzehuels/brandmark/pkg/errors
// [buildinfo]: github.com/matzehuels/brandmark/pkg/buildinfo
package pkg
