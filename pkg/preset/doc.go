// Package preset holds the catalog of named visual styles.
//
// A [Preset] bundles every visual field of an [icon.Config]: the three
// colors, the four numeric levels and the layout. Applying one overwrites
// exactly those fields and never touches the main or tag text.
//
// The built-in catalog is returned by [Builtin]. User catalogs can be loaded
// from TOML with [LoadFile] and merged on top:
//
//	cat := preset.Builtin()
//	extra, err := preset.LoadFile("presets.toml")
//	if err != nil {
//	    return err
//	}
//	cat = cat.Merge(extra)
//
// Lookups of unknown identifiers are not errors: [Catalog.Apply] simply
// reports false and returns the configuration unchanged.
package preset
