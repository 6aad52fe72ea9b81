// Package icon defines the configuration record of a two-part brand icon.
//
// A [Config] holds every tunable visual parameter: the main label, the
// accent tag text, three colors, four numeric levels and a [Layout]. It is a
// plain value type. Updates go through [Config.Apply], which takes a [Patch]
// of overrides and returns a new Config, leaving the receiver untouched:
//
//	cfg := icon.Default()
//	next := cfg.Apply(icon.Patch{MainText: icon.String("Acme")})
//
// Numeric fields have declared domains (see [ContrastRange] and friends).
// Apply does not clamp; callers that accept arbitrary input use
// [Config.Clamp] or [Config.Validate].
package icon
