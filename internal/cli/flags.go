package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/brandmark/internal/config"
	"github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// iconFlags holds the flags shared by render and export. Only flags the
// user actually set are applied, on top of the configured starting icon
// and preset.
type iconFlags struct {
	preset     string
	mainText   string
	logoText   string
	primary    string
	auxiliary  string
	background string
	contrast   int
	stroke     int
	shadow     int
	radius     int
	layout     string
	raw        bool
	strict     bool

	flags *pflag.FlagSet
}

// register binds the flags to cmd. Defaults shown in help are the built-in
// ones; the config file may override them.
func (f *iconFlags) register(cmd *cobra.Command) {
	d := icon.Default()
	fs := cmd.Flags()
	f.flags = fs

	fs.StringVarP(&f.preset, "preset", "p", "", "preset to apply (default from config: pornhub)")
	fs.StringVarP(&f.mainText, "text", "t", d.MainText, "main text")
	fs.StringVarP(&f.logoText, "logo", "l", d.LogoText, "logo tag text")
	fs.StringVar(&f.primary, "primary", d.PrimaryColor, "primary (tag) color")
	fs.StringVar(&f.auxiliary, "auxiliary", d.AuxiliaryColor, "auxiliary (text) color")
	fs.StringVar(&f.background, "background", d.BackgroundColor, "background color")
	fs.IntVar(&f.contrast, "contrast", d.Contrast, rangeHelp("contrast", icon.ContrastRange))
	fs.IntVar(&f.stroke, "stroke-width", d.StrokeWidth, rangeHelp("stroke width", icon.StrokeWidthRange))
	fs.IntVar(&f.shadow, "shadow", d.ShadowIntensity, rangeHelp("shadow intensity", icon.ShadowIntensityRange))
	fs.IntVar(&f.radius, "radius", d.BorderRadius, rangeHelp("border radius", icon.BorderRadiusRange))
	fs.StringVar(&f.layout, "layout", string(d.Layout), "layout: horizontal, vertical, stacked")
	fs.BoolVar(&f.raw, "raw", false, "write text fields into the markup unescaped")
	fs.BoolVar(&f.strict, "strict", false, "reject out-of-range values instead of clamping them")

	_ = cmd.RegisterFlagCompletionFunc("layout", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(icon.Layouts()))
		for _, l := range icon.Layouts() {
			names = append(names, l.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		s, err := config.Load()
		if err != nil {
			s = config.Default()
		}
		return presetIDs(s), cobra.ShellCompDirectiveNoFileComp
	})
}

func rangeHelp(name string, r icon.Range) string {
	return fmt.Sprintf("%s (%d-%d)", name, r.Min, r.Max)
}

// patch collects the flags the user set into an icon patch.
func (f *iconFlags) patch() (icon.Patch, error) {
	var p icon.Patch
	set := f.set

	if set("text") {
		p.MainText = icon.String(f.mainText)
	}
	if set("logo") {
		p.LogoText = icon.String(f.logoText)
	}
	if set("primary") {
		p.PrimaryColor = icon.String(f.primary)
	}
	if set("auxiliary") {
		p.AuxiliaryColor = icon.String(f.auxiliary)
	}
	if set("background") {
		p.BackgroundColor = icon.String(f.background)
	}
	if set("contrast") {
		p.Contrast = icon.Int(f.contrast)
	}
	if set("stroke-width") {
		p.StrokeWidth = icon.Int(f.stroke)
	}
	if set("shadow") {
		p.ShadowIntensity = icon.Int(f.shadow)
	}
	if set("radius") {
		p.BorderRadius = icon.Int(f.radius)
	}
	if set("layout") {
		l, err := icon.ParseLayout(f.layout)
		if err != nil {
			return icon.Patch{}, err
		}
		p.Layout = icon.LayoutPtr(l)
	}
	return p, nil
}

// apply overrides settings with the flags and builds the editing session:
// starting icon, then the preset, then the individual field flags.
func (f *iconFlags) apply(ctx context.Context, s config.Config) (*studio.Controller, error) {
	p, err := f.patch()
	if err != nil {
		return nil, err
	}
	if f.strict {
		if err := icon.Default().Apply(p).Validate(); err != nil {
			return nil, err
		}
	}
	if f.set("preset") {
		if f.preset != "" {
			if err := errors.ValidateIdentifier(f.preset); err != nil {
				return nil, err
			}
		}
		s.Preset = f.preset
	}
	if f.raw {
		s.EscapeText = false
	}

	cat, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debugf("Loaded %d presets", cat.Len())

	ctl := newController(ctx, s, cat)
	if !p.Empty() {
		ctl.Dispatch(studio.Edit{Patch: p})
	}
	return ctl, nil
}

func (f *iconFlags) set(name string) bool {
	return f.flags != nil && f.flags.Changed(name)
}
