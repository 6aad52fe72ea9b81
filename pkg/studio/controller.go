package studio

import (
	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/preset"
	"github.com/matzehuels/brandmark/pkg/render"
)

// Preview is handed to the preview callback after every effective change.
type Preview struct {
	State State
	SVG   string
}

// Option configures a Controller.
type Option func(*Controller)

// WithCatalog replaces the built-in preset catalog.
func WithCatalog(c preset.Catalog) Option { return func(ctl *Controller) { ctl.reducer.Catalog = c } }

// WithPolicy sets the reducer policy.
func WithPolicy(p Policy) Option { return func(ctl *Controller) { ctl.reducer.Policy = p } }

// WithInitial sets the starting configuration. It is clamped.
func WithInitial(c icon.Config) Option {
	return func(ctl *Controller) { ctl.state.Config = c.Clamp() }
}

// WithActive sets the preset marked active at start. An empty id starts
// without an active preset.
func WithActive(id string) Option { return func(ctl *Controller) { ctl.state.Active = id } }

// WithRenderOptions adds options to every render call.
func WithRenderOptions(opts ...render.Option) Option {
	return func(ctl *Controller) { ctl.renderOpts = append(ctl.renderOpts, opts...) }
}

// WithPreview registers a callback invoked with the new markup after every
// effective change, and once when the controller is created.
func WithPreview(fn func(Preview)) Option { return func(ctl *Controller) { ctl.preview = fn } }

// Controller holds the live State of one editing session.
type Controller struct {
	reducer    Reducer
	state      State
	renderOpts []render.Option
	preview    func(Preview)
	svg        string
}

// New creates a controller starting from the default configuration with the
// default preset marked active.
func New(opts ...Option) *Controller {
	c := &Controller{
		reducer: Reducer{Catalog: preset.Builtin()},
		state:   State{Config: icon.Default(), Active: preset.DefaultID},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.refresh()
	return c
}

// Dispatch applies a and returns the resulting state. The preview is
// re-rendered only when the state actually changed.
func (c *Controller) Dispatch(a Action) State {
	next := c.reducer.Reduce(c.state, a)
	if next.Version == c.state.Version {
		return c.state
	}
	c.state = next
	c.refresh()
	return c.state
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Config returns the current configuration.
func (c *Controller) Config() icon.Config { return c.state.Config }

// Catalog returns the preset catalog the controller applies from.
func (c *Controller) Catalog() preset.Catalog { return c.reducer.Catalog }

// ActivePreset returns the preset currently marked active.
func (c *Controller) ActivePreset() (preset.Preset, bool) {
	if c.state.Active == "" {
		return preset.Preset{}, false
	}
	return c.reducer.Catalog.Lookup(c.state.Active)
}

// StyleName returns the name shown in the style caption: the active preset's
// display name, or [render.CustomStyleName].
func (c *Controller) StyleName() string {
	if p, ok := c.ActivePreset(); ok {
		return p.Name
	}
	return render.CustomStyleName
}

// Modified reports whether the visual fields diverged from the active preset.
func (c *Controller) Modified() bool {
	p, ok := c.ActivePreset()
	return ok && !p.Matches(c.state.Config)
}

// SVG returns the markup of the current state.
func (c *Controller) SVG() string { return c.svg }

// RenderOptions returns the options used for the current state, including
// the style caption.
func (c *Controller) RenderOptions() []render.Option {
	opts := make([]render.Option, 0, len(c.renderOpts)+1)
	opts = append(opts, c.renderOpts...)
	return append(opts, render.WithStyleName(c.StyleName()))
}

func (c *Controller) refresh() {
	c.svg = render.Render(c.state.Config, c.RenderOptions()...)
	if c.preview != nil {
		c.preview(Preview{State: c.state, SVG: c.svg})
	}
}
