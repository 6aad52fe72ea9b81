package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/brandmark/internal/config"
	"github.com/matzehuels/brandmark/pkg/buildinfo"
	"github.com/matzehuels/brandmark/pkg/export"
	"github.com/matzehuels/brandmark/pkg/preset"
	"github.com/matzehuels/brandmark/pkg/render"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "brandmark"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Brandmark designs two-part brand icons and exports them as SVG",
		Long: `Brandmark is a configurator for simple two-part brand icons: a text label
plus an accent tag. Pick a preset, tune colors, shadow and corner radius,
preview the result live and export it as a standalone SVG file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// settings loads the application config from --config or the default path.
// A log_level from the file only raises verbosity; it never hides messages
// the --verbose flag asked for.
func (c *CLI) settings() (config.Config, error) {
	load := config.Load
	if c.configPath != "" {
		load = func() (config.Config, error) { return config.LoadFile(c.configPath) }
	}
	cfg, err := load()
	if err != nil {
		return config.Config{}, err
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil && lvl < c.Logger.GetLevel() {
		c.Logger.SetLevel(lvl)
	}
	return cfg, nil
}

// newController builds an editing session from the settings: the starting
// icon with the configured preset applied on top.
func newController(ctx context.Context, s config.Config, cat preset.Catalog) *studio.Controller {
	ctl := studio.New(
		studio.WithCatalog(cat),
		studio.WithPolicy(studio.Policy{ClearActiveOnEdit: s.ClearActiveOnEdit}),
		studio.WithInitial(s.Icon),
		studio.WithActive(""),
		studio.WithRenderOptions(renderOptions(s)...),
	)
	applyPreset(ctx, ctl, s.Preset)
	return ctl
}

// applyPreset applies id, logging a warning when the catalog does not know
// it. The controller is left unchanged in that case.
func applyPreset(ctx context.Context, ctl *studio.Controller, id string) {
	if id == "" {
		return
	}
	if _, ok := ctl.Catalog().Lookup(id); !ok {
		loggerFromContext(ctx).Warn("Unknown preset, keeping current style", "preset", id, "known", ctl.Catalog().IDs())
		return
	}
	ctl.Dispatch(studio.ApplyPreset{ID: id})
}

func renderOptions(s config.Config) []render.Option {
	if s.EscapeText {
		return nil
	}
	return []render.Option{render.WithRawText()}
}

func exportOptions(s config.Config) []export.Option {
	if s.SanitizeFilenames {
		return []export.Option{export.WithSanitizedFilename()}
	}
	return nil
}

// presetIDs is used for flag completion.
func presetIDs(s config.Config) []string {
	cat, err := s.Catalog()
	if err != nil {
		return preset.Builtin().IDs()
	}
	return cat.IDs()
}
