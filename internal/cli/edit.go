package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	iconFlags
	dir      string
	sanitize bool
}

// editCommand creates the edit command, which opens the terminal editor.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Design an icon interactively in the terminal",
		Long: `Open the interactive editor.

Move between fields with tab or the arrow keys. Text and color fields take
typed input; color fields also cycle through swatches with pgup/pgdn.
Sliders, layout and the preset list change with ←/→, and enter applies the
highlighted preset. ctrl+s exports the icon, ctrl+y copies the SVG markup to
the clipboard.

Field flags set the starting point, the same way they do for render.`,
		Example: `  brandmark edit
  brandmark edit --preset modern --text Acme --logo Labs --dir ./icons`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "export directory")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "replace characters that are unsafe in file names")
	_ = cmd.MarkFlagDirname("dir")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, stdout io.Writer, opts *editOpts) error {
	logger := loggerFromContext(ctx)

	s, err := c.settings()
	if err != nil {
		return err
	}
	if opts.dir != "" {
		s.OutputDir = opts.dir
	}
	if opts.sanitize {
		s.SanitizeFilenames = true
	}

	ctl, err := opts.apply(ctx, s)
	if err != nil {
		return err
	}

	model := NewEditorModel(ctl, s.OutputDir, exportOptions(s)...)
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	result := final.(EditorModel)
	logger.Debug("Editor closed", "version", result.Controller().State().Version, "exports", len(result.Exported))

	cfg := result.Controller().Config()
	printIconSummary(stdout, result.Controller().StyleName(), cfg)
	if len(result.Exported) == 0 {
		printWarning(stdout, "Nothing exported")
		printNextStep(stdout, "Export this design with", exportHint(result))
		return nil
	}
	printSuccess(stdout, "Exported %s", renderSummary(result.Controller().StyleName(), cfg.MainText, cfg.LogoText))
	for _, path := range result.Exported {
		printFile(stdout, path)
	}
	return nil
}

// exportHint returns an export command line that reproduces the editor's
// final design. Visual flags are spelled out unless an unmodified preset
// covers them.
func exportHint(m EditorModel) string {
	ctl := m.Controller()
	cfg := ctl.Config()
	args := []string{appName, "export"}

	p, ok := ctl.ActivePreset()
	if ok {
		args = append(args, "--preset", p.ID)
	}
	if !ok || !p.Matches(cfg) {
		args = append(args,
			"--primary", shellQuote(cfg.PrimaryColor),
			"--auxiliary", shellQuote(cfg.AuxiliaryColor),
			"--background", shellQuote(cfg.BackgroundColor),
			"--contrast", fmt.Sprint(cfg.Contrast),
			"--stroke-width", fmt.Sprint(cfg.StrokeWidth),
			"--shadow", fmt.Sprint(cfg.ShadowIntensity),
			"--radius", fmt.Sprint(cfg.BorderRadius),
			"--layout", cfg.Layout.String(),
		)
	}
	args = append(args, "--text", shellQuote(cfg.MainText), "--logo", shellQuote(cfg.LogoText))
	return strings.Join(args, " ")
}

// shellQuote single-quotes s for POSIX shells when it contains anything
// beyond a conservative set of safe characters.
func shellQuote(s string) string {
	safe := s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r == '-' || r == '_' || r == '.' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}) < 0
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
