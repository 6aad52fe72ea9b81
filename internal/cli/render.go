package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	iconFlags
	output string // output file path; stdout when empty
}

// renderCommand creates the render command, which prints the SVG markup for
// one configuration.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an icon to SVG",
		Long: `Render an icon to SVG markup.

The configured preset is applied first, then any field flags on top of it.
Without -o the markup is written to stdout.`,
		Example: `  brandmark render --text Brand --logo Hub > icon.svg
  brandmark render --preset youtube --text My --logo Tube -o my-tube.svg
  brandmark render --shadow 35 --radius 10 --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runRender builds the session from settings and flags and writes its markup.
func (c *CLI) runRender(ctx context.Context, stdout io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	s, err := c.settings()
	if err != nil {
		return err
	}
	ctl, err := opts.apply(ctx, s)
	if err != nil {
		return err
	}
	svg := ctl.SVG()
	logger.Debug("Rendered icon", "style", ctl.StyleName(), "version", ctl.State().Version, "digest", render.Digest(svg)[:12])

	if opts.output == "" {
		_, err := io.WriteString(stdout, svg)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(svg), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	printSuccess(stdout, "Rendered %s", ctl.StyleName())
	printFile(stdout, opts.output)
	return nil
}

// renderSummary is the one-line description used by export and edit.
func renderSummary(style, main, logo string) string {
	return fmt.Sprintf("%s · %q + %q", style, main, logo)
}
