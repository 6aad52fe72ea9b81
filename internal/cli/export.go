package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/brandmark/pkg/export"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	iconFlags
	dir      string // output directory; config output_dir when empty
	sanitize bool   // make the file name filesystem-safe
}

// exportCommand creates the export command, which writes the icon to a file
// named after its text.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an icon as {text}-{logo}-icon.svg",
		Long: `Export an icon as a standalone SVG file.

The file is named after the two text fields, for example Brand-Hub-icon.svg,
and written to --dir (default: output_dir from the config, or the current
directory). Text is used in the name as typed unless --sanitize is given.`,
		Example: `  brandmark export --text Brand --logo Hub
  brandmark export --preset modern --dir ./icons --sanitize`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "output directory")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "replace characters that are unsafe in file names")
	_ = cmd.MarkFlagDirname("dir")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, stdout io.Writer, opts *exportOpts) error {
	prog := newProgress(loggerFromContext(ctx))

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
	path, err := export.FromController(ctl, exportOptions(s)...).WriteTo(s.OutputDir)
	if err != nil {
		return err
	}
	prog.done("Exported icon", "file", path)

	cfg := ctl.Config()
	printSuccess(stdout, "Exported %s", renderSummary(ctl.StyleName(), cfg.MainText, cfg.LogoText))
	printFile(stdout, path)
	return nil
}
