package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/brandmark/internal/config"
	"github.com/matzehuels/brandmark/internal/server"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// serveCommand creates the serve command, which runs the browser preview.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the live preview editor in a browser",
		Long: `Start a local HTTP server with the icon editor and live SVG preview.

Every browser tab gets its own editing session. Sessions live in memory
and are dropped after session_ttl without activity or when the server
stops. Press Ctrl+C to stop.`,
		Example: `  brandmark serve
  brandmark serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cmd.OutOrStdout(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config: "+config.Default().Server.Addr+")")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, stdout io.Writer, addr string) error {
	logger := loggerFromContext(ctx)

	s, err := c.settings()
	if err != nil {
		return err
	}
	if addr != "" {
		s.Server.Addr = addr
	}

	cat, err := s.Catalog()
	if err != nil {
		return err
	}
	newCtl := func() *studio.Controller { return newController(ctx, s, cat) }

	srv := server.New(server.Config{
		Addr:            s.Server.Addr,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		SessionTTL:      s.Server.SessionTTL,
		DefaultPreset:   s.Preset,
		ExportOptions:   exportOptions(s),
	}, cat, newCtl, logger)

	printInfo(stdout, "Open %s in a browser", StyleLink.Render("http://"+s.Server.Addr))
	printDetail(stdout, "Press Ctrl+C to stop")
	return srv.ListenAndServe(ctx)
}
