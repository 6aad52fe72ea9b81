package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/brandmark/pkg/export"
	"github.com/matzehuels/brandmark/pkg/preset"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// Config holds server settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration

	// DefaultPreset is reported to the page as the initially selected preset.
	DefaultPreset string

	// ExportOptions are applied to every download.
	ExportOptions []export.Option
}

// Server is the preview server.
type Server struct {
	cfg      Config
	logger   *log.Logger
	catalog  preset.Catalog
	sessions *Manager
	handler  http.Handler
}

// New creates a server whose sessions start from newCtl. Every controller
// newCtl returns must use catalog.
func New(cfg Config, catalog preset.Catalog, newCtl func() *studio.Controller, logger *log.Logger) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		catalog:  catalog,
		sessions: NewManager(newCtl, cfg.SessionTTL),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler { return s.handler }

// Sessions returns the session manager.
func (s *Server) Sessions() *Manager { return s.sessions }

// ListenAndServe listens on the configured address and serves until ctx
// ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx ends, then shuts down
// gracefully. Expired sessions are swept in the background.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Preview server listening", "url", "http://"+ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("Preview server stopped", "sessions", s.sessions.Len())
		return nil
	})

	if s.cfg.SessionTTL > 0 {
		g.Go(func() error {
			s.sweep(gctx, s.cfg.SessionTTL/2)
			return nil
		})
	}

	return g.Wait()
}

// sweep drops expired sessions every interval until ctx ends.
func (s *Server) sweep(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.sessions.Cleanup(); n > 0 {
				s.logger.Debug("Dropped expired sessions", "count", n)
			}
		}
	}
}
