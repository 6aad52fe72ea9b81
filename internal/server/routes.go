package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var staticFS embed.FS

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  s.logger.StandardLog(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	static, _ := fs.Sub(staticFS, "static")
	r.Get("/", serveFile(static, "index.html"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.getPresets)
		r.Post("/sessions", s.createSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Patch("/", s.patchSession)
			r.Delete("/", s.deleteSession)
			r.Post("/presets/{preset}", s.applyPreset)
			r.Get("/preview.svg", s.preview)
			r.Get("/export", s.export)
		})
	})

	return r
}

// serveFile returns a handler that reads a single file from fsys and sends it.
func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}
