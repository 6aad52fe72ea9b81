package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/export"
	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/preset"
	"github.com/matzehuels/brandmark/pkg/render"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// maxBodyBytes bounds PATCH bodies.
const maxBodyBytes = 64 << 10

// stateResponse is the JSON view of a session.
type stateResponse struct {
	ID       string      `json:"id"`
	Config   icon.Config `json:"config"`
	Active   *string     `json:"activePreset"`
	Style    string      `json:"style"`
	Layout   string      `json:"layoutLabel"`
	Modified bool        `json:"modified"`
	Version  int         `json:"version"`
	Filename string      `json:"filename"`
	ETag     string      `json:"etag"`
}

type presetsResponse struct {
	Presets []preset.Preset `json:"presets"`
	Default string          `json:"default"`
	Layouts []icon.Layout   `json:"layouts"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) getPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presetsResponse{
		Presets: s.catalog.All(),
		Default: s.cfg.DefaultPreset,
		Layouts: icon.Layouts(),
	})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	s.logger.Debug("Session created", "id", sess.ID)
	s.respondState(w, http.StatusCreated, sess, nil)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.respondState(w, http.StatusOK, sess, nil)
}

// patchSession applies an icon patch. Numbers are clamped; colors and text
// are stored as sent.
func (s *Server) patchSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var p icon.Patch
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
		}
		writeError(w, err)
		return
	}

	s.respondState(w, http.StatusOK, sess, studio.Edit{Patch: p})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// applyPreset selects a preset. Unknown presets leave the session as it is.
func (s *Server) applyPreset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "preset")
	if _, known := s.catalog.Lookup(id); !known {
		s.logger.Debug("Ignoring unknown preset", "session", sess.ID, "preset", id)
	}
	s.respondState(w, http.StatusOK, sess, studio.ApplyPreset{ID: id})
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var svg string
	sess.Do(s.sessions.now(), func(ctl *studio.Controller) { svg = ctl.SVG() })

	etag := etagOf(svg)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", export.MIMEType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var a export.Artifact
	sess.Do(s.sessions.now(), func(ctl *studio.Controller) {
		a = export.FromController(ctl, s.cfg.ExportOptions...)
	})
	if err := a.WriteHTTP(w); err != nil {
		s.logger.Warn("Export write failed", "session", sess.ID, "err", err)
		return
	}
	s.logger.Info("Exported icon", "session", sess.ID, "file", a.Filename)
}

// session resolves the {id} parameter, writing the error response when the
// session does not exist.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return sess, true
}

// respondState dispatches a (when non-nil) and writes the resulting state.
func (s *Server) respondState(w http.ResponseWriter, status int, sess *Session, a studio.Action) {
	var resp stateResponse
	sess.Do(s.sessions.now(), func(ctl *studio.Controller) {
		if a != nil {
			ctl.Dispatch(a)
		}
		resp = s.stateOf(sess.ID, ctl)
	})
	writeJSON(w, status, resp)
}

func (s *Server) stateOf(id string, ctl *studio.Controller) stateResponse {
	st := ctl.State()
	cfg := st.Config
	resp := stateResponse{
		ID:       id,
		Config:   cfg,
		Style:    ctl.StyleName(),
		Layout:   cfg.LayoutLabel(),
		Modified: ctl.Modified(),
		Version:  st.Version,
		Filename: export.FromController(ctl, s.cfg.ExportOptions...).Filename,
		ETag:     etagOf(ctl.SVG()),
	}
	if st.Active != "" {
		active := st.Active
		resp.Active = &active
	}
	return resp
}

func etagOf(svg string) string {
	return `"` + render.Digest(svg) + `"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps coded errors to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeSessionNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidPreset,
		errors.ErrCodeInvalidRange, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case "":
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: errors.UserMessage(err)}})
}
