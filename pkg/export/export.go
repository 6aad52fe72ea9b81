// Package export packages rendered icons as downloadable SVG files.
//
// An [Artifact] carries the UTF-8 markup, its MIME type and the file name
// "{mainText}-{logoText}-icon.svg". By default the name is built from the
// text fields as they are, path separators included; [WithSanitizedFilename]
// replaces characters that are unsafe in file names.
//
// Exporting never modifies the configuration it reads from.
package export

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/render"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// MIMEType is the media type of exported files.
const MIMEType = "image/svg+xml"

// Artifact is one exported icon.
type Artifact struct {
	Data     []byte
	Filename string
	MIMEType string
}

// Option configures an export.
type Option func(*exporter)

type exporter struct {
	renderOpts []render.Option
	sanitize   bool
}

// WithRenderOptions forwards options to the renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(e *exporter) { e.renderOpts = append(e.renderOpts, opts...) }
}

// WithSanitizedFilename makes the file name safe for common file systems.
func WithSanitizedFilename() Option { return func(e *exporter) { e.sanitize = true } }

// Export renders cfg and wraps the result as an Artifact.
func Export(cfg icon.Config, opts ...Option) Artifact {
	var e exporter
	for _, opt := range opts {
		opt(&e)
	}

	name := Filename(cfg.MainText, cfg.LogoText)
	if e.sanitize {
		name = SanitizedFilename(cfg.MainText, cfg.LogoText)
	}
	return Artifact{
		Data:     []byte(render.Render(cfg, e.renderOpts...)),
		Filename: name,
		MIMEType: MIMEType,
	}
}

// FromController exports the controller's current state with the same
// render options its preview uses.
func FromController(c *studio.Controller, opts ...Option) Artifact {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithRenderOptions(c.RenderOptions()...))
	return Export(c.Config(), append(all, opts...)...)
}

// Filename returns "{main}-{logo}-icon.svg" without any sanitization.
func Filename(main, logo string) string {
	return main + "-" + logo + "-icon.svg"
}

// SanitizedFilename is Filename with path separators, reserved and control
// characters replaced by '_'. Empty text fields become "icon".
func SanitizedFilename(main, logo string) string {
	return Filename(sanitizePart(main), sanitizePart(logo))
}

func sanitizePart(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(s))
	s = strings.Trim(s, ".")
	if s == "" {
		return "icon"
	}
	return s
}

// WriteTo writes the artifact into dir under its file name and returns the
// full path. dir is created when missing.
func (a Artifact) WriteTo(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// WriteHTTP sends the artifact as a download.
func (a Artifact) WriteHTTP(w http.ResponseWriter) error {
	h := w.Header()
	h.Set("Content-Type", a.MIMEType)
	h.Set("Content-Length", strconv.Itoa(len(a.Data)))
	h.Set("Content-Disposition", contentDisposition(a.Filename))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(a.Data)
	return err
}

// contentDisposition quotes name for the plain filename parameter and adds
// the RFC 5987 form so non-ASCII names survive.
func contentDisposition(name string) string {
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || r == '"' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, ascii, pathEscape(name))
}

func pathEscape(s string) string {
	var b strings.Builder
	for _, c := range []byte(s) {
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || strings.IndexByte("-._~", c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
