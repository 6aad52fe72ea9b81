package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/brandmark/pkg/export"
	"github.com/matzehuels/brandmark/pkg/preset"
	"github.com/matzehuels/brandmark/pkg/studio"
)

func newTestServer(t *testing.T, opts ...export.Option) (*Server, *httptest.Server) {
	t.Helper()
	cat := preset.Builtin()
	s := New(Config{
		SessionTTL:    time.Hour,
		DefaultPreset: preset.DefaultID,
		ExportOptions: opts,
	}, cat, func() *studio.Controller {
		return studio.New(studio.WithCatalog(cat))
	}, log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func createSession(t *testing.T, ts *httptest.Server) stateResponse {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeState(t, resp)
}

func decodeState(t *testing.T, resp *http.Response) stateResponse {
	t.Helper()
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	var st stateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	return st
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestIndexPage(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "/api/sessions")
}

func TestGetPresets(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/api/presets", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got presetsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Presets, 3)
	assert.Equal(t, "pornhub", got.Presets[0].ID)
	assert.Equal(t, "YouTube Style", got.Presets[1].Name)
	assert.Equal(t, preset.DefaultID, got.Default)
	assert.Len(t, got.Layouts, 3)
}

func TestCreateSession(t *testing.T) {
	s, ts := newTestServer(t)

	st := createSession(t, ts)
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, "Brand", st.Config.MainText)
	require.NotNil(t, st.Active)
	assert.Equal(t, "pornhub", *st.Active)
	assert.Equal(t, "PornHub Style", st.Style)
	assert.Equal(t, "Brand-Logo-icon.svg", st.Filename)
	assert.Equal(t, 1, s.Sessions().Len())
}

func TestPatchSession(t *testing.T) {
	_, ts := newTestServer(t)
	st := createSession(t, ts)

	resp := do(t, http.MethodPatch, ts.URL+"/api/sessions/"+st.ID,
		`{"mainText":"My","logoText":"Tube","shadowIntensity":99,"borderRadius":-3,"primaryColor":"not-a-color"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeState(t, resp)

	assert.Equal(t, "My", got.Config.MainText)
	assert.Equal(t, "Tube", got.Config.LogoText)
	assert.Equal(t, 50, got.Config.ShadowIntensity, "clamped to max")
	assert.Equal(t, 0, got.Config.BorderRadius, "clamped to min")
	assert.Equal(t, "not-a-color", got.Config.PrimaryColor, "colors stored verbatim")
	assert.Equal(t, "My-Tube-icon.svg", got.Filename)
	assert.Greater(t, got.Version, st.Version)
}

func TestPatchSessionErrors(t *testing.T) {
	_, ts := newTestServer(t)
	st := createSession(t, ts)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed", `{"mainText":`, "INVALID_INPUT"},
		{"unknown field", `{"fontSize":12}`, "INVALID_INPUT"},
		{"unknown layout", `{"layoutType":"diagonal"}`, "INVALID_LAYOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPatch, ts.URL+"/api/sessions/"+st.ID, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var er errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
			assert.Equal(t, tt.code, string(er.Error.Code))
		})
	}
}

func TestApplyPreset(t *testing.T) {
	_, ts := newTestServer(t)
	st := createSession(t, ts)

	resp := do(t, http.MethodPost, ts.URL+"/api/sessions/"+st.ID+"/presets/youtube", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeState(t, resp)
	require.NotNil(t, got.Active)
	assert.Equal(t, "youtube", *got.Active)
	assert.Equal(t, "#ff0000", got.Config.PrimaryColor)
	assert.Equal(t, "Brand", got.Config.MainText, "text untouched")

	resp = do(t, http.MethodPost, ts.URL+"/api/sessions/"+st.ID+"/presets/unknown", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	same := decodeState(t, resp)
	assert.Equal(t, got.Version, same.Version, "unknown preset is a no-op")
	assert.Equal(t, got.Config, same.Config)
}

func TestPreviewETag(t *testing.T) {
	_, ts := newTestServer(t)
	st := createSession(t, ts)
	url := ts.URL + "/api/sessions/" + st.ID + "/preview.svg"

	resp := do(t, http.MethodGet, url, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, export.MIMEType, resp.Header.Get("Content-Type"))
	etag := resp.Header.Get("ETag")
	assert.Equal(t, st.ETag, etag)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("<svg")))

	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("If-None-Match", etag)
	cached, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	cached.Body.Close()
	assert.Equal(t, http.StatusNotModified, cached.StatusCode)

	do(t, http.MethodPatch, ts.URL+"/api/sessions/"+st.ID, `{"mainText":"Other"}`)
	changed := do(t, http.MethodGet, url, "")
	assert.NotEqual(t, etag, changed.Header.Get("ETag"))
}

func TestExport(t *testing.T) {
	_, ts := newTestServer(t)
	st := createSession(t, ts)

	resp := do(t, http.MethodGet, ts.URL+"/api/sessions/"+st.ID+"/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, export.MIMEType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="Brand-Logo-icon.svg"`)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Style: PornHub Style")
}

func TestExportSanitized(t *testing.T) {
	_, ts := newTestServer(t, export.WithSanitizedFilename())
	st := createSession(t, ts)
	do(t, http.MethodPatch, ts.URL+"/api/sessions/"+st.ID, `{"mainText":"a/b"}`)

	resp := do(t, http.MethodGet, ts.URL+"/api/sessions/"+st.ID+"/export", "")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="a_b-Logo-icon.svg"`)
}

func TestSessionNotFound(t *testing.T) {
	_, ts := newTestServer(t)

	for _, path := range []string{"", "/preview.svg", "/export"} {
		resp := do(t, http.MethodGet, ts.URL+"/api/sessions/missing"+path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
	resp := do(t, http.MethodDelete, ts.URL+"/api/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteSession(t *testing.T) {
	s, ts := newTestServer(t)
	st := createSession(t, ts)

	resp := do(t, http.MethodDelete, ts.URL+"/api/sessions/"+st.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, s.Sessions().Len())
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cat := preset.Builtin()
	s := New(Config{ShutdownTimeout: time.Second, SessionTTL: time.Minute}, cat,
		func() *studio.Controller { return studio.New() }, log.New(io.Discard))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/presets")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
