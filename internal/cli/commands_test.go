package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/preset"
	"github.com/matzehuels/brandmark/pkg/render"
)

// runCLI executes the root command with a config file holding configTOML
// and returns what the command wrote to stdout.
func runCLI(t *testing.T, configTOML string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(configTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, logs bytes.Buffer
	c := New(&logs, log.WarnLevel)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderDefault(t *testing.T) {
	got, err := runCLI(t, "", "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := render.Render(icon.Default(), render.WithStyleName("PornHub Style"))
	if got != want {
		t.Errorf("render output differs from default icon\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "preset and text",
			args: []string{"--preset", "youtube", "--text", "My", "--logo", "Tube"},
			want: []string{`fill="#ff0000"`, "Style: YouTube Style", `Text: "My" + "Tube"`, `rx="8"`},
		},
		{
			name: "shadow clamped",
			args: []string{"--shadow", "99"},
			want: []string{`stdDeviation="5"`},
		},
		{
			name: "radius clamped low",
			args: []string{"--radius", "-4"},
			want: []string{`rx="0" fill="#000000"`},
		},
		{
			name: "unknown preset renders custom",
			args: []string{"--preset", "nope"},
			want: []string{"Style: custom"},
		},
		{
			name: "escaped by default",
			args: []string{"--text", "<b>"},
			want: []string{"&lt;b&gt;"},
		},
		{
			name: "raw text",
			args: []string{"--text", "<b>", "--raw"},
			want: []string{`Text: "<b>"`},
		},
		{
			name: "field flags keep preset marker",
			args: []string{"--preset", "modern", "--shadow", "0"},
			want: []string{"Style: Modern Style", `stdDeviation="0"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, "", append([]string{"render"}, tt.args...)...)
			if err != nil {
				t.Fatalf("render %v: %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q\n%s", w, got)
				}
			}
		})
	}
}

func TestRenderRawText(t *testing.T) {
	got, err := runCLI(t, "", "render", "--text", "<b>", "--raw")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `fill="#ffffff"><b></text>`) {
		t.Errorf("raw output should carry the text verbatim:\n%s", got)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"strict range", []string{"--shadow", "99", "--strict"}, errors.ErrCodeInvalidRange},
		{"bad layout", []string{"--layout", "diagonal"}, errors.ErrCodeInvalidLayout},
		{"bad preset id", []string{"--preset", "Not Valid"}, errors.ErrCodeInvalidPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "", append([]string{"render"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.svg")

	out, err := runCLI(t, "", "render", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("file does not hold svg markup: %q", data[:20])
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q should name the written file", out)
	}
}

func TestRenderUsesConfig(t *testing.T) {
	cfg := `
preset = "modern"

[icon]
main_text = "Acme"
logo_text = "Labs"
`
	got, err := runCLI(t, cfg, "render")
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"Style: Modern Style", `Text: "Acme" + "Labs"`, `fill="#3b82f6"`} {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func TestRenderWithoutDefaultPreset(t *testing.T) {
	cfg := `
preset = ""

[icon]
primary_color = "teal"
`
	got, err := runCLI(t, cfg, "render")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Style: custom") || !strings.Contains(got, `fill="teal"`) {
		t.Errorf("expected custom style with config colors:\n%s", got)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "", "export", "--dir", dir, "--text", "My", "--logo", "Tube")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "My-Tube-icon.svg")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if !strings.Contains(string(data), `Text: "My" + "Tube"`) {
		t.Error("exported file does not match the requested text")
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q should name %s", out, path)
	}
}

func TestExportSanitize(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, "", "export", "--dir", dir, "--text", "a/b", "--sanitize"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a_b-Logo-icon.svg")); err != nil {
		t.Errorf("sanitized file missing: %v", err)
	}
}

func TestExportOutputDirFromConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")

	if _, err := runCLI(t, "output_dir = "+strconvQuote(dir), "export"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Brand-Logo-icon.svg")); err != nil {
		t.Errorf("export should create output_dir: %v", err)
	}
}

func TestPresets(t *testing.T) {
	out, err := runCLI(t, "", "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"pornhub", "YouTube Style", "Modern Style", iconActive} {
		if !strings.Contains(out, w) {
			t.Errorf("presets output missing %q", w)
		}
	}
}

func TestPresetsJSONWithFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "presets.toml")
	catalog := `
[[preset]]
id = "mono"
name = "Mono"
primary_color = "#ffffff"
auxiliary_color = "#000000"
background_color = "#ffffff"
contrast = 100
stroke_width = 1
shadow_intensity = 0
border_radius = 0
layout = "horizontal"
`
	if err := os.WriteFile(file, []byte(catalog), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "presets_file = "+strconvQuote(file), "presets", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got []preset.Preset
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 4 || got[3].ID != "mono" {
		t.Errorf("presets = %+v, want built-ins followed by mono", got)
	}
}

func TestCompletion(t *testing.T) {
	out, err := runCLI(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion should mention the binary name")
	}
	if _, err := runCLI(t, "", "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestBadConfig(t *testing.T) {
	_, err := runCLI(t, "[icon]\nlayout = \"diagonal\"\n", "render")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
