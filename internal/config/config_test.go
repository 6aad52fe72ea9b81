package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/icon"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "pornhub", cfg.Preset)
	assert.True(t, cfg.EscapeText)
	assert.False(t, cfg.ClearActiveOnEdit)
	assert.False(t, cfg.SanitizeFilenames)
	assert.Equal(t, icon.Default(), cfg.Icon)
	assert.Equal(t, "127.0.0.1:7878", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "brandmark", filepath.Base(filepath.Dir(DefaultPath())))
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.toml", `
preset = "modern"
clear_active_on_edit = true
output_dir = "exports"

[icon]
main_text = "Acme"
border_radius = 10
layout = "vertical"

[server]
addr = ":9000"
shutdown_timeout = "2s"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "modern", cfg.Preset)
	assert.True(t, cfg.ClearActiveOnEdit)
	assert.True(t, cfg.EscapeText, "unset keys keep their defaults")
	assert.Equal(t, "exports", cfg.OutputDir)
	assert.Equal(t, "Acme", cfg.Icon.MainText)
	assert.Equal(t, "Logo", cfg.Icon.LogoText)
	assert.Equal(t, 10, cfg.Icon.BorderRadius)
	assert.Equal(t, icon.LayoutVertical, cfg.Icon.Layout)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "preset = \n"},
		{"out of range", "[icon]\nstroke_width = 9\n"},
		{"bad layout", "[icon]\nlayout = \"diagonal\"\n"},
		{"blank output dir", "output_dir = \" \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, "config.toml", tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestLoadMissingDefaultFile(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "absent.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default().Preset, cfg.Preset)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BRANDMARK_PRESET", "youtube")
	t.Setenv("BRANDMARK_ESCAPE_TEXT", "false")
	t.Setenv("BRANDMARK_SANITIZE_FILENAMES", "true")
	t.Setenv("BRANDMARK_SERVER_ADDR", ":8081")

	path := writeFile(t, "config.toml", "preset = \"modern\"\n")
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "youtube", cfg.Preset, "environment wins over the file")
	assert.False(t, cfg.EscapeText)
	assert.True(t, cfg.SanitizeFilenames)
	assert.Equal(t, ":8081", cfg.Server.Addr)
}

func TestCatalog(t *testing.T) {
	cfg := Default()
	cat, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	cfg.PresetsFile = writeFile(t, "presets.toml", "[[preset]]\nid = \"mono\"\nname = \"Mono\"\nstroke_width = 1\n")
	cat, err = cfg.Catalog()
	require.NoError(t, err)
	_, ok := cat.Lookup("mono")
	assert.True(t, ok)
	assert.Equal(t, 4, cat.Len())

	cfg.PresetsFile = filepath.Join(t.TempDir(), "missing.toml")
	_, err = cfg.Catalog()
	assert.Error(t, err)
}
