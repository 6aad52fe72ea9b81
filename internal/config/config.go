// Package config loads brandmark's application settings.
//
// Settings come from three layers, later ones winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/brandmark/config.toml
//  3. BRANDMARK_* environment variables
//
// A missing default file is not an error; a missing explicit file is.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"

	bmerrors "github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/preset"
)

const (
	appName  = "brandmark"
	fileName = "config.toml"
)

// Config holds application settings.
type Config struct {
	// Preset is the preset applied and marked active when a session starts.
	// Empty starts from Icon with no active preset.
	Preset string `toml:"preset" env:"BRANDMARK_PRESET"`

	// PresetsFile is an optional TOML catalog merged over the built-ins.
	PresetsFile string `toml:"presets_file" env:"BRANDMARK_PRESETS_FILE"`

	// EscapeText escapes text and color fields in generated markup.
	EscapeText bool `toml:"escape_text" env:"BRANDMARK_ESCAPE_TEXT"`

	// ClearActiveOnEdit drops the active preset on manual visual edits.
	ClearActiveOnEdit bool `toml:"clear_active_on_edit" env:"BRANDMARK_CLEAR_ACTIVE_ON_EDIT"`

	// SanitizeFilenames makes exported file names filesystem-safe.
	SanitizeFilenames bool `toml:"sanitize_filenames" env:"BRANDMARK_SANITIZE_FILENAMES"`

	// OutputDir is where exports are written.
	OutputDir string `toml:"output_dir" env:"BRANDMARK_OUTPUT_DIR"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" env:"BRANDMARK_LOG_LEVEL"`

	// Icon is the starting configuration before Preset is applied.
	Icon icon.Config `toml:"icon"`

	Server Server `toml:"server"`
}

// Server holds preview server settings.
type Server struct {
	Addr            string        `toml:"addr" env:"BRANDMARK_SERVER_ADDR"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"BRANDMARK_SERVER_SHUTDOWN_TIMEOUT"`

	// SessionTTL is how long an untouched editing session is kept.
	SessionTTL time.Duration `toml:"session_ttl" env:"BRANDMARK_SERVER_SESSION_TTL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Preset:     preset.DefaultID,
		EscapeText: true,
		OutputDir:  ".",
		LogLevel:   "info",
		Icon:       icon.Default(),
		Server: Server{
			Addr:            "127.0.0.1:7878",
			ShutdownTimeout: 5 * time.Second,
			SessionTTL:      time.Hour,
		},
	}
}

// DefaultPath returns the default location of the config file. The file
// may not exist.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, fileName)
}

// Load reads the default config file if present, then the environment.
func Load() (Config, error) {
	return load(DefaultPath(), false)
}

// LoadFile reads the config file at path, then the environment. The file
// must exist.
func LoadFile(path string) (Config, error) {
	return load(path, true)
}

func load(path string, required bool) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) || required {
			return Config{}, bmerrors.Wrap(bmerrors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, bmerrors.Wrap(bmerrors.ErrCodeInvalidConfig, err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the starting icon and output directory. Preset ids are
// checked by Catalog since they may come from PresetsFile.
func (c Config) Validate() error {
	if err := c.Icon.Validate(); err != nil {
		return bmerrors.Wrap(bmerrors.ErrCodeInvalidConfig, err, "invalid [icon] table")
	}
	if err := bmerrors.ValidateOutputDir(c.OutputDir); err != nil {
		return bmerrors.Wrap(bmerrors.ErrCodeInvalidConfig, err, "invalid output_dir")
	}
	return nil
}

// Catalog returns the built-in presets merged with PresetsFile.
func (c Config) Catalog() (preset.Catalog, error) {
	cat := preset.Builtin()
	if c.PresetsFile == "" {
		return cat, nil
	}
	extra, err := preset.LoadFile(c.PresetsFile)
	if err != nil {
		return preset.Catalog{}, err
	}
	return cat.Merge(extra), nil
}
