package icon

import (
	"strings"

	"github.com/matzehuels/brandmark/pkg/errors"
)

// Layout selects how the label and the tag are arranged.
type Layout string

// Supported layout variants.
const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
	LayoutStacked    Layout = "stacked"
)

// Layouts returns every layout in display order.
func Layouts() []Layout {
	return []Layout{LayoutHorizontal, LayoutVertical, LayoutStacked}
}

// ParseLayout converts a case-insensitive name into a Layout.
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q (must be horizontal, vertical or stacked)", s)
	}
	return l, nil
}

// Valid reports whether l is one of the supported variants.
func (l Layout) Valid() bool {
	switch l {
	case LayoutHorizontal, LayoutVertical, LayoutStacked:
		return true
	}
	return false
}

func (l Layout) String() string { return string(l) }

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so TOML and JSON inputs
// reject unknown layouts.
func (l *Layout) UnmarshalText(b []byte) error {
	parsed, err := ParseLayout(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
