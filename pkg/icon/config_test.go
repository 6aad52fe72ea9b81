package icon

import (
	"testing"

	"github.com/matzehuels/brandmark/pkg/errors"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.MainText != "Brand" || c.LogoText != "Logo" {
		t.Errorf("texts = %q/%q, want Brand/Logo", c.MainText, c.LogoText)
	}
	if c.PrimaryColor != "#ff9000" {
		t.Errorf("PrimaryColor = %q, want #ff9000", c.PrimaryColor)
	}
	if c.BackgroundColor != "#000000" {
		t.Errorf("BackgroundColor = %q, want #000000", c.BackgroundColor)
	}
	if c.BorderRadius != 4 || c.ShadowIntensity != 20 {
		t.Errorf("radius/shadow = %d/%d, want 4/20", c.BorderRadius, c.ShadowIntensity)
	}
	if c.Layout != LayoutHorizontal {
		t.Errorf("Layout = %v, want horizontal", c.Layout)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestApply(t *testing.T) {
	base := Default()

	t.Run("overrides only given fields", func(t *testing.T) {
		next := base.Apply(Patch{MainText: String("Acme"), BorderRadius: Int(9)})
		if next.MainText != "Acme" || next.BorderRadius != 9 {
			t.Errorf("Apply() = %+v", next)
		}
		want := base
		want.MainText = "Acme"
		want.BorderRadius = 9
		if next != want {
			t.Errorf("Apply() changed other fields: got %+v, want %+v", next, want)
		}
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		before := base
		_ = base.Apply(Patch{LogoText: String("X"), Layout: LayoutPtr(LayoutStacked)})
		if base != before {
			t.Errorf("receiver mutated: %+v", base)
		}
	})

	t.Run("accepts empty strings", func(t *testing.T) {
		next := base.Apply(Patch{MainText: String(""), PrimaryColor: String("")})
		if next.MainText != "" || next.PrimaryColor != "" {
			t.Errorf("Apply() = %+v, want empty text and color", next)
		}
	})

	t.Run("empty patch is identity", func(t *testing.T) {
		if got := base.Apply(Patch{}); got != base {
			t.Errorf("Apply(empty) = %+v, want %+v", got, base)
		}
	})
}

func TestPatchTouchesVisual(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		want  bool
	}{
		{"empty", Patch{}, false},
		{"text only", Patch{MainText: String("a"), LogoText: String("b")}, false},
		{"color", Patch{PrimaryColor: String("#fff")}, true},
		{"layout", Patch{Layout: LayoutPtr(LayoutVertical)}, true},
		{"mixed", Patch{MainText: String("a"), Contrast: Int(3)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.TouchesVisual(); got != tt.want {
				t.Errorf("TouchesVisual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	c := Config{
		Contrast:        150,
		StrokeWidth:     0,
		ShadowIntensity: -3,
		BorderRadius:    99,
		Layout:          "diagonal",
	}.Clamp()

	if c.Contrast != 100 || c.StrokeWidth != 1 || c.ShadowIntensity != 0 || c.BorderRadius != 20 {
		t.Errorf("Clamp() = %+v", c)
	}
	if c.Layout != LayoutHorizontal {
		t.Errorf("Clamp() layout = %v, want horizontal", c.Layout)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.StrokeWidth = 6
	c.Layout = "diagonal"

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidRange) {
		t.Errorf("Validate() = %v, want INVALID_RANGE", err)
	}
}

func TestRange(t *testing.T) {
	r := ShadowIntensityRange
	if !r.Contains(0) || !r.Contains(50) || r.Contains(51) {
		t.Errorf("Contains() boundaries wrong for %+v", r)
	}
	if r.Clamp(70) != 50 || r.Clamp(-1) != 0 || r.Clamp(7) != 7 {
		t.Errorf("Clamp() wrong for %+v", r)
	}
}

func TestLayoutLabel(t *testing.T) {
	for _, l := range Layouts() {
		c := Default()
		c.Layout = l
		if c.LayoutLabel() == "" {
			t.Errorf("LayoutLabel(%v) is empty", l)
		}
	}
}
